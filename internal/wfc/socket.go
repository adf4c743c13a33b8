package wfc

import (
	"fmt"
	"strconv"
	"strings"
)

// Socket enumerates what a tile face can connect to.
type Socket uint8

const (
	// Blank faces connect to nothing.
	Blank Socket = iota
	// Pipe faces carry a pipe across the edge.
	Pipe
)

var socketNames = []string{"blank", "pipe"}

// String returns the lower-case socket name.
func (s Socket) String() string {
	if int(s) < len(socketNames) {
		return socketNames[s]
	}
	return "socket(" + strconv.Itoa(int(s)) + ")"
}

// ParseSocket accepts a socket name or its numeric value.
func ParseSocket(v string) (Socket, error) {
	name := strings.ToLower(strings.TrimSpace(v))
	for i, n := range socketNames {
		if n == name {
			return Socket(i), nil
		}
	}
	n, err := strconv.ParseUint(name, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSocket, v)
	}
	return Socket(n), nil
}

// Direction identifies one of the four faces of a tile. The order matches a
// clockwise walk starting on the left face.
type Direction uint8

const (
	Left Direction = iota
	Down
	Right
	Up
)

// Directions lists every face in index order.
var Directions = [4]Direction{Left, Down, Right, Up}

// Opposite returns the facing direction across a shared edge.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Offset returns the (row, col) delta towards the neighbour on this face.
func (d Direction) Offset() (int, int) {
	switch d {
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Faces assigns a socket to each direction of a tile.
type Faces [4]Socket

// Rotate turns a face assignment clockwise by steps quarter turns. Each step
// moves down to left, right to down, up to right and left to up.
func Rotate(f Faces, steps int) Faces {
	steps = ((steps % 4) + 4) % 4
	var out Faces
	for i := range f {
		out[i] = f[(i+steps)%4]
	}
	return out
}
