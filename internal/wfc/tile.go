package wfc

import (
	"fmt"
	"math"
	"strings"
)

// Symmetry selects which clockwise rotations of a base tile become variants.
type Symmetry uint8

const (
	// R1 keeps only the unrotated tile.
	R1 Symmetry = iota
	// R2 adds one quarter turn, for tiles like a straight pipe.
	R2
	// R4 adds all four quarter turns, for tiles like a corner or tee.
	R4
)

// Steps returns the rotation step counts produced by the symmetry.
func (s Symmetry) Steps() []int {
	switch s {
	case R2:
		return []int{0, 1}
	case R4:
		return []int{0, 1, 2, 3}
	default:
		return []int{0}
	}
}

func (s Symmetry) String() string {
	switch s {
	case R2:
		return "r2"
	case R4:
		return "r4"
	default:
		return "r1"
	}
}

// ParseSymmetry accepts r1, r2 or r4.
func ParseSymmetry(v string) (Symmetry, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "r1", "none":
		return R1, nil
	case "r2":
		return R2, nil
	case "r4":
		return R4, nil
	}
	return R1, fmt.Errorf("%w: %q", ErrUnknownSymmetry, v)
}

// BaseTile is an unrotated tile definition supplied by the caller.
type BaseTile struct {
	// Source identifies the tile for drawing collaborators.
	Source string
	Faces  Faces
	Sym    Symmetry
	// Weight applies to every variant. Zero means the variant can never be
	// chosen by weight.
	Weight float64
	// Weights optionally overrides Weight per rotation, in Sym.Steps order.
	Weights []float64
}

// Variant is one concrete, oriented tile. Its faces are already rotated.
type Variant struct {
	Source   string
	Faces    Faces
	Rotation int
	Weight   float64
}

// Face returns the socket presented on direction d.
func (v Variant) Face(d Direction) Socket { return v.Faces[d] }

// Angle returns the clockwise draw rotation in radians.
func (v Variant) Angle() float64 { return float64(v.Rotation) * math.Pi / 2 }

func (v Variant) String() string {
	return fmt.Sprintf("%s@%d", v.Source, v.Rotation*90)
}

// NewBaseTile returns a definition with the default weight of 1.
func NewBaseTile(source string, faces Faces, sym Symmetry) BaseTile {
	return BaseTile{Source: source, Faces: faces, Sym: sym, Weight: 1}
}
