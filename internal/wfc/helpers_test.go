package wfc

import "math/rand/v2"

// scriptedRand replays fixed draws and falls back to zero once exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, 0)) }

// pipeTiles mirrors the demo pipe set with every variant selectable.
func pipeTiles() []BaseTile {
	return []BaseTile{
		NewBaseTile("T", Faces{Left: Pipe, Down: Pipe, Right: Blank, Up: Pipe}, R4),
		NewBaseTile("I", Faces{Left: Blank, Down: Pipe, Right: Blank, Up: Pipe}, R2),
		NewBaseTile("L", Faces{Left: Pipe, Down: Pipe, Right: Blank, Up: Blank}, R4),
		NewBaseTile("O", Faces{Left: Pipe, Down: Blank, Right: Blank, Up: Blank}, R4),
		{Source: "blank", Faces: Faces{}, Sym: R1, Weight: 10},
		NewBaseTile("all", Faces{Pipe, Pipe, Pipe, Pipe}, R1),
	}
}
