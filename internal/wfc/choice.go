package wfc

import (
	"fmt"
	"math"
)

// Rand is the randomness a TileMap draws from. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Choose draws an index with probability proportional to its weight. It
// returns the smallest index whose cumulative weight strictly exceeds a
// uniform draw in [0, total).
func Choose(r Rand, weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("%w: empty weight set", ErrInvalidWeights)
	}
	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("%w: weight %d is %v", ErrInvalidWeights, i, w)
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w: all %d weights are zero", ErrInvalidWeights, len(weights))
	}
	threshold := r.Float64() * total
	for i, c := range cumulative {
		if c > threshold {
			return i, nil
		}
	}
	// Float64 never returns 1, so this is only reached through rounding.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
}
