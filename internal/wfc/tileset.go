package wfc

import (
	"fmt"
	"math"
)

// TileSet is the ordered, immutable registry of tile variants. Variant
// positions index the candidate sets of every TileMap built on it.
type TileSet struct {
	variants []Variant
}

// NewTileSet expands each base definition into its rotation variants, in
// definition order.
func NewTileSet(defs []BaseTile) (*TileSet, error) {
	ts := &TileSet{}
	for i, def := range defs {
		steps := def.Sym.Steps()
		if def.Weights != nil && len(def.Weights) != len(steps) {
			return nil, fmt.Errorf("%w: tile %d (%s) has %d weights for %d rotations",
				ErrInvalidWeights, i, def.Source, len(def.Weights), len(steps))
		}
		for j, step := range steps {
			w := def.Weight
			if def.Weights != nil {
				w = def.Weights[j]
			}
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: tile %d (%s) weight %v", ErrInvalidWeights, i, def.Source, w)
			}
			ts.variants = append(ts.variants, Variant{
				Source:   def.Source,
				Faces:    Rotate(def.Faces, step),
				Rotation: step,
				Weight:   w,
			})
		}
	}
	if len(ts.variants) == 0 {
		return nil, ErrEmptyTileSet
	}
	return ts, nil
}

// Len reports the number of variants.
func (ts *TileSet) Len() int { return len(ts.variants) }

// Get returns the variant at registry position i.
func (ts *TileSet) Get(i int) (Variant, error) {
	if i < 0 || i >= len(ts.variants) {
		return Variant{}, fmt.Errorf("%w: variant %d of %d", ErrIndexOutOfRange, i, len(ts.variants))
	}
	return ts.variants[i], nil
}

// Variants returns a copy of the registry in order.
func (ts *TileSet) Variants() []Variant {
	return append([]Variant(nil), ts.variants...)
}

// Sources lists the distinct source identifiers in first-seen order.
func (ts *TileSet) Sources() []string {
	seen := make(map[string]bool, len(ts.variants))
	var out []string
	for _, v := range ts.variants {
		if seen[v.Source] {
			continue
		}
		seen[v.Source] = true
		out = append(out, v.Source)
	}
	return out
}
