package wfc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeMap(t *testing.T, rows, cols int, r Rand) *TileMap {
	t.Helper()
	ts, err := NewTileSet(pipeTiles())
	require.NoError(t, err)
	m, err := NewTileMap(rows, cols, ts, r)
	require.NoError(t, err)
	return m
}

// checkCells asserts the per-cell bookkeeping invariants.
func checkCells(t *testing.T, m *TileMap) {
	t.Helper()
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			view, err := m.CellAt(row, col)
			require.NoError(t, err)
			cands, err := m.Candidates(row, col)
			require.NoError(t, err)
			if view.Collapsed {
				require.Zero(t, view.Entropy, "collapsed cell (%d,%d) has entropy", row, col)
				require.Empty(t, cands, "collapsed cell (%d,%d) keeps options", row, col)
				continue
			}
			require.Equal(t, len(cands), view.Entropy, "stale entropy at (%d,%d)", row, col)
			if view.Entropy == 0 {
				require.Equal(t, Contradicted, m.State(), "empty cell (%d,%d) without contradiction", row, col)
			}
		}
	}
}

func TestNewTileMapValidates(t *testing.T) {
	ts, err := NewTileSet(pipeTiles())
	require.NoError(t, err)
	_, err = NewTileMap(0, 3, ts, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = NewTileMap(3, 3, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyTileSet)

	m, err := NewTileMap(2, 3, ts, nil)
	require.NoError(t, err)
	assert.Equal(t, Uninitialized, m.State())
	assert.ErrorIs(t, m.Step(), ErrNotInitialized)
	assert.ErrorIs(t, m.Solve(), ErrNotInitialized)

	view, err := m.CellAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, ts.Len(), view.Entropy)
	assert.Equal(t, 5, view.Index)

	_, err = m.CellAt(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.Candidates(0, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSingleTileSolves(t *testing.T) {
	ts, err := NewTileSet([]BaseTile{NewBaseTile("blank", Faces{}, R1)})
	require.NoError(t, err)
	m, err := NewTileMap(2, 2, ts, seeded(3))
	require.NoError(t, err)

	require.NoError(t, m.Initialize())
	assert.Equal(t, Propagating, m.State())
	require.NoError(t, m.Solve())
	assert.Equal(t, Solved, m.State())
	assert.Equal(t, 3, m.Steps())
	assert.Equal(t, 4, m.Collapsed())

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			view, err := m.CellAt(row, col)
			require.NoError(t, err)
			assert.True(t, view.Collapsed)
			assert.Equal(t, "blank", view.Variant.Source)
		}
	}

	// Further steps are no-ops.
	require.NoError(t, m.Step())
	assert.Equal(t, 3, m.Steps())
}

func TestOneByOneSolvesOnInitialize(t *testing.T) {
	m := newPipeMap(t, 1, 1, seeded(1))
	require.NoError(t, m.Initialize())
	assert.Equal(t, Solved, m.State())
}

func TestInitializeCollapsesOneCell(t *testing.T) {
	// IntN picks cell 4, Float64 picks the first candidate (T@0).
	m := newPipeMap(t, 3, 3, &scriptedRand{ints: []int{4}})
	require.NoError(t, m.Initialize())

	center, err := m.CellAt(1, 1)
	require.NoError(t, err)
	require.True(t, center.Collapsed)
	assert.Equal(t, "T", center.Variant.Source)
	assert.Equal(t, 1, m.Collapsed())

	// The right face of T@0 is blank, so the right neighbour must show a
	// blank left face; every other neighbour must show a pipe.
	right, _ := m.Candidates(1, 2)
	for _, v := range right {
		variant, _ := m.TileSet().Get(v)
		assert.Equal(t, Blank, variant.Face(Left))
	}
	left, _ := m.Candidates(1, 0)
	for _, v := range left {
		variant, _ := m.TileSet().Get(v)
		assert.Equal(t, Pipe, variant.Face(Right))
	}
	checkCells(t, m)
}

func TestPropagationIsSingleHop(t *testing.T) {
	m := newPipeMap(t, 1, 3, &scriptedRand{ints: []int{0}})
	require.NoError(t, m.Initialize())

	near, err := m.CellAt(0, 1)
	require.NoError(t, err)
	assert.Less(t, near.Entropy, m.TileSet().Len())

	far, err := m.CellAt(0, 2)
	require.NoError(t, err)
	assert.Equal(t, m.TileSet().Len(), far.Entropy, "cells two hops away stay untouched")
}

func TestStepPicksLowestEntropy(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		m := newPipeMap(t, 6, 6, seeded(seed))
		require.NoError(t, m.Initialize())
		for m.State() == Propagating {
			lowest := 0
			before := map[int]int{}
			for row := 0; row < m.Rows(); row++ {
				for col := 0; col < m.Cols(); col++ {
					view, _ := m.CellAt(row, col)
					if view.Collapsed || view.Entropy == 0 {
						continue
					}
					before[view.Index] = view.Entropy
					if lowest == 0 || view.Entropy < lowest {
						lowest = view.Entropy
					}
				}
			}
			collapsed := m.Collapsed()
			_ = m.Step()
			if m.Collapsed() == collapsed {
				break
			}
			picked := -1
			for idx := range before {
				view, _ := m.CellAt(idx/m.Cols(), idx%m.Cols())
				if view.Collapsed {
					picked = idx
				}
			}
			require.NotEqual(t, -1, picked)
			assert.Equal(t, lowest, before[picked], "seed %d collapsed a cell above the minimum entropy", seed)
		}
	}
}

// newTieMap builds a 1x5 row of two interchangeable blank tiles and collapses
// the middle cell, leaving cells 0, 1, 3 and 4 tied at entropy 2.
func newTieMap(t *testing.T, r Rand) *TileMap {
	t.Helper()
	ts, err := NewTileSet([]BaseTile{
		NewBaseTile("a", Faces{}, R1),
		NewBaseTile("b", Faces{}, R1),
	})
	require.NoError(t, err)
	m, err := NewTileMap(1, 5, ts, r)
	require.NoError(t, err)
	return m
}

func TestStepBreaksTiesInIndexOrder(t *testing.T) {
	ties := []int{0, 1, 3, 4}
	for k, want := range ties {
		m := newTieMap(t, &scriptedRand{ints: []int{2, k}})
		require.NoError(t, m.Initialize())
		for col := 0; col < 5; col++ {
			if col == 2 {
				continue
			}
			view, err := m.CellAt(0, col)
			require.NoError(t, err)
			require.Equal(t, 2, view.Entropy)
		}

		require.NoError(t, m.Step())
		for col := 0; col < 5; col++ {
			view, err := m.CellAt(0, col)
			require.NoError(t, err)
			assert.Equal(t, col == 2 || col == want, view.Collapsed, "draw %d, cell %d", k, col)
		}
	}
}

func TestStepBreaksTiesUniformly(t *testing.T) {
	const seeds = 4000
	counts := map[int]int{}
	for seed := uint64(0); seed < seeds; seed++ {
		r := seeded(seed)
		m := newTieMap(t, &scriptedRand{ints: []int{2}})
		require.NoError(t, m.Initialize())
		m.rng = r
		require.NoError(t, m.Step())
		for col := 0; col < 5; col++ {
			view, _ := m.CellAt(0, col)
			if col != 2 && view.Collapsed {
				counts[col]++
			}
		}
	}
	require.Len(t, counts, 4)
	assert.Zero(t, counts[2])
	for col, n := range counts {
		assert.InDelta(t, seeds/4, n, 200, "cell %d picked %d times", col, n)
	}
}

func TestPropagationNeverRestoresCandidates(t *testing.T) {
	m := newPipeMap(t, 5, 7, seeded(99))
	require.NoError(t, m.Initialize())
	prev := snapshotCandidates(t, m)
	for m.State() == Propagating {
		_ = m.Step()
		next := snapshotCandidates(t, m)
		for idx, cands := range next {
			old := prev[idx]
			assert.LessOrEqual(t, len(cands), len(old))
			for v := range cands {
				assert.True(t, old[v], "candidate %d reappeared at cell %d", v, idx)
			}
		}
		prev = next
		checkCells(t, m)
	}
}

func snapshotCandidates(t *testing.T, m *TileMap) map[int]map[int]bool {
	t.Helper()
	out := map[int]map[int]bool{}
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			cands, err := m.Candidates(row, col)
			require.NoError(t, err)
			set := map[int]bool{}
			for _, v := range cands {
				set[v] = true
			}
			out[row*m.Cols()+col] = set
		}
	}
	return out
}

func TestSolvedMapsHaveMatchingEdges(t *testing.T) {
	solved := 0
	for seed := uint64(1); seed <= 40; seed++ {
		m := newPipeMap(t, 12, 12, seeded(seed))
		require.NoError(t, m.Initialize())
		err := m.Solve()
		if m.State() == Contradicted {
			assert.ErrorIs(t, err, ErrContradiction)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, Solved, m.State())
		require.NoError(t, m.CheckAdjacency(), "seed %d", seed)
		solved++
	}
	assert.Positive(t, solved)
}

func TestContradictionIsSurfaced(t *testing.T) {
	// Left and right faces never match, so any horizontal neighbour of the
	// first collapsed cell is left without candidates.
	ts, err := NewTileSet([]BaseTile{
		NewBaseTile("a", Faces{Left: Pipe, Right: Blank}, R1),
		NewBaseTile("b", Faces{Left: Pipe, Right: Blank, Up: Pipe, Down: Pipe}, R1),
	})
	require.NoError(t, err)
	m, err := NewTileMap(2, 2, ts, seeded(5))
	require.NoError(t, err)

	err = m.Initialize()
	require.ErrorIs(t, err, ErrContradiction)
	assert.Equal(t, Contradicted, m.State())
	assert.ErrorIs(t, m.Err(), ErrContradiction)
	assert.ErrorIs(t, m.Step(), ErrContradiction, "contradiction persists until Initialize")
	checkCells(t, m)

	found := false
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			view, _ := m.CellAt(row, col)
			found = found || view.Contradicted()
		}
	}
	assert.True(t, found)
	assert.Contains(t, RenderASCII(m), "!")

	// A fresh attempt resets the state before failing again.
	assert.ErrorIs(t, m.Initialize(), ErrContradiction)
	assert.Equal(t, 1, m.Collapsed())
}

func TestZeroWeightCandidatesFail(t *testing.T) {
	ts, err := NewTileSet([]BaseTile{{Source: "ghost", Sym: R1, Weight: 0}})
	require.NoError(t, err)
	m, err := NewTileMap(1, 2, ts, seeded(1))
	require.NoError(t, err)
	assert.ErrorIs(t, m.Initialize(), ErrInvalidWeights)
	assert.Equal(t, Contradicted, m.State())
}

func TestCheckAdjacencyReportsMismatch(t *testing.T) {
	m := newPipeMap(t, 1, 2, seeded(1))
	m.state = Propagating
	// Force two incompatible neighbours: blank beside a pipe stub facing it.
	blank, all := 14, 15
	m.cells[0].variant, m.cells[0].entropy = all, 0
	m.cells[1].variant, m.cells[1].entropy = blank, 0
	assert.ErrorIs(t, m.CheckAdjacency(), ErrMismatchedEdge)
}

func TestRenderASCII(t *testing.T) {
	ts, err := NewTileSet([]BaseTile{NewBaseTile("h", Faces{Left: Pipe, Right: Pipe}, R1)})
	require.NoError(t, err)
	m, err := NewTileMap(2, 3, ts, seeded(2))
	require.NoError(t, err)
	assert.Equal(t, "???\n???\n", RenderASCII(m))
	require.NoError(t, m.Initialize())
	require.NoError(t, m.Solve())
	assert.Equal(t, strings.Repeat("───\n", 2), RenderASCII(m))
}
