package wfc

import (
	"fmt"
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
)

// State is the lifecycle stage of a TileMap.
type State uint8

const (
	Uninitialized State = iota
	Propagating
	Solved
	Contradicted
)

func (s State) String() string {
	switch s {
	case Propagating:
		return "propagating"
	case Solved:
		return "solved"
	case Contradicted:
		return "contradicted"
	default:
		return "uninitialized"
	}
}

// cell tracks the variants still possible at one grid position. entropy is
// kept equal to options.Count() while the cell is open; once collapsed the
// options are cleared and variant holds the chosen registry index.
type cell struct {
	options *bitset.BitSet
	entropy int
	variant int
}

// CellView is a read-only snapshot of one grid position.
type CellView struct {
	Index     int
	Row, Col  int
	Entropy   int
	Collapsed bool
	// Variant is only meaningful when Collapsed is set.
	Variant Variant
}

// Contradicted reports an open cell with no candidates left.
func (c CellView) Contradicted() bool { return !c.Collapsed && c.Entropy == 0 }

// TileMap is a rows×cols grid solved by repeatedly collapsing the lowest
// entropy cell and constraining its four direct neighbours. It is not safe
// for concurrent use.
type TileMap struct {
	rows, cols int
	tiles      *TileSet
	rng        Rand

	cells     []cell
	state     State
	err       error
	steps     int
	collapsed int

	// scratch buffers reused between steps
	ties       []int
	candidates []int
	weights    []float64
}

// NewTileMap allocates a grid bound to ts. The tile set must not change while
// the map uses it. A nil r falls back to a fixed-seed PCG source.
func NewTileMap(rows, cols int, ts *TileSet, r Rand) (*TileMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	if ts == nil || ts.Len() == 0 {
		return nil, ErrEmptyTileSet
	}
	if r == nil {
		r = rand.New(rand.NewPCG(1, 0))
	}
	m := &TileMap{
		rows:  rows,
		cols:  cols,
		tiles: ts,
		rng:   r,
		cells: make([]cell, rows*cols),
	}
	for i := range m.cells {
		m.cells[i].options = bitset.New(uint(ts.Len()))
	}
	m.clear()
	return m, nil
}

// Rows returns the grid height.
func (m *TileMap) Rows() int { return m.rows }

// Cols returns the grid width.
func (m *TileMap) Cols() int { return m.cols }

// TileSet returns the registry the map was built on.
func (m *TileMap) TileSet() *TileSet { return m.tiles }

// State reports the current lifecycle stage.
func (m *TileMap) State() State { return m.state }

// Err returns the failure that moved the map to Contradicted, if any.
func (m *TileMap) Err() error { return m.err }

// Steps counts the collapses performed by Step since the last Initialize.
func (m *TileMap) Steps() int { return m.steps }

// Collapsed counts the cells committed to a variant.
func (m *TileMap) Collapsed() int { return m.collapsed }

// Initialize resets every cell to all candidates and collapses one cell
// chosen uniformly at random.
func (m *TileMap) Initialize() error {
	m.clear()
	m.state = Propagating
	if err := m.collapse(m.rng.IntN(len(m.cells))); err != nil {
		return m.fail(err)
	}
	m.settle()
	return nil
}

// Step collapses one of the lowest entropy open cells, picked uniformly among
// ties, and propagates its sockets to the adjacent cells. Once the map is
// solved Step is a no-op; after a contradiction it keeps returning the
// contradiction until Initialize is called again.
func (m *TileMap) Step() error {
	switch m.state {
	case Uninitialized:
		return ErrNotInitialized
	case Solved:
		return nil
	case Contradicted:
		return m.err
	}

	lowest := 0
	m.ties = m.ties[:0]
	for i := range m.cells {
		e := m.cells[i].entropy
		switch {
		case e == 0:
			continue
		case lowest == 0 || e < lowest:
			lowest = e
			m.ties = append(m.ties[:0], i)
		case e == lowest:
			m.ties = append(m.ties, i)
		}
	}
	if len(m.ties) == 0 {
		m.state = Solved
		return nil
	}

	m.steps++
	if err := m.collapse(m.ties[m.rng.IntN(len(m.ties))]); err != nil {
		return m.fail(err)
	}
	m.settle()
	return nil
}

// Solve steps until the map is solved or contradicted.
func (m *TileMap) Solve() error {
	if m.state == Uninitialized {
		return ErrNotInitialized
	}
	for m.state == Propagating {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return m.err
}

// CellAt returns a snapshot of the cell at (row, col).
func (m *TileMap) CellAt(row, col int) (CellView, error) {
	if !m.inBounds(row, col) {
		return CellView{}, fmt.Errorf("%w: cell (%d, %d) in %dx%d grid", ErrIndexOutOfRange, row, col, m.rows, m.cols)
	}
	idx := row*m.cols + col
	c := &m.cells[idx]
	view := CellView{Index: idx, Row: row, Col: col, Entropy: c.entropy}
	if c.variant >= 0 {
		view.Collapsed = true
		view.Variant = m.tiles.variants[c.variant]
	}
	return view, nil
}

// Candidates lists the registry indices still possible at (row, col). It is
// empty for collapsed cells.
func (m *TileMap) Candidates(row, col int) ([]int, error) {
	if !m.inBounds(row, col) {
		return nil, fmt.Errorf("%w: cell (%d, %d) in %dx%d grid", ErrIndexOutOfRange, row, col, m.rows, m.cols)
	}
	return setIndices(m.cells[row*m.cols+col].options, nil), nil
}

// CheckAdjacency verifies that every pair of adjacent collapsed cells shows
// the same socket on both sides of the shared edge.
func (m *TileMap) CheckAdjacency() error {
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			a := m.cells[row*m.cols+col]
			if a.variant < 0 {
				continue
			}
			for _, d := range [2]Direction{Right, Down} {
				dr, dc := d.Offset()
				nr, nc := row+dr, col+dc
				if !m.inBounds(nr, nc) {
					continue
				}
				b := m.cells[nr*m.cols+nc]
				if b.variant < 0 {
					continue
				}
				got := m.tiles.variants[a.variant].Faces[d]
				want := m.tiles.variants[b.variant].Faces[d.Opposite()]
				if got != want {
					return fmt.Errorf("%w: (%d, %d) %s is %s, (%d, %d) %s is %s",
						ErrMismatchedEdge, row, col, d, got, nr, nc, d.Opposite(), want)
				}
			}
		}
	}
	return nil
}

func (m *TileMap) clear() {
	n := m.tiles.Len()
	for i := range m.cells {
		c := &m.cells[i]
		c.options.ClearAll()
		for v := 0; v < n; v++ {
			c.options.Set(uint(v))
		}
		c.entropy = n
		c.variant = -1
	}
	m.state = Uninitialized
	m.err = nil
	m.steps = 0
	m.collapsed = 0
}

func (m *TileMap) collapse(idx int) error {
	c := &m.cells[idx]
	m.candidates = setIndices(c.options, m.candidates[:0])
	if len(m.candidates) == 0 {
		return fmt.Errorf("%w: cell (%d, %d)", ErrContradiction, idx/m.cols, idx%m.cols)
	}

	m.weights = m.weights[:0]
	for _, v := range m.candidates {
		m.weights = append(m.weights, m.tiles.variants[v].Weight)
	}
	pick, err := Choose(m.rng, m.weights)
	if err != nil {
		return fmt.Errorf("collapse cell (%d, %d): %w", idx/m.cols, idx%m.cols, err)
	}

	c.variant = m.candidates[pick]
	c.entropy = 0
	c.options.ClearAll()
	m.collapsed++
	return m.propagate(idx)
}

// propagate constrains the four direct neighbours of a freshly collapsed
// cell. It does not cascade further.
func (m *TileMap) propagate(idx int) error {
	row, col := idx/m.cols, idx%m.cols
	faces := m.tiles.variants[m.cells[idx].variant].Faces
	var first error
	for _, d := range Directions {
		dr, dc := d.Offset()
		nr, nc := row+dr, col+dc
		if !m.inBounds(nr, nc) {
			continue
		}
		if err := m.constrain(nr, nc, d.Opposite(), faces[d]); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// constrain drops every candidate of (row, col) whose face on side does not
// present want.
func (m *TileMap) constrain(row, col int, side Direction, want Socket) error {
	c := &m.cells[row*m.cols+col]
	if c.variant >= 0 {
		return nil
	}
	for v, ok := c.options.NextSet(0); ok; v, ok = c.options.NextSet(v + 1) {
		if m.tiles.variants[v].Faces[side] != want {
			c.options.Clear(v)
			c.entropy--
		}
	}
	if c.entropy == 0 {
		return fmt.Errorf("%w: cell (%d, %d) needs %s on its %s face", ErrContradiction, row, col, want, side)
	}
	return nil
}

func (m *TileMap) settle() {
	if m.collapsed == len(m.cells) {
		m.state = Solved
	}
}

func (m *TileMap) fail(err error) error {
	m.state = Contradicted
	m.err = err
	return err
}

func (m *TileMap) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

func setIndices(b *bitset.BitSet, dst []int) []int {
	for v, ok := b.NextSet(0); ok; v, ok = b.NextSet(v + 1) {
		dst = append(dst, int(v))
	}
	return dst
}
