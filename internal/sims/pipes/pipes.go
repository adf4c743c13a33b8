// Package pipes drives a wave function collapse pipe map as a viewer sim.
package pipes

import (
	"image/color"
	"log"

	"tilewave/internal/core"
	"tilewave/internal/tilecfg"
	"tilewave/internal/wfc"
)

// Display values written to Cells.
const (
	DisplayCollapsed uint8 = iota
	DisplayOpen
	DisplayContradiction
)

var palette = []color.RGBA{
	DisplayCollapsed:     {R: 255, G: 240, B: 255, A: 255},
	DisplayOpen:          {R: 135, G: 206, B: 235, A: 255},
	DisplayContradiction: {R: 220, G: 40, B: 40, A: 255},
}

// Sim adapts a wfc.TileMap to core.Sim.
type Sim struct {
	cfg      Config
	tiles    *wfc.TileSet
	tileSize int

	tm      *wfc.TileMap
	rng     *core.RNG
	seed    int64
	display *core.ByteGrid
	last    wfc.State

	logger *log.Logger
}

// New builds a sim over ts. Reset must be called before stepping.
func New(cfg Config, ts *wfc.TileSet, tileSize int) *Sim {
	if cfg.Rows <= 0 {
		cfg.Rows = 1
	}
	if cfg.Cols <= 0 {
		cfg.Cols = 1
	}
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = 1
	}
	if tileSize <= 0 {
		tileSize = tilecfg.DefaultTileSize
	}
	return &Sim{
		cfg:      cfg,
		tiles:    ts,
		tileSize: tileSize,
		display:  core.NewByteGrid(cfg.Cols, cfg.Rows),
		logger:   log.Default(),
	}
}

// SetLogger replaces the logger used for lifecycle messages.
func (s *Sim) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "pipes" }

// Size reports the grid dimensions in tiles.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Cols, H: s.cfg.Rows} }

// Cells exposes the display buffer.
func (s *Sim) Cells() []uint8 { return s.display.Cells() }

// Palette maps display values to background colors.
func (s *Sim) Palette() []color.RGBA { return palette }

// TileSize is the sprite edge length in pixels.
func (s *Sim) TileSize() int { return s.tileSize }

// TileSet exposes the variant registry.
func (s *Sim) TileSet() *wfc.TileSet { return s.tiles }

// TileMap exposes the active solver, nil before the first Reset.
func (s *Sim) TileMap() *wfc.TileMap { return s.tm }

// Seed returns the seed of the current attempt.
func (s *Sim) Seed() int64 { return s.seed }

// TileAt returns the cell at column x, row y.
func (s *Sim) TileAt(x, y int) (wfc.CellView, bool) {
	if s.tm == nil {
		return wfc.CellView{}, false
	}
	v, err := s.tm.CellAt(y, x)
	return v, err == nil
}

// Reset starts a fresh attempt. A zero seed selects the configured seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	s.rng = core.NewRNG(seed)
	tm, err := wfc.NewTileMap(s.cfg.Rows, s.cfg.Cols, s.tiles, s.rng)
	if err != nil {
		s.logger.Printf("pipes: %v", err)
		s.tm = nil
		return
	}
	s.tm = tm
	s.last = wfc.Uninitialized
	if err := s.tm.Initialize(); err != nil {
		s.logger.Printf("pipes: seed %d: initialize: %v", seed, err)
	}
	s.report()
	s.refresh()
}

// Step advances the solver by the configured number of steps.
func (s *Sim) Step() {
	if s.tm == nil {
		return
	}
	for i := 0; i < s.cfg.StepsPerTick && s.tm.State() == wfc.Propagating; i++ {
		_ = s.tm.Step()
	}
	s.report()
	if s.tm.State() == wfc.Contradicted && s.cfg.RestartOnContradiction {
		s.Reset(s.rng.Int64())
		return
	}
	s.refresh()
}

// report logs state transitions once.
func (s *Sim) report() {
	state := s.tm.State()
	if state == s.last {
		return
	}
	s.last = state
	switch state {
	case wfc.Solved:
		s.logger.Printf("pipes: seed %d solved %dx%d in %d steps", s.seed, s.cfg.Rows, s.cfg.Cols, s.tm.Steps())
	case wfc.Contradicted:
		s.logger.Printf("pipes: seed %d contradicted after %d steps: %v", s.seed, s.tm.Steps(), s.tm.Err())
	}
}

func (s *Sim) refresh() {
	for row := 0; row < s.cfg.Rows; row++ {
		for col := 0; col < s.cfg.Cols; col++ {
			v, _ := s.tm.CellAt(row, col)
			value := DisplayOpen
			switch {
			case v.Collapsed:
				value = DisplayCollapsed
			case v.Contradicted():
				value = DisplayContradiction
			}
			s.display.Set(col, row, value)
		}
	}
}

func init() {
	core.Register("pipes", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		file, err := tilecfg.LoadOrDefault(c.Tileset)
		if err != nil {
			log.Printf("pipes: %v; using embedded tile set", err)
			file = tilecfg.Default()
		}
		ts, err := file.TileSet()
		if err != nil {
			log.Printf("pipes: %v; using embedded tile set", err)
			file = tilecfg.Default()
			ts, _ = file.TileSet()
		}
		return New(c, ts, file.TileSize)
	})
}
