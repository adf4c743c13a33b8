//go:build ebiten

package ui

import (
	"image/color"

	"tilewave/internal/core"
	"tilewave/internal/render"
	"tilewave/internal/wfc"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type tileProvider interface {
	TileAt(x, y int) (wfc.CellView, bool)
}

// Overlay draws optional debugging visuals on top of the tile map.
type Overlay struct {
	sim   core.Sim
	atlas *render.Atlas
	scale int

	showGrid    bool
	showEntropy bool
	showAtlas   bool
}

// NewOverlay constructs a new overlay instance. scale is the tile size in
// screen pixels.
func NewOverlay(sim core.Sim, atlas *render.Atlas, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, atlas: atlas, scale: scale}
}

// Update toggles overlays with the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showEntropy = !o.showEntropy
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showAtlas = !o.showAtlas
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showGrid {
		o.drawGrid(screen, size)
	}
	if o.showEntropy {
		if provider, ok := o.sim.(tileProvider); ok {
			o.drawEntropy(screen, provider, size)
		}
	}
	if o.showAtlas && o.atlas != nil {
		o.atlas.DrawAll(screen, 0, 0, float64(o.scale), size.W)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size) {
	s := float32(o.scale)
	w, h := float32(size.W)*s, float32(size.H)*s
	lineColor := color.RGBA{R: 211, G: 211, B: 211, A: 160}
	for x := 0; x <= size.W; x++ {
		vector.StrokeLine(screen, float32(x)*s, 0, float32(x)*s, h, 1, lineColor, false)
	}
	for y := 0; y <= size.H; y++ {
		vector.StrokeLine(screen, 0, float32(y)*s, w, float32(y)*s, 1, lineColor, false)
	}
}

// drawEntropy prints the remaining candidate count of every open cell, with
// its linear index underneath when tiles are tall enough. It needs tiles of
// at least 16 pixels to stay legible.
func (o *Overlay) drawEntropy(screen *ebiten.Image, provider tileProvider, size core.Size) {
	if o.scale < 16 {
		return
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			cell, ok := provider.TileAt(x, y)
			if !ok || cell.Collapsed {
				continue
			}
			ebitenutil.DebugPrintAt(screen, entropyLabel(cell, o.scale), x*o.scale+2, y*o.scale)
		}
	}
}
