//go:build ebiten

package app

import (
	"image/color"
	"time"

	"tilewave/internal/core"
	"tilewave/internal/render"
	"tilewave/internal/ui"
	"tilewave/internal/wfc"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type tileSource interface {
	TileSet() *wfc.TileSet
	TileSize() int
	TileAt(x, y int) (wfc.CellView, bool)
}

// maxStepsPerFrame bounds catch-up after a slow frame.
const maxStepsPerFrame = 64

var background = color.RGBA{R: 255, G: 240, B: 255, A: 255}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	atlas   *render.Atlas
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. scale is the tile size
// in screen pixels; zero uses the sim's own tile size.
func New(sim core.Sim, scale, tps, hudWidth int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		stepper: core.NewFixedStep(tps),
		scale:   scale,
		paused:  true,
		seed:    seed,
	}
	if src, ok := sim.(tileSource); ok {
		if g.scale <= 0 {
			g.scale = src.TileSize()
		}
		g.atlas = render.NewAtlas(src.TileSet(), src.TileSize(), render.DefaultSpriteStyle())
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	g.overlay = ui.NewOverlay(sim, g.atlas, g.scale)
	g.hud = ui.NewHUD(sim, hudWidth)
	return g
}

// Reset starts a fresh attempt with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	steps := g.stepper.Due(maxStepsPerFrame)
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}
	return nil
}

// Draw renders the background, the collapsed tiles and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if p, ok := g.sim.(paletteProvider); ok {
		g.painter.Blit(screen, g.sim.Cells(), p.Palette(), g.scale)
	}
	if src, ok := g.sim.(tileSource); ok && g.atlas != nil {
		g.drawTiles(screen, src)
	}
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

func (g *Game) drawTiles(screen *ebiten.Image, src tileSource) {
	size := g.sim.Size()
	px := float64(g.scale)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			cell, ok := src.TileAt(x, y)
			if !ok || !cell.Collapsed {
				continue
			}
			g.atlas.DrawVariant(screen, cell.Variant, float64(x)*px, float64(y)*px, px)
		}
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
