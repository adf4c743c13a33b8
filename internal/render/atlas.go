//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tilewave/internal/wfc"
)

// Atlas caches one sprite per tile source identifier.
type Atlas struct {
	size     int
	sprites  map[string]*ebiten.Image
	variants []wfc.Variant
}

// NewAtlas rasterizes a sprite for every source in ts.
func NewAtlas(ts *wfc.TileSet, size int, style SpriteStyle) *Atlas {
	a := &Atlas{size: size, sprites: map[string]*ebiten.Image{}, variants: ts.Variants()}
	for _, v := range a.variants {
		if _, ok := a.sprites[v.Source]; ok {
			continue
		}
		a.sprites[v.Source] = ebiten.NewImageFromImage(PipeSprite(BaseFaces(v), size, style))
	}
	return a
}

// DrawVariant draws v with its top-left corner at (x, y), rotated clockwise
// about the tile centre and scaled to px pixels.
func (a *Atlas) DrawVariant(dst *ebiten.Image, v wfc.Variant, x, y, px float64) {
	sprite, ok := a.sprites[v.Source]
	if !ok {
		return
	}
	half := float64(a.size) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(v.Angle())
	op.GeoM.Scale(px/float64(a.size), px/float64(a.size))
	op.GeoM.Translate(x+px/2, y+px/2)
	dst.DrawImage(sprite, op)
}

// DrawAll previews every registry variant in its own orientation, in
// registry order, wrapping after perRow tiles.
func (a *Atlas) DrawAll(dst *ebiten.Image, x, y, px float64, perRow int) {
	for i, v := range a.variants {
		col, row := PreviewSlot(i, perRow)
		a.DrawVariant(dst, v, x+float64(col)*px, y+float64(row)*px, px)
	}
}
