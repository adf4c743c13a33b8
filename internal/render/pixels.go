package render

import (
	"image"
	"image/color"
	"image/draw"

	"tilewave/internal/wfc"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// SpriteStyle selects the colors used for generated tile sprites.
type SpriteStyle struct {
	Background color.RGBA
	Sockets    map[wfc.Socket]color.RGBA
}

// DefaultSpriteStyle draws dark pipes on a transparent tile.
func DefaultSpriteStyle() SpriteStyle {
	return SpriteStyle{
		Sockets: map[wfc.Socket]color.RGBA{
			wfc.Pipe: {R: 40, G: 44, B: 52, A: 255},
		},
	}
}

// PipeSprite rasterizes an unrotated tile: an arm from the centre to every
// non-blank face, colored by socket. Drawing collaborators rotate the result
// by the variant's angle.
func PipeSprite(faces wfc.Faces, size int, style SpriteStyle) *image.RGBA {
	if size <= 0 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	width := size / 4
	if width < 1 {
		width = 1
	}
	lo := (size - width) / 2
	hi := lo + width
	mid := (size + 1) / 2

	connected := false
	for _, d := range wfc.Directions {
		s := faces[d]
		if s == wfc.Blank {
			continue
		}
		col, ok := style.Sockets[s]
		if !ok {
			col = color.RGBA{R: 200, G: 60, B: 200, A: 255}
		}
		var arm image.Rectangle
		switch d {
		case wfc.Left:
			arm = image.Rect(0, lo, mid, hi)
		case wfc.Right:
			arm = image.Rect(size-mid, lo, size, hi)
		case wfc.Up:
			arm = image.Rect(lo, 0, hi, mid)
		case wfc.Down:
			arm = image.Rect(lo, size-mid, hi, size)
		}
		draw.Draw(img, arm, image.NewUniform(col), image.Point{}, draw.Src)
		connected = true
	}
	if connected {
		if col, ok := style.Sockets[wfc.Pipe]; ok {
			draw.Draw(img, image.Rect(lo, lo, hi, hi), image.NewUniform(col), image.Point{}, draw.Src)
		}
	}
	return img
}

// BaseFaces undoes a variant's rotation, giving the faces its sprite is
// drawn with.
func BaseFaces(v wfc.Variant) wfc.Faces {
	return wfc.Rotate(v.Faces, 4-v.Rotation%4)
}

// PreviewSlot places the i-th preview tile on a grid perRow tiles wide.
func PreviewSlot(i, perRow int) (col, row int) {
	if perRow <= 0 {
		return i, 0
	}
	return i % perRow, i / perRow
}
