package ui

import (
	"strconv"

	"tilewave/internal/wfc"
)

// labelLineHeight is the debug font line height in pixels.
const labelLineHeight = 16

// entropyLabel renders a cell's candidate count, followed by its linear index
// on a second line when the tile has room for two lines.
func entropyLabel(cell wfc.CellView, scale int) string {
	label := strconv.Itoa(cell.Entropy)
	if scale >= 2*labelLineHeight {
		label += "\n" + strconv.Itoa(cell.Index)
	}
	return label
}
