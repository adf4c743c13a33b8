package wfc

import "strings"

// pipeRunes maps a connection mask (left=1, down=2, right=4, up=8) to a box
// drawing rune.
var pipeRunes = [16]rune{
	'·', '╴', '╷', '┐', '╶', '─', '┌', '┬',
	'╵', '┘', '│', '┤', '└', '┴', '├', '┼',
}

// Rune returns a box drawing glyph for the variant, treating every non-blank
// face as connected.
func (v Variant) Rune() rune {
	mask := 0
	for i, d := range Directions {
		if v.Faces[d] != Blank {
			mask |= 1 << i
		}
	}
	return pipeRunes[mask]
}

// RenderASCII draws the map one rune per cell. Open cells show '?' and
// contradicted cells show '!'.
func RenderASCII(m *TileMap) string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols*3 + 1))
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			c := m.cells[row*m.cols+col]
			switch {
			case c.variant >= 0:
				sb.WriteRune(m.tiles.variants[c.variant].Rune())
			case c.entropy == 0:
				sb.WriteByte('!')
			default:
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
