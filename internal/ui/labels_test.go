package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tilewave/internal/wfc"
)

func TestEntropyLabel(t *testing.T) {
	cell := wfc.CellView{Index: 37, Row: 2, Col: 5, Entropy: 12}
	assert.Equal(t, "12", entropyLabel(cell, 16), "small tiles only fit the entropy")
	assert.Equal(t, "12\n37", entropyLabel(cell, 32))
	assert.Equal(t, "0\n0", entropyLabel(wfc.CellView{}, 64))
}
