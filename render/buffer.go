package render

import (
	"github.com/gdamore/tcell/v2"
)

// RenderBuffer is the frame compositor, one Cell per terminal column
// Layers write into it; FlushTo copies the result to a screen in one pass
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	mode   ColorMode
}

// NewRenderBuffer creates a cleared buffer
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// SetColorMode sets the mode applied on flush
func (b *RenderBuffer) SetColorMode(mode ColorMode) {
	b.mode = mode
}

// Clear resets all cells using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell, ignoring writes outside the buffer
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetString writes s left to right starting at (x, y), one rune per column
// Returns the number of columns consumed, clipped runes included
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style) int {
	n := 0
	for _, r := range s {
		b.Set(x+n, y, r, style)
		n++
	}
	return n
}

// Get returns the cell at (x, y), empty if outside the buffer
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Row returns row y as text, for tests and logging
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	rs := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		rs[x] = b.cells[y*b.width+x].Rune
	}
	return string(rs)
}

// Bounds returns width and height
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// FlushTo copies every cell to the screen without calling Show
func (b *RenderBuffer) FlushTo(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, b.mode.apply(c.Style))
		}
	}
}
