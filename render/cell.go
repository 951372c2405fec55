// Package render composites the game into a cell buffer and flushes it to a
// tcell screen. Layers draw in priority order; the same buffer feeds the PNG
// snapshot writer.
package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal column: a rune and its style
type Cell struct {
	Rune  rune
	Style tcell.Style
}

var emptyCell = Cell{Rune: ' ', Style: tcell.StyleDefault}

// IsEmpty reports whether nothing has been drawn to the cell
func (c Cell) IsEmpty() bool {
	return c == emptyCell
}

// Foreground returns the cell's foreground color
func (c Cell) Foreground() tcell.Color {
	fg, _, _ := c.Style.Decompose()
	return fg
}
