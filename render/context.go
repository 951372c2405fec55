package render

import (
	"unicode/utf8"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/vmath"
)

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	Game *engine.Game

	// Framed area in screen coordinates, border included
	AreaX      int
	AreaY      int
	AreaWidth  int
	AreaHeight int

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	Muted      bool
	DebugLines []string
}

// NewRenderContext frames the game's board at the screen origin
func NewRenderContext(g *engine.Game, screenWidth, screenHeight int) RenderContext {
	w, h := g.Bounds()
	return RenderContext{
		Game:         g,
		AreaWidth:    w*constants.CellWidth + 2*constants.BorderSize,
		AreaHeight:   h + 2*constants.BorderSize,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// Offset is the screen position of board cell (0,0)
func (rc RenderContext) Offset() vmath.Vec2 {
	return vmath.V(rc.AreaX+constants.BorderSize, rc.AreaY+constants.BorderSize)
}

// CellToScreen converts a board cell to the screen column and row of its left half
func (rc RenderContext) CellToScreen(p vmath.Vec2) (int, int) {
	return p.ToScreen(rc.Offset())
}

// CenterX returns the column that centers s in the framed area
func (rc RenderContext) CenterX(s string) int {
	n := utf8.RuneCountInString(s)
	pad := rc.AreaWidth - n
	if pad < 0 {
		pad = 0
	}
	return rc.AreaX + pad/2
}

// CenterY returns the middle row of the framed area
func (rc RenderContext) CenterY() int {
	return rc.AreaY + rc.AreaHeight/2
}
