package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
)

// BorderLayer frames the board with box-drawing runes
type BorderLayer struct {
	Color tcell.Color
}

func (l BorderLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	if ctx.AreaWidth < 2 || ctx.AreaHeight < 2 {
		return
	}
	style := fg(l.Color)
	x0, y0 := ctx.AreaX, ctx.AreaY
	x1, y1 := x0+ctx.AreaWidth-1, y0+ctx.AreaHeight-1

	for x := x0 + 1; x < x1; x++ {
		buf.Set(x, y0, tcell.RuneHLine, style)
		buf.Set(x, y1, tcell.RuneHLine, style)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.Set(x0, y, tcell.RuneVLine, style)
		buf.Set(x1, y, tcell.RuneVLine, style)
	}
	buf.Set(x0, y0, tcell.RuneULCorner, style)
	buf.Set(x1, y0, tcell.RuneURCorner, style)
	buf.Set(x0, y1, tcell.RuneLLCorner, style)
	buf.Set(x1, y1, tcell.RuneLRCorner, style)
}

// ScopeLayer draws the aiming ray as dots every DotSpacing cells
type ScopeLayer struct {
	Enabled bool
}

func (l ScopeLayer) IsVisible() bool {
	return l.Enabled
}

func (l ScopeLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	scope := ctx.Game.Scope()
	spacing := scope.Config().DotSpacing
	style := fg(scope.Color())

	i := 0
	for p := range scope.Points() {
		if i%spacing == 0 {
			x, y := ctx.CellToScreen(p)
			buf.SetString(x, y, constants.GlyphScope, style)
		}
		i++
	}
}

// SnakeLayer draws the body white and the head light green
type SnakeLayer struct{}

func (SnakeLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	segments := ctx.Game.Snake().Segments()
	body := fg(constants.RgbSnakeBody)
	for i := len(segments) - 1; i > 0; i-- {
		x, y := ctx.CellToScreen(segments[i])
		buf.SetString(x, y, constants.GlyphSnake, body)
	}
	if len(segments) > 0 {
		x, y := ctx.CellToScreen(segments[0])
		buf.SetString(x, y, constants.GlyphSnake, fg(constants.RgbSnakeHead))
	}
}

// FoodLayer draws active food, hidden once the snake is dead
type FoodLayer struct{}

func (FoodLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	if ctx.Game.State().IsDead() {
		return
	}
	food := ctx.Game.Food()
	if !food.IsActive() {
		return
	}
	x, y := ctx.CellToScreen(food.Position())
	buf.SetString(x, y, constants.GlyphFood, fg(food.Color()))
}

// BulletLayer draws live bullets fading from yellow to red
type BulletLayer struct{}

func (BulletLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	for b := range ctx.Game.Bullets().All() {
		x, y := ctx.CellToScreen(b.Position())
		buf.SetString(x, y, constants.GlyphBullet, fg(constants.BulletColor(b.LifetimeFraction())))
	}
}
