package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// HUDLayer writes aim and score on the top border while playing
type HUDLayer struct{}

// HUDText formats the status line for a game
func HUDText(g *engine.Game) string {
	aim := constants.TextNoAim
	if g.IsScopeAligned() {
		aim = constants.TextAim
	}
	return fmt.Sprintf(" %s | SCORE: %d ", aim, g.Score())
}

func (HUDLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	if ctx.Game.State() == engine.StatePlaying {
		buf.SetString(ctx.AreaX+constants.HUDOffsetX, ctx.AreaY, HUDText(ctx.Game), fg(constants.RgbHUD))
	}
	if ctx.Muted {
		n := utf8.RuneCountInString(constants.TextMuted)
		x := ctx.AreaX + ctx.AreaWidth - constants.HUDOffsetX - n
		buf.SetString(x, ctx.AreaY+ctx.AreaHeight-1, constants.TextMuted, fg(constants.RgbHUD))
	}
}

// OverlayLayer shows the paused banner or the game over screen
type OverlayLayer struct{}

func (OverlayLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	style := fg(constants.RgbText)
	switch ctx.Game.State() {
	case engine.StatePaused:
		buf.SetString(ctx.CenterX(constants.TextPaused), ctx.CenterY(), constants.TextPaused, style)
	case engine.StateDead:
		score := fmt.Sprintf("SCORE: %d", ctx.Game.Score())
		cy := ctx.CenterY()
		buf.SetString(ctx.CenterX(score), cy-1, score, style)
		buf.SetString(ctx.CenterX(constants.TextRestart), cy+1, constants.TextRestart, style)
	}
}

// DebugLayer lists status lines inside the top-left of the board
type DebugLayer struct {
	Enabled bool
}

func (l DebugLayer) IsVisible() bool {
	return l.Enabled
}

func (l DebugLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	style := fg(constants.RgbDebug)
	maxRows := ctx.AreaHeight - 2*constants.BorderSize
	for i, line := range ctx.DebugLines {
		if i >= maxRows {
			return
		}
		buf.SetString(ctx.AreaX+constants.HUDOffsetX, ctx.AreaY+constants.BorderSize+i, line, style)
	}
}

// TooSmallLayer replaces the frame when the terminal cannot hold a board
type TooSmallLayer struct{}

func (TooSmallLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	n := utf8.RuneCountInString(constants.TextTooSmall)
	x := (ctx.ScreenWidth - n) / 2
	if x < 0 {
		x = 0
	}
	buf.SetString(x, ctx.ScreenHeight/2, constants.TextTooSmall, fg(constants.RgbText))
}
