package constants

import "github.com/gdamore/tcell/v2"

// Board Layout
const (
	// CellWidth is terminal columns per board cell
	CellWidth = 2

	// BorderSize is rows/columns taken by the frame on each side
	BorderSize = 1
)

// Glyphs, each covering one two-column cell
const (
	GlyphSnake  = "▓▓"
	GlyphFood   = "▓▓"
	GlyphBullet = "██"
	GlyphScope  = "::"
)

// HUD text
const (
	TextAim      = "AIM"
	TextNoAim    = "   "
	TextPaused   = "PAUSED"
	TextRestart  = "PRESS SPACE TO RESTART"
	TextTooSmall = "TERMINAL TOO SMALL"
	TextMuted    = " MUTED "
)

// HUDOffsetX is the column of the HUD on the top border
const HUDOffsetX = 2

// Palette
var (
	RgbSnakeHead = tcell.NewRGBColor(200, 255, 200)
	RgbSnakeBody = tcell.ColorWhite
	RgbFood      = tcell.NewRGBColor(138, 43, 226)
	RgbBorder    = tcell.ColorGray
	RgbHUD       = tcell.ColorTeal
	RgbText      = tcell.ColorWhite
	RgbDebug     = tcell.ColorDarkCyan
	RgbCanvas    = tcell.ColorBlack
	RgbScopeOn   = tcell.ColorGreen
	RgbScopeOff  = tcell.ColorWhite
)

// BulletColor fades from yellow to red as lifetime runs out
func BulletColor(fraction float64) tcell.Color {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return tcell.NewRGBColor(255, int32(255*fraction), 0)
}
