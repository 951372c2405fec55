package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode selects how styles reach the terminal
type ColorMode uint8

const (
	// ColorTrue passes styles through unchanged
	ColorTrue ColorMode = iota
	// ColorMono drops all colors, keeping glyphs only
	ColorMono
)

func (m ColorMode) String() string {
	if m == ColorMono {
		return "mono"
	}
	return "true"
}

// ParseColorMode accepts "true", "truecolor", "256", "mono" or "none"
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "true", "truecolor", "256", "color":
		return ColorTrue, nil
	case "mono", "none", "off":
		return ColorMono, nil
	}
	return ColorTrue, fmt.Errorf("unknown color mode %q", s)
}

// apply adapts a style to the mode
func (m ColorMode) apply(style tcell.Style) tcell.Style {
	if m == ColorMono {
		return style.Foreground(tcell.ColorDefault).Background(tcell.ColorDefault)
	}
	return style
}

// RenderConfig selects what GameRenderer draws
type RenderConfig struct {
	ShowScope bool
	Minimal   bool
	ColorMode ColorMode
	Debug     bool
}

// DefaultRenderConfig draws everything in true color
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ShowScope: true,
		ColorMode: ColorTrue,
	}
}

func fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c)
}
