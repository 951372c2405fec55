package constants

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBulletColorFade(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		expected tcell.Color
	}{
		{"full", 1.0, tcell.NewRGBColor(255, 255, 0)},
		{"half", 0.5, tcell.NewRGBColor(255, 127, 0)},
		{"spent", 0.0, tcell.NewRGBColor(255, 0, 0)},
		{"clamped high", 2.0, tcell.NewRGBColor(255, 255, 0)},
		{"clamped low", -1.0, tcell.NewRGBColor(255, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BulletColor(tt.fraction); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGlyphWidthMatchesCell(t *testing.T) {
	for _, g := range []string{GlyphSnake, GlyphFood, GlyphBullet, GlyphScope} {
		if n := len([]rune(g)); n != CellWidth {
			t.Errorf("Expected glyph %q to span %d columns, got %d runes", g, CellWidth, n)
		}
	}
}
