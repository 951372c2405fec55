package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBufferSetAndClip(t *testing.T) {
	buf := NewRenderBuffer(4, 2)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	buf.Set(1, 1, 'x', style)
	buf.Set(-1, 0, 'y', style)
	buf.Set(4, 0, 'y', style)

	if c := buf.Get(1, 1); c.Rune != 'x' || c.Foreground() != tcell.ColorRed {
		t.Errorf("Expected red 'x' at (1,1), got %q %v", c.Rune, c.Foreground())
	}
	if c := buf.Get(10, 10); !c.IsEmpty() {
		t.Errorf("Expected empty cell outside buffer, got %q", c.Rune)
	}
	if got := buf.Row(0); got != "    " {
		t.Errorf("Expected clipped writes to leave row 0 blank, got %q", got)
	}
}

func TestRenderBufferSetString(t *testing.T) {
	buf := NewRenderBuffer(5, 1)
	n := buf.SetString(3, 0, "▓▓▓", tcell.StyleDefault)
	if n != 3 {
		t.Errorf("Expected 3 columns consumed, got %d", n)
	}
	if got := buf.Row(0); got != "   ▓▓" {
		t.Errorf("Expected clipped glyph run, got %q", got)
	}
}

func TestRenderBufferResizeClears(t *testing.T) {
	buf := NewRenderBuffer(3, 3)
	buf.Set(0, 0, 'a', tcell.StyleDefault)

	buf.Resize(2, 2)
	w, h := buf.Bounds()
	if w != 2 || h != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", w, h)
	}
	if !buf.Get(0, 0).IsEmpty() {
		t.Error("Expected resize to clear content")
	}

	buf.Resize(-1, 5)
	if w, h := buf.Bounds(); w != 0 || h != 5 {
		t.Errorf("Expected negative width clamped to 0, got %dx%d", w, h)
	}
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(4, 1)
	defer screen.Fini()

	o := NewRenderOrchestrator(screen)
	draw := func(r rune) LayerFunc {
		return func(ctx RenderContext, buf *RenderBuffer) {
			buf.Set(0, 0, r, tcell.StyleDefault)
		}
	}
	o.Register(draw('c'), PriorityOverlay)
	o.Register(draw('a'), PriorityBorder)
	o.Register(draw('b'), PriorityOverlay)

	if o.LayerCount() != 3 {
		t.Fatalf("Expected 3 layers, got %d", o.LayerCount())
	}

	o.RenderFrame(RenderContext{})
	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != 'b' {
		t.Errorf("Expected last registered overlay 'b' on top, got %q", mainc)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorTrue, false},
		{"truecolor", ColorTrue, false},
		{"MONO", ColorMono, false},
		{"none", ColorMono, false},
		{"sepia", ColorTrue, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
