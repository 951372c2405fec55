package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/vmath"
)

// pixelAt samples the center of a board cell
func pixelAt(img image.Image, cell vmath.Vec2, cellSize int) (int32, int32, int32) {
	r, g, b, _ := img.At(cell.X*cellSize+cellSize/2, cell.Y*cellSize+cellSize/2).RGBA()
	return int32(r >> 8), int32(g >> 8), int32(b >> 8)
}

func colorRGB(c tcell.Color) (int32, int32, int32) {
	return c.RGB()
}

func TestSnapshotImage(t *testing.T) {
	g := newRenderTestGame(t, 0)
	const cellSize = 8

	img := SnapshotImage(g, cellSize)
	if b := img.Bounds(); b.Dx() != testBoardW*cellSize || b.Dy() != testBoardH*cellSize {
		t.Fatalf("Expected %dx%d image, got %dx%d", testBoardW*cellSize, testBoardH*cellSize, b.Dx(), b.Dy())
	}

	wr, wg, wb := colorRGB(constants.RgbSnakeHead)
	if r, gr, b := pixelAt(img, vmath.V(5, 4), cellSize); r != wr || gr != wg || b != wb {
		t.Errorf("Expected head color (%d,%d,%d), got (%d,%d,%d)", wr, wg, wb, r, gr, b)
	}

	fr, fg, fb := colorRGB(constants.RgbFood)
	if r, gr, b := pixelAt(img, vmath.V(0, 0), cellSize); r != fr || gr != fg || b != fb {
		t.Errorf("Expected food color (%d,%d,%d), got (%d,%d,%d)", fr, fg, fb, r, gr, b)
	}

	if r, gr, b := pixelAt(img, vmath.V(3, 6), cellSize); r != 0 || gr != 0 || b != 0 {
		t.Errorf("Expected empty cell black, got (%d,%d,%d)", r, gr, b)
	}
}

func TestSnapshotDimmedWhenDead(t *testing.T) {
	g := newRenderTestGame(t, 0)
	const cellSize = 8

	g.SetDirection(vmath.DirUp)
	for i := 0; i < 5; i++ {
		g.MoveSnake()
	}
	if !g.State().IsDead() {
		t.Fatalf("Expected Dead, got %v", g.State())
	}

	img := SnapshotImage(g, cellSize)
	_, hg, _ := colorRGB(constants.RgbSnakeHead)
	if _, gr, _ := pixelAt(img, vmath.V(5, 0), cellSize); gr >= hg {
		t.Errorf("Expected dimmed head green below %d, got %d", hg, gr)
	}

	fr, fg, fb := colorRGB(constants.RgbFood)
	if r, gr, b := pixelAt(img, vmath.V(0, 0), cellSize); r == fr && gr == fg && b == fb {
		t.Error("Expected food omitted after death")
	}
}

func TestSaveSnapshot(t *testing.T) {
	g := newRenderTestGame(t, 0)
	path := filepath.Join(t.TempDir(), "shots", "board.png")

	if err := SaveSnapshot(g, path, 0); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected file written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty PNG")
	}
}
