package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/vmath"
)

const (
	// snapshotBaseCell is the pixel size of one cell before upscaling
	snapshotBaseCell = 4
	// DefaultSnapshotCellSize is the pixel size of one cell in the saved image
	DefaultSnapshotCellSize = 16
	// deadBrightness dims the picture of a finished game
	deadBrightness = -40
)

// SnapshotImage paints the board at cellSize pixels per cell
// The picture is drawn small with gg and scaled up nearest-neighbor so cells stay crisp
func SnapshotImage(g *engine.Game, cellSize int) image.Image {
	if cellSize < 1 {
		cellSize = DefaultSnapshotCellSize
	}
	w, h := g.Bounds()

	dc := gg.NewContext(w*snapshotBaseCell, h*snapshotBaseCell)
	setColor(dc, constants.RgbCanvas)
	dc.Clear()
	renderGrid(dc, w, h)

	scope := g.Scope()
	i := 0
	for p := range scope.Points() {
		if i%scope.Config().DotSpacing == 0 {
			fillCell(dc, p, scope.Color(), snapshotBaseCell/2)
		}
		i++
	}

	segments := g.Snake().Segments()
	for i := len(segments) - 1; i >= 0; i-- {
		c := constants.RgbSnakeBody
		if i == 0 {
			c = constants.RgbSnakeHead
		}
		fillCell(dc, segments[i], c, snapshotBaseCell)
	}

	if food := g.Food(); food.IsActive() && !g.State().IsDead() {
		fillCell(dc, food.Position(), food.Color(), snapshotBaseCell)
	}

	for b := range g.Bullets().All() {
		fillCell(dc, b.Position(), constants.BulletColor(b.LifetimeFraction()), snapshotBaseCell/2)
	}

	var img image.Image = dc.Image()
	scale := float64(cellSize) / snapshotBaseCell
	img = imaging.Resize(img, int(float64(w*snapshotBaseCell)*scale), int(float64(h*snapshotBaseCell)*scale), imaging.NearestNeighbor)
	if g.State().IsDead() {
		img = imaging.AdjustBrightness(img, deadBrightness)
	}
	return img
}

// SaveSnapshot writes the board to path, format chosen by extension
func SaveSnapshot(g *engine.Game, path string, cellSize int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := imaging.Save(SnapshotImage(g, cellSize), path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

func renderGrid(dc *gg.Context, w, h int) {
	dc.SetRGB(0.12, 0.12, 0.12)
	dc.SetLineWidth(1)
	for x := 0; x <= w; x++ {
		px := float64(x * snapshotBaseCell)
		dc.DrawLine(px, 0, px, float64(h*snapshotBaseCell))
		dc.Stroke()
	}
	for y := 0; y <= h; y++ {
		py := float64(y * snapshotBaseCell)
		dc.DrawLine(0, py, float64(w*snapshotBaseCell), py)
		dc.Stroke()
	}
}

// fillCell draws a square of side size centered in the cell
func fillCell(dc *gg.Context, p vmath.Vec2, c tcell.Color, size int) {
	setColor(dc, c)
	inset := float64(snapshotBaseCell-size) / 2
	dc.DrawRectangle(float64(p.X*snapshotBaseCell)+inset, float64(p.Y*snapshotBaseCell)+inset, float64(size), float64(size))
	dc.Fill()
}

func setColor(dc *gg.Context, c tcell.Color) {
	r, g, b := c.RGB()
	if r < 0 {
		r, g, b = 0, 0, 0
	}
	dc.SetRGB255(int(r), int(g), int(b))
}
