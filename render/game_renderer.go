package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
)

// GameRenderer draws a Game to a tcell screen through the layer orchestrator
type GameRenderer struct {
	screen       tcell.Screen
	orchestrator *RenderOrchestrator
	config       RenderConfig
}

// NewGameRenderer registers the full layer set, or the minimal one when cfg.Minimal is set
func NewGameRenderer(screen tcell.Screen, cfg RenderConfig) *GameRenderer {
	o := NewRenderOrchestrator(screen)
	o.Buffer().SetColorMode(cfg.ColorMode)

	o.Register(BorderLayer{Color: constants.RgbBorder}, PriorityBorder)
	o.Register(SnakeLayer{}, PrioritySnake)
	o.Register(FoodLayer{}, PriorityFood)
	if !cfg.Minimal {
		o.Register(ScopeLayer{Enabled: cfg.ShowScope}, PriorityScope)
		o.Register(BulletLayer{}, PriorityBullets)
		o.Register(HUDLayer{}, PriorityUI)
		o.Register(OverlayLayer{}, PriorityOverlay)
		o.Register(DebugLayer{Enabled: cfg.Debug}, PriorityDebug)
	}

	return &GameRenderer{
		screen:       screen,
		orchestrator: o,
		config:       cfg,
	}
}

// NewMinimalRenderer draws only the border, the snake and the food
func NewMinimalRenderer(screen tcell.Screen) *GameRenderer {
	cfg := DefaultRenderConfig()
	cfg.Minimal = true
	return NewGameRenderer(screen, cfg)
}

// Config returns the configuration the renderer was built with
func (r *GameRenderer) Config() RenderConfig {
	return r.config
}

// Render composites one frame and shows it
func (r *GameRenderer) Render(ctx RenderContext) {
	r.orchestrator.RenderFrame(ctx)
}

// RenderTooSmall replaces the frame with a notice
func (r *GameRenderer) RenderTooSmall(width, height int) {
	buf := r.orchestrator.Buffer()
	buf.Clear()
	TooSmallLayer{}.Render(RenderContext{ScreenWidth: width, ScreenHeight: height}, buf)
	buf.FlushTo(r.screen)
	r.screen.Show()
}

// Resize follows a terminal size change
func (r *GameRenderer) Resize(width, height int) {
	r.orchestrator.Resize(width, height)
}

// Buffer exposes the last frame, used by the snapshot writer
func (r *GameRenderer) Buffer() *RenderBuffer {
	return r.orchestrator.Buffer()
}
