package render

// Layer is one pass of the frame compositor
type Layer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// LayerFunc adapts a function to Layer
type LayerFunc func(ctx RenderContext, buf *RenderBuffer)

func (f LayerFunc) Render(ctx RenderContext, buf *RenderBuffer) {
	f(ctx, buf)
}
