package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBorder RenderPriority = iota
	PriorityScope
	PrioritySnake
	PriorityFood
	PriorityBullets
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
