package vmath

// Bounds is a width × height rectangle anchored at the origin
type Bounds struct {
	Width, Height int
}

// NewBounds creates bounds of the given size
func NewBounds(width, height int) Bounds {
	return Bounds{Width: width, Height: height}
}

// Contains reports whether 0 ≤ p.X < Width and 0 ≤ p.Y < Height
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Center returns the cell at (Width/2, Height/2)
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.Width / 2, Y: b.Height / 2}
}

// Vec returns the size as a vector
func (b Bounds) Vec() Vec2 {
	return Vec2{X: b.Width, Y: b.Height}
}

// Area returns the number of cells
func (b Bounds) Area() int {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// BoundsFromVec converts a size vector to bounds
func BoundsFromVec(v Vec2) Bounds {
	return Bounds{Width: v.X, Height: v.Y}
}
