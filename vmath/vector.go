package vmath

import "fmt"

// Vec2 is an integer grid coordinate or displacement
// X grows to the right, Y grows downward (screen order)
type Vec2 struct {
	X, Y int
}

// V is shorthand for Vec2{X: x, Y: y}
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero returns the origin
func Zero() Vec2 {
	return Vec2{}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by scalar k
func (v Vec2) Scale(k int) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// MagnitudeSq returns x² + y², avoids sqrt
func (v Vec2) MagnitudeSq() int {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) int {
	return v.X*o.X + v.Y*o.Y
}

// InBounds reports whether v lies in [0, size.X) × [0, size.Y)
func (v Vec2) InBounds(size Vec2) bool {
	return v.X >= 0 && v.X < size.X && v.Y >= 0 && v.Y < size.Y
}

// Signum returns the per-axis sign of v, each component in {-1, 0, 1}
func (v Vec2) Signum() Vec2 {
	return Vec2{X: sign(v.X), Y: sign(v.Y)}
}

// ChebyshevLen returns max(|x|, |y|), the number of unit steps a straight move spans
func (v Vec2) ChebyshevLen() int {
	return max(abs(v.X), abs(v.Y))
}

// ToScreen maps a grid cell to terminal column/row
// Each cell is two columns wide to compensate for the glyph aspect ratio
func (v Vec2) ToScreen(offset Vec2) (int, int) {
	return offset.X + v.X*2, offset.Y + v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
