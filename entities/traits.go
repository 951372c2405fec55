// Package entities holds the mobile game objects: the snake, the food target and bullets
// Each type exposes its capabilities as plain methods; the interfaces below let
// systems operate on any entity that has a given capability
package entities

import "github.com/lixenwraith/vi-snake/vmath"

// Positioned has a single representative cell
type Positioned interface {
	Position() vmath.Vec2
	SetPosition(pos vmath.Vec2)
}

// Moveable advances by a per-tick velocity
type Moveable interface {
	Positioned
	Velocity() vmath.Vec2
	SetVelocity(vel vmath.Vec2)
}

// Active entities can be switched off and are skipped or purged once inactive
type Active interface {
	IsActive() bool
	Deactivate()
}

// Targetable can be aimed at
type Targetable interface {
	Positioned
	IsValidTarget() bool
}

// BoundedTicker advances one step inside the play field
type BoundedTicker interface {
	Tick(bounds vmath.Bounds)
}

// Segmented occupies an ordered run of cells
type Segmented interface {
	Positioned
	SegmentCount() int
	SegmentAt(index vmath.SegmentIndex) (vmath.Vec2, bool)
	ContainsPosition(pos vmath.Vec2) bool
}

// Damageable can lose trailing segments
type Damageable interface {
	Segmented
	DamageAt(index vmath.SegmentIndex) DamageResult
}

// ApplyMovement moves m by its velocity without any bounds check
func ApplyMovement(m Moveable) {
	m.SetPosition(m.Position().Add(m.Velocity()))
}

// FindSegment returns the index of the first segment at pos
func FindSegment(s Segmented, pos vmath.Vec2) (vmath.SegmentIndex, bool) {
	for i := 0; i < s.SegmentCount(); i++ {
		idx := vmath.SegmentIndex(i)
		if p, ok := s.SegmentAt(idx); ok && p == pos {
			return idx, true
		}
	}
	return 0, false
}

// BodyContains reports whether pos is occupied by a non-head segment
func BodyContains(s Segmented, pos vmath.Vec2) bool {
	idx, ok := FindSegment(s, pos)
	return ok && idx.IsBody()
}

// DamageAtPosition damages d at the segment occupying pos, if any
func DamageAtPosition(d Damageable, pos vmath.Vec2) (DamageResult, bool) {
	idx, ok := FindSegment(d, pos)
	if !ok {
		return DamageResult{}, false
	}
	return d.DamageAt(idx), true
}

// Collides reports exact cell overlap
func Collides(a, b Positioned) bool {
	return a.Position() == b.Position()
}

// CollidesWithAny reports whether a overlaps any of others
func CollidesWithAny[T Positioned](a Positioned, others []T) bool {
	pos := a.Position()
	for _, o := range others {
		if o.Position() == pos {
			return true
		}
	}
	return false
}
