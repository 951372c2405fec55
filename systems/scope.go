package systems

import (
	"iter"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/vmath"
)

// ScopeConfig styles the aim ray
type ScopeConfig struct {
	AlignedColor   tcell.Color
	UnalignedColor tcell.Color
	DotSpacing     int
}

func DefaultScopeConfig() ScopeConfig {
	return ScopeConfig{
		AlignedColor:   constants.RgbScopeOn,
		UnalignedColor: constants.RgbScopeOff,
		DotSpacing:     2,
	}
}

// Scope tracks whether the snake faces the food along a row or column
// State is derived; Update recomputes everything from its inputs
type Scope struct {
	origin    vmath.Vec2
	direction vmath.Direction
	target    vmath.Vec2
	hasTarget bool
	bounds    vmath.Bounds
	aligned   bool
	config    ScopeConfig
}

// NewScope creates a scope with no target
func NewScope() *Scope {
	return NewScopeWithConfig(DefaultScopeConfig())
}

func NewScopeWithConfig(cfg ScopeConfig) *Scope {
	if cfg.DotSpacing < 1 {
		cfg.DotSpacing = 1
	}
	return &Scope{direction: vmath.DirRight, config: cfg}
}

// Update replaces all inputs and recomputes alignment
func (s *Scope) Update(origin vmath.Vec2, dir vmath.Direction, target vmath.Vec2, bounds vmath.Bounds) {
	s.origin = origin
	s.direction = dir
	s.target = target
	s.hasTarget = true
	s.bounds = bounds
	s.aligned = s.checkAlignment()
}

// checkAlignment requires a shared row/column and the target strictly ahead
func (s *Scope) checkAlignment() bool {
	if !s.hasTarget {
		return false
	}
	o, t := s.origin, s.target
	switch s.direction {
	case vmath.DirUp:
		return o.X == t.X && t.Y < o.Y
	case vmath.DirDown:
		return o.X == t.X && t.Y > o.Y
	case vmath.DirLeft:
		return o.Y == t.Y && t.X < o.X
	case vmath.DirRight:
		return o.Y == t.Y && t.X > o.X
	}
	return false
}

func (s *Scope) IsAligned() bool {
	return s.aligned
}

func (s *Scope) Origin() vmath.Vec2 {
	return s.origin
}

func (s *Scope) Direction() vmath.Direction {
	return s.direction
}

// Target returns the last target, false before the first Update
func (s *Scope) Target() (vmath.Vec2, bool) {
	return s.target, s.hasTarget
}

func (s *Scope) Bounds() vmath.Bounds {
	return s.bounds
}

func (s *Scope) Config() ScopeConfig {
	return s.config
}

// Color picks the aligned or unaligned color
func (s *Scope) Color() tcell.Color {
	if s.aligned {
		return s.config.AlignedColor
	}
	return s.config.UnalignedColor
}

// DistanceToTarget returns the squared distance from origin to target
func (s *Scope) DistanceToTarget() (int, bool) {
	if !s.hasTarget {
		return 0, false
	}
	return s.target.Sub(s.origin).MagnitudeSq(), true
}

// RayCast returns a fresh walker starting one step ahead of the origin
func (s *Scope) RayCast() *RayCast {
	return &RayCast{
		current: s.origin,
		step:    s.direction.Vec(),
		bounds:  s.bounds,
	}
}

// Points yields the ray cells in order
func (s *Scope) Points() iter.Seq[vmath.Vec2] {
	return func(yield func(vmath.Vec2) bool) {
		ray := s.RayCast()
		for ray.Next() {
			if !yield(ray.Pos()) {
				return
			}
		}
	}
}

// RayCast walks cells in a fixed direction until leaving bounds
// Usage:
//
//	ray := scope.RayCast()
//	for ray.Next() {
//	    p := ray.Pos()
//	}
type RayCast struct {
	current vmath.Vec2
	step    vmath.Vec2
	bounds  vmath.Bounds
	done    bool
}

// Next advances one cell, false once the ray leaves bounds
func (r *RayCast) Next() bool {
	if r.done {
		return false
	}
	r.current = r.current.Add(r.step)
	if !r.bounds.Contains(r.current) {
		r.done = true
		return false
	}
	return true
}

// Pos returns the current cell, valid after Next returned true
func (r *RayCast) Pos() vmath.Vec2 {
	return r.current
}

// HitsTarget consumes the remaining ray looking for target
func (r *RayCast) HitsTarget(target vmath.Vec2) bool {
	for r.Next() {
		if r.current == target {
			return true
		}
	}
	return false
}
