package entities

import "github.com/lixenwraith/vi-snake/vmath"

// MoveKind is the outcome class of a snake move
type MoveKind uint8

const (
	MoveMoved MoveKind = iota
	MoveHitWall
	MoveHitSelf
)

func (k MoveKind) String() string {
	switch k {
	case MoveHitWall:
		return "HitWall"
	case MoveHitSelf:
		return "HitSelf"
	default:
		return "Moved"
	}
}

// MoveResult reports what a Snake.Tick did
// Position is the new head and only meaningful for MoveMoved
type MoveResult struct {
	Kind     MoveKind
	Position vmath.Vec2
}

// Moved builds a successful move result
func Moved(pos vmath.Vec2) MoveResult {
	return MoveResult{Kind: MoveMoved, Position: pos}
}

// HitWallResult builds the result of leaving the board
func HitWallResult() MoveResult {
	return MoveResult{Kind: MoveHitWall}
}

// HitSelfResult builds the result of running into the body
func HitSelfResult() MoveResult {
	return MoveResult{Kind: MoveHitSelf}
}

// IsFatal reports a wall or self collision
func (r MoveResult) IsFatal() bool {
	return r.Kind == MoveHitWall || r.Kind == MoveHitSelf
}

// NewPosition returns the new head for a successful move
func (r MoveResult) NewPosition() (vmath.Vec2, bool) {
	if r.Kind != MoveMoved {
		return vmath.Vec2{}, false
	}
	return r.Position, true
}

// DamageResult reports how many trailing segments a hit removed
type DamageResult struct {
	SegmentsLost int
}

// IsSignificant is true when at least one segment was lost
func (d DamageResult) IsSignificant() bool {
	return d.SegmentsLost > 0
}

// Snake is an ordered run of cells, head at index 0
//
// Direction changes are buffered in pendingDirection and committed at the start
// of the next move, so the 180° check always compares against the direction of
// the last completed move
type Snake struct {
	segments         []vmath.Vec2
	direction        vmath.Direction
	pendingDirection vmath.Direction
	growPending      int
}

// NewSnake creates a one-segment snake facing right
func NewSnake(pos vmath.Vec2) *Snake {
	return &Snake{
		segments:         []vmath.Vec2{pos},
		direction:        vmath.DirRight,
		pendingDirection: vmath.DirRight,
	}
}

// Head returns the head cell
func (s *Snake) Head() vmath.Vec2 {
	if len(s.segments) == 0 {
		return vmath.Vec2{}
	}
	return s.segments[0]
}

// Center returns the middle segment (index len/2)
func (s *Snake) Center() vmath.Vec2 {
	if len(s.segments) == 0 {
		return vmath.Vec2{}
	}
	return s.segments[len(s.segments)/2]
}

// Direction returns the heading of the most recent move
func (s *Snake) Direction() vmath.Direction {
	return s.direction
}

// PendingDirection returns the heading the next move will commit
func (s *Snake) PendingDirection() vmath.Direction {
	return s.pendingDirection
}

// GrowPending returns the number of upcoming moves that keep the tail
func (s *Snake) GrowPending() int {
	return s.growPending
}

// SetDirection buffers dir unless it reverses the current direction
// Last writer wins within a tick
func (s *Snake) SetDirection(dir vmath.Direction) {
	if s.direction.IsOpposite(dir) {
		return
	}
	s.pendingDirection = dir
}

// Grow schedules one extra segment, applied on the next move
func (s *Snake) Grow() {
	s.growPending++
}

// Tick commits the pending direction and advances the head one cell
//
// The self-collision test runs against the body before the move, so the tail
// cell about to be vacated still counts as occupied
func (s *Snake) Tick(bounds vmath.Bounds) MoveResult {
	s.direction = s.pendingDirection
	newHead := s.Head().Add(s.direction.Vec())

	if !bounds.Contains(newHead) {
		return HitWallResult()
	}
	if s.Contains(newHead) {
		return HitSelfResult()
	}

	// Prepend in place: grow by one, shift right, write head
	s.segments = append(s.segments, vmath.Vec2{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = newHead

	if s.growPending > 0 {
		s.growPending--
	} else {
		s.segments = s.segments[:len(s.segments)-1]
	}

	return Moved(newHead)
}

// Contains reports whether any segment occupies pos
func (s *Snake) Contains(pos vmath.Vec2) bool {
	for _, seg := range s.segments {
		if seg == pos {
			return true
		}
	}
	return false
}

// Segments returns the cells head first; callers must not modify the slice
func (s *Snake) Segments() []vmath.Vec2 {
	return s.segments
}

// Length returns the segment count
func (s *Snake) Length() int {
	return len(s.segments)
}

// DamageAt truncates the snake to [0..index] and clears pending growth
// The head cannot be damaged; index 0 or out-of-range indices lose nothing
func (s *Snake) DamageAt(index vmath.SegmentIndex) DamageResult {
	if index.IsHead() || int(index) >= len(s.segments) || index < 0 {
		return DamageResult{}
	}
	keep := int(index) + 1
	lost := len(s.segments) - keep
	s.segments = s.segments[:keep]
	s.growPending = 0
	return DamageResult{SegmentsLost: lost}
}

// DamageAtPosition damages the segment at pos, reporting false if pos is free
func (s *Snake) DamageAtPosition(pos vmath.Vec2) (DamageResult, bool) {
	return DamageAtPosition(s, pos)
}

// FindSegment returns the index of the segment at pos
func (s *Snake) FindSegment(pos vmath.Vec2) (vmath.SegmentIndex, bool) {
	return FindSegment(s, pos)
}

// BodyContains reports whether a non-head segment occupies pos
func (s *Snake) BodyContains(pos vmath.Vec2) bool {
	return BodyContains(s, pos)
}

// Position returns the head
func (s *Snake) Position() vmath.Vec2 {
	return s.Head()
}

// SetPosition moves only the head cell
func (s *Snake) SetPosition(pos vmath.Vec2) {
	if len(s.segments) > 0 {
		s.segments[0] = pos
	}
}

func (s *Snake) SegmentCount() int {
	return len(s.segments)
}

func (s *Snake) SegmentAt(index vmath.SegmentIndex) (vmath.Vec2, bool) {
	if index < 0 || int(index) >= len(s.segments) {
		return vmath.Vec2{}, false
	}
	return s.segments[index], true
}

func (s *Snake) ContainsPosition(pos vmath.Vec2) bool {
	return s.Contains(pos)
}

var _ Damageable = (*Snake)(nil)
