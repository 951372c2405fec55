package vmath

// Direction is one of the four axis-aligned headings
type Direction uint8

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

var directionNames = [...]string{
	DirRight: "Right",
	DirLeft:  "Left",
	DirUp:    "Up",
	DirDown:  "Down",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Direction(?)"
}

// Vec returns the unit step for d
func (d Direction) Vec() Vec2 {
	switch d {
	case DirUp:
		return Vec2{X: 0, Y: -1}
	case DirDown:
		return Vec2{X: 0, Y: 1}
	case DirLeft:
		return Vec2{X: -1, Y: 0}
	default:
		return Vec2{X: 1, Y: 0}
	}
}

// Opposite returns the 180° reversal of d
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether other is the exact reversal of d
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// Axis returns the axis d travels along
func (d Direction) Axis() Axis {
	if d.IsHorizontal() {
		return AxisHorizontal
	}
	return AxisVertical
}

// Axis distinguishes horizontal from vertical travel
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Perpendicular returns the other axis
func (a Axis) Perpendicular() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Edge names one side of the play field
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// AllEdges lists every edge in declaration order, used for uniform random picks
var AllEdges = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	case EdgeLeft:
		return "Left"
	default:
		return "Right"
	}
}

// Opposite returns the facing edge
func (e Edge) Opposite() Edge {
	switch e {
	case EdgeTop:
		return EdgeBottom
	case EdgeBottom:
		return EdgeTop
	case EdgeLeft:
		return EdgeRight
	default:
		return EdgeLeft
	}
}

// Direction returns the inward heading for something entering from e
func (e Edge) Direction() Direction {
	switch e {
	case EdgeTop:
		return DirDown
	case EdgeBottom:
		return DirUp
	case EdgeLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Axis returns the axis of travel for something entering from e
// Top/Bottom edges feed vertical travel, Left/Right feed horizontal
func (e Edge) Axis() Axis {
	if e == EdgeTop || e == EdgeBottom {
		return AxisVertical
	}
	return AxisHorizontal
}

// SegmentIndex addresses a snake segment, 0 is the head
type SegmentIndex int

// HeadIndex is the index of the snake head
const HeadIndex SegmentIndex = 0

func (i SegmentIndex) IsHead() bool { return i == HeadIndex }
func (i SegmentIndex) IsBody() bool { return i > HeadIndex }
func (i SegmentIndex) Next() SegmentIndex {
	return i + 1
}
