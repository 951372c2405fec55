// Package input maps terminal keys to game actions and applies them
package input

import "github.com/lixenwraith/vi-snake/vmath"

// ActionKind discriminates semantic actions
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove            // arrows, wasd, hjkl
	ActionFire            // f, x
	ActionPause           // Space, Enter; restarts when dead
	ActionRestart         // r
	ActionQuit            // q, Esc, Ctrl+C
	ActionToggleSound     // Ctrl+S
)

// Action is one resolved key press
// Direction is only meaningful for ActionMove
type Action struct {
	Kind      ActionKind
	Direction vmath.Direction
}

func Move(dir vmath.Direction) Action {
	return Action{Kind: ActionMove, Direction: dir}
}

func (a Action) IsNone() bool {
	return a.Kind == ActionNone
}

func (a Action) String() string {
	if a.Kind == ActionMove {
		return "move_" + lowerDirection(a.Direction)
	}
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "none"
}

func lowerDirection(d vmath.Direction) string {
	switch d {
	case vmath.DirUp:
		return "up"
	case vmath.DirDown:
		return "down"
	case vmath.DirLeft:
		return "left"
	default:
		return "right"
	}
}
