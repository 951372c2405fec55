package input

import "github.com/lixenwraith/vi-snake/vmath"

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve config action strings
var actionRegistry = map[string]Action{
	"none":         {},
	"quit":         {Kind: ActionQuit},
	"pause":        {Kind: ActionPause},
	"restart":      {Kind: ActionRestart},
	"fire":         {Kind: ActionFire},
	"toggle_sound": {Kind: ActionToggleSound},
	"move_up":      Move(vmath.DirUp),
	"move_down":    Move(vmath.DirDown),
	"move_left":    Move(vmath.DirLeft),
	"move_right":   Move(vmath.DirRight),
}

// LookupAction resolves an action name
func LookupAction(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}
