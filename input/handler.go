package input

import "github.com/lixenwraith/vi-snake/engine"

// Apply performs a gameplay action on g
// Quit and ToggleSound belong to the driver and report false
func Apply(g *engine.Game, a Action) bool {
	switch a.Kind {
	case ActionMove:
		g.SetDirection(a.Direction)
	case ActionFire:
		g.Fire()
	case ActionPause:
		if g.State().IsDead() {
			g.Restart()
		} else {
			g.TogglePause()
		}
	case ActionRestart:
		g.Restart()
	default:
		return false
	}
	return true
}
