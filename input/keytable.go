package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/vmath"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyEscape: {Kind: ActionQuit},
			tcell.KeyCtrlC:  {Kind: ActionQuit},
			tcell.KeyCtrlS:  {Kind: ActionToggleSound},
			tcell.KeyEnter:  {Kind: ActionPause},
			tcell.KeyUp:     Move(vmath.DirUp),
			tcell.KeyDown:   Move(vmath.DirDown),
			tcell.KeyLeft:   Move(vmath.DirLeft),
			tcell.KeyRight:  Move(vmath.DirRight),
		},
		Runes: map[rune]Action{
			'q': {Kind: ActionQuit},
			' ': {Kind: ActionPause},
			'r': {Kind: ActionRestart},
			'f': {Kind: ActionFire},
			'x': {Kind: ActionFire},

			'w': Move(vmath.DirUp),
			's': Move(vmath.DirDown),
			'a': Move(vmath.DirLeft),
			'd': Move(vmath.DirRight),

			'k': Move(vmath.DirUp),
			'j': Move(vmath.DirDown),
			'h': Move(vmath.DirLeft),
			'l': Move(vmath.DirRight),
		},
	}
}

// Map resolves a key event; unbound keys yield ActionNone
func (kt *KeyTable) Map(ev *tcell.EventKey) Action {
	if ev == nil {
		return Action{}
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Merge overlays the non-nil maps of other onto kt
// A binding to "none" removes the key
func (kt *KeyTable) Merge(other *KeyTable) {
	if other == nil {
		return
	}
	for k, a := range other.SpecialKeys {
		if a.IsNone() {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = a
	}
	for r, a := range other.Runes {
		if a.IsNone() {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
}
