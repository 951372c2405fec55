package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key names accepted in the [keys] config table besides single characters
var specialKeyNames = map[string]tcell.Key{
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+s": tcell.KeyCtrlS,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+r": tcell.KeyCtrlR,
}

// Rune aliases for keys that cannot be bare TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// ParseBindings turns key-name → action-name pairs into a sparse KeyTable
// Returns an error on unknown action or key names
func ParseBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for keyName, actionName := range bindings {
		action, ok := LookupAction(strings.ToLower(actionName))
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action %q", keyName, actionName)
		}

		lower := strings.ToLower(keyName)
		if k, ok := specialKeyNames[lower]; ok {
			kt.SpecialKeys[k] = action
			continue
		}
		if r, ok := runeAliases[lower]; ok {
			kt.Runes[r] = action
			continue
		}
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			kt.Runes[r] = action
			continue
		}
		return nil, fmt.Errorf("unknown key name %q", keyName)
	}

	return kt, nil
}

// LoadKeyTable returns the defaults with bindings applied on top
func LoadKeyTable(bindings map[string]string) (*KeyTable, error) {
	kt := DefaultKeyTable()
	if len(bindings) == 0 {
		return kt, nil
	}
	overrides, err := ParseBindings(bindings)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	kt.Merge(overrides)
	return kt, nil
}
