package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Key name aliases for bindings that cannot be written as a bare
// single character in YAML
var keyAliases = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+r": tcell.KeyCtrlR,
}

var runeAliases = map[string]rune{
	"space": ' ',
}

// LoadKeyConfig parses YAML keymap data into a sparse override table.
// The format is a flat key-name to action-name mapping:
//
//	space: fire
//	up: forward
//	m: reload
//
// Unknown action names and unrecognized key names are errors; a typo
// silently eating a binding is worse than a startup failure.
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}
	for keyName, actionName := range raw {
		action, ok := actionNames[actionName]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q for key %q", actionName, keyName)
		}

		if r, ok := runeAliases[keyName]; ok {
			kt.Runes[r] = action
			continue
		}
		if k, ok := keyAliases[keyName]; ok {
			kt.SpecialKeys[k] = action
			continue
		}
		runes := []rune(keyName)
		if len(runes) != 1 {
			return nil, fmt.Errorf("keymap: unrecognized key name %q", keyName)
		}
		r := runes[0]
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		kt.Runes[r] = action
	}
	return kt, nil
}
