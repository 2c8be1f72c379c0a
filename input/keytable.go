package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions. Rune bindings match
// case-insensitively; special keys (arrows, control chords) bind
// through the tcell key code.
type KeyTable struct {
	SpecialKeys map[tcell.Key]Action
	Runes       map[rune]Action
}

// DefaultKeyTable returns the stock bindings: WASD plus arrows for
// locomotion, space to fire, number row for weapons
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionForward,
			tcell.KeyDown:   ActionBackward,
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEscape: ActionPause,
		},
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBackward,
			'a': ActionTurnLeft,
			'd': ActionTurnRight,
			' ': ActionFire,
			'r': ActionReload,
			'1': ActionWeaponKnife,
			'2': ActionWeaponPistol,
			'3': ActionWeaponRifle,
			'4': ActionWeaponShotgun,
			'p': ActionPause,
			'q': ActionQuit,
		},
	}
}

// Merge overlays sparse override bindings onto the table. Only keys
// present in the override change; everything else keeps its default.
func (kt *KeyTable) Merge(overrides *KeyTable) {
	if overrides == nil {
		return
	}
	for k, a := range overrides.SpecialKeys {
		kt.SpecialKeys[k] = a
	}
	for r, a := range overrides.Runes {
		kt.Runes[r] = a
	}
}

// Translate resolves a terminal event to an action. Non-key events
// and unbound keys yield ActionNone.
func (kt *KeyTable) Translate(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	if key.Key() == tcell.KeyRune {
		r := key.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if a, ok := kt.Runes[r]; ok {
			return a
		}
		return ActionNone
	}
	if a, ok := kt.SpecialKeys[key.Key()]; ok {
		return a
	}
	return ActionNone
}
