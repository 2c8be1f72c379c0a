// Package input translates terminal key events into game actions.
// Bindings live in a key table; a YAML keymap file can override any
// of them by action name.
package input

// Action is one semantic player command
type Action uint8

const (
	ActionNone Action = iota

	// Locomotion
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight

	// Combat
	ActionFire
	ActionReload
	ActionWeaponKnife
	ActionWeaponPistol
	ActionWeaponRifle
	ActionWeaponShotgun

	// System
	ActionPause
	ActionQuit
)

// actionNames maps keymap config names to actions. The names are the
// public contract of the keymap file format.
var actionNames = map[string]Action{
	"forward":        ActionForward,
	"backward":       ActionBackward,
	"turn_left":      ActionTurnLeft,
	"turn_right":     ActionTurnRight,
	"fire":           ActionFire,
	"reload":         ActionReload,
	"weapon_knife":   ActionWeaponKnife,
	"weapon_pistol":  ActionWeaponPistol,
	"weapon_rifle":   ActionWeaponRifle,
	"weapon_shotgun": ActionWeaponShotgun,
	"pause":          ActionPause,
	"quit":           ActionQuit,
	"none":           ActionNone,
}
