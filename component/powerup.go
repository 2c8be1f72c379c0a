package component

import (
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/vmath"
)

// PowerupKind identifies a pickup effect
type PowerupKind uint8

const (
	PowerupHealth PowerupKind = iota
	PowerupAmmo
	PowerupArmor
	PowerupDamage
	PowerupSpeed
	powerupKindCount
)

// PowerupKinds lists all pickup kinds
var PowerupKinds = []PowerupKind{
	PowerupHealth, PowerupAmmo, PowerupArmor, PowerupDamage, PowerupSpeed,
}

// PowerupClass is a fixed per-kind record
type PowerupClass struct {
	Name  string
	Glyph rune
	Value int
}

var powerupClasses = [powerupKindCount]PowerupClass{
	PowerupHealth: {Name: "Health", Glyph: '+', Value: parameter.PowerupHealthValue},
	PowerupAmmo:   {Name: "Ammo", Glyph: '*', Value: parameter.PowerupAmmoValue},
	PowerupArmor:  {Name: "Armor", Glyph: '?', Value: parameter.PowerupArmorValue},
	PowerupDamage: {Name: "Damage", Glyph: '!', Value: 0},
	PowerupSpeed:  {Name: "Speed", Glyph: '%', Value: 0},
}

// PowerupClassFor returns the record for a kind
func PowerupClassFor(kind PowerupKind) PowerupClass {
	if kind >= powerupKindCount {
		return powerupClasses[PowerupHealth]
	}
	return powerupClasses[kind]
}

// Powerup is a world pickup; Active flips false on collection
type Powerup struct {
	Kind   PowerupKind
	Pos    vmath.Vec2
	Active bool
}

// NewPowerup creates an active pickup at a position
func NewPowerup(kind PowerupKind, pos vmath.Vec2) *Powerup {
	return &Powerup{Kind: kind, Pos: pos, Active: true}
}
