package component

import (
	"math"

	"github.com/lixenwraith/termstrike/parameter"
)

// WeaponID identifies a weapon slot
type WeaponID uint8

const (
	WeaponKnife WeaponID = iota
	WeaponPistol
	WeaponRifle
	WeaponShotgun
	weaponCount
)

// WeaponIDs lists all weapons in slot order
var WeaponIDs = []WeaponID{WeaponKnife, WeaponPistol, WeaponRifle, WeaponShotgun}

// Weapon is a static weapon template. All fire resolution is hitscan;
// SpreadRays > 1 marks a spread weapon whose rays jitter within
// ±SpreadAngle/2. A spread shot still costs one round.
type Weapon struct {
	Name          string
	Damage        int
	MagazineSize  int // 0 = unlimited, never consumes ammo
	ReloadTicks   int
	CooldownTicks int
	SpreadRays    int
	SpreadAngle   float64
	Range         float64
	Glyph         rune
}

// Unlimited reports whether the weapon ignores ammo accounting
func (w Weapon) Unlimited() bool {
	return w.MagazineSize == 0
}

// weapons is the fixed template table
var weapons = [weaponCount]Weapon{
	WeaponKnife: {
		Name:          "Knife",
		Damage:        50,
		MagazineSize:  0,
		ReloadTicks:   0,
		CooldownTicks: ticks(0.8),
		SpreadRays:    1,
		SpreadAngle:   0,
		Range:         1.5,
		Glyph:         'K',
	},
	WeaponPistol: {
		Name:          "Pistol",
		Damage:        25,
		MagazineSize:  12,
		ReloadTicks:   ticks(1.0),
		CooldownTicks: ticks(0.5),
		SpreadRays:    1,
		SpreadAngle:   0,
		Range:         parameter.MaxDepth,
		Glyph:         'P',
	},
	WeaponRifle: {
		Name:          "Rifle",
		Damage:        35,
		MagazineSize:  30,
		ReloadTicks:   ticks(2.0),
		CooldownTicks: ticks(0.15),
		SpreadRays:    1,
		SpreadAngle:   0,
		Range:         parameter.MaxDepth,
		Glyph:         'R',
	},
	WeaponShotgun: {
		Name:          "Shotgun",
		Damage:        80,
		MagazineSize:  8,
		ReloadTicks:   ticks(2.5),
		CooldownTicks: ticks(1.0),
		SpreadRays:    5,
		SpreadAngle:   0.4,
		Range:         parameter.MaxDepth / 2,
		Glyph:         'S',
	},
}

// WeaponFor returns the template for id and whether id is valid.
// Unknown ids report false; callers ignore the switch request.
func WeaponFor(id WeaponID) (Weapon, bool) {
	if id >= weaponCount {
		return Weapon{}, false
	}
	return weapons[id], true
}

// ticks converts a duration in seconds to whole simulation ticks,
// rounding up so sub-tick cooldowns still cost one tick
func ticks(seconds float64) int {
	return int(math.Ceil(seconds * parameter.TickRate))
}
