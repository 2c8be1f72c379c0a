package component

import (
	"github.com/lixenwraith/termstrike/parameter"
)

// BuffKind identifies a timed player multiplier
type BuffKind uint8

const (
	BuffDamage BuffKind = iota
	BuffSpeed
	buffCount
)

// Player owns the first-person pose, vitals, arsenal and score
type Player struct {
	Pose   Pose
	Health int
	Armor  int
	Score  int

	Equipped WeaponID
	ammo     [weaponCount]int

	// Per-weapon tick counters; firing is a no-op while either is
	// above zero for the equipped weapon
	cooldown [weaponCount]int
	reload   [weaponCount]int

	// Timed multiplier buffs; refresh resets the countdown, at most
	// one instance of each kind is ever active
	buffTicks [buffCount]int
}

// NewPlayer creates a player at the given pose with full magazines
func NewPlayer(pose Pose) *Player {
	p := &Player{
		Pose:     pose,
		Health:   parameter.PlayerMaxHealth,
		Equipped: WeaponPistol,
	}
	for _, id := range WeaponIDs {
		w, _ := WeaponFor(id)
		p.ammo[id] = w.MagazineSize
	}
	return p
}

// Alive reports whether the player has health remaining
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Ammo returns remaining rounds for a weapon
func (p *Player) Ammo(id WeaponID) int {
	if id >= weaponCount {
		return 0
	}
	return p.ammo[id]
}

// Weapon returns the equipped weapon template
func (p *Player) Weapon() Weapon {
	w, _ := WeaponFor(p.Equipped)
	return w
}

// CanFire reports whether a trigger pull would discharge the equipped
// weapon: not cooling down, not reloading, and a round chambered
func (p *Player) CanFire() bool {
	w := p.Weapon()
	if p.cooldown[p.Equipped] > 0 || p.reload[p.Equipped] > 0 {
		return false
	}
	return w.Unlimited() || p.ammo[p.Equipped] > 0
}

// ConsumeShot spends one round and starts the fire cooldown.
// Callers check CanFire first; a spread shot costs a single round.
func (p *Player) ConsumeShot() {
	w := p.Weapon()
	if !w.Unlimited() {
		p.ammo[p.Equipped]--
	}
	p.cooldown[p.Equipped] = w.CooldownTicks
}

// StartReload begins reloading the equipped weapon. No-op for
// unlimited weapons, full magazines, or an already running reload.
func (p *Player) StartReload() bool {
	w := p.Weapon()
	if w.Unlimited() || p.reload[p.Equipped] > 0 || p.ammo[p.Equipped] >= w.MagazineSize {
		return false
	}
	p.reload[p.Equipped] = w.ReloadTicks
	return true
}

// Reloading reports whether the equipped weapon is mid-reload
func (p *Player) Reloading() bool {
	return p.reload[p.Equipped] > 0
}

// SwitchWeapon equips the requested weapon. Unknown ids are ignored
// and the current weapon stays equipped.
func (p *Player) SwitchWeapon(id WeaponID) {
	if _, ok := WeaponFor(id); ok {
		p.Equipped = id
	}
}

// AddAmmo tops up every magazine-fed weapon, capped at magazine size
func (p *Player) AddAmmo(rounds int) {
	for _, id := range WeaponIDs {
		w, _ := WeaponFor(id)
		if w.Unlimited() {
			continue
		}
		p.ammo[id] += rounds
		if p.ammo[id] > w.MagazineSize {
			p.ammo[id] = w.MagazineSize
		}
	}
}

// TickTimers advances cooldown, reload and buff countdowns one tick.
// A reload that reaches zero fills the magazine.
func (p *Player) TickTimers() {
	for i := range p.cooldown {
		if p.cooldown[i] > 0 {
			p.cooldown[i]--
		}
		if p.reload[i] > 0 {
			p.reload[i]--
			if p.reload[i] == 0 {
				w, _ := WeaponFor(WeaponID(i))
				p.ammo[i] = w.MagazineSize
			}
		}
	}
	for i := range p.buffTicks {
		if p.buffTicks[i] > 0 {
			p.buffTicks[i]--
		}
	}
}

// ApplyBuff starts or refreshes a timed multiplier
func (p *Player) ApplyBuff(kind BuffKind) {
	if kind < buffCount {
		p.buffTicks[kind] = parameter.PowerupDurationTicks
	}
}

// DamageMultiplier returns the active damage factor
func (p *Player) DamageMultiplier() float64 {
	if p.buffTicks[BuffDamage] > 0 {
		return parameter.PowerupDamageMultiplier
	}
	return 1.0
}

// SpeedMultiplier returns the active movement factor
func (p *Player) SpeedMultiplier() float64 {
	if p.buffTicks[BuffSpeed] > 0 {
		return parameter.PowerupSpeedMultiplier
	}
	return 1.0
}

// BuffRemaining returns ticks left on a buff (0 = inactive)
func (p *Player) BuffRemaining(kind BuffKind) int {
	if kind >= buffCount {
		return 0
	}
	return p.buffTicks[kind]
}

// TakeDamage routes incoming damage through armor first; armor absorbs
// up to its remaining value, the rest hits health. Both clamp at zero.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	if p.Armor > 0 {
		absorbed := amount
		if absorbed > p.Armor {
			absorbed = p.Armor
		}
		p.Armor -= absorbed
		amount -= absorbed
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal restores health up to the cap
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > parameter.PlayerMaxHealth {
		p.Health = parameter.PlayerMaxHealth
	}
}

// AddArmor restores armor up to the cap
func (p *Player) AddArmor(amount int) {
	p.Armor += amount
	if p.Armor > parameter.PlayerMaxArmor {
		p.Armor = parameter.PlayerMaxArmor
	}
}
