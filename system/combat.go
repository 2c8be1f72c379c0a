package system

import (
	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/event"
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/raycast"
	"github.com/lixenwraith/termstrike/vmath"
)

// Resolver settles hit-scan fire and line-of-sight questions. It
// shares the caster with rendering, so what the player sees and what
// a bullet can reach always agree.
type Resolver struct {
	caster *raycast.Caster
	rng    *vmath.FastRand
	queue  *event.Queue
}

// NewResolver creates a combat resolver
func NewResolver(caster *raycast.Caster, rng *vmath.FastRand, queue *event.Queue) *Resolver {
	return &Resolver{caster: caster, rng: rng, queue: queue}
}

// FireResult describes one ray of a discharged shot
type FireResult struct {
	Enemy  *component.Enemy
	Damage int
	Killed bool
}

// Fire resolves a trigger pull for the player's equipped weapon.
// Out-of-ammo, mid-reload and on-cooldown pulls are quiet no-ops, not
// errors. One round is spent per pull regardless of ray count; each
// spread ray jitters within ±SpreadAngle/2 and resolves independently,
// so one blast can strike several overlapping enemies.
func (r *Resolver) Fire(p *component.Player, enemies []*component.Enemy) []FireResult {
	w := p.Weapon()

	if !p.CanFire() {
		if !p.Reloading() && !w.Unlimited() && p.Ammo(p.Equipped) == 0 {
			r.queue.Emit(event.WeaponDry, int(p.Equipped))
		}
		return nil
	}
	p.ConsumeShot()
	r.queue.Emit(event.WeaponFired, int(p.Equipped))

	targets := liveTargets(enemies)

	var results []FireResult
	for i := 0; i < w.SpreadRays; i++ {
		angle := p.Pose.Angle
		if w.SpreadAngle > 0 {
			angle += r.rng.FloatRange(-w.SpreadAngle/2, w.SpreadAngle/2)
		}

		hit := r.caster.CastEntities(p.Pose.Pos, angle, w.Range, targets)
		if hit.Kind != raycast.HitEntity {
			continue
		}

		enemy := enemies[hit.ID]
		damage := int(float64(w.Damage) * p.DamageMultiplier())
		killed := enemy.Hurt(damage)

		r.queue.Emit(event.EnemyHit, damage)
		if killed {
			points := enemy.Class().Points
			p.Score += points
			r.queue.Emit(event.EnemyKilled, points)
			// Remove the corpse from subsequent rays of this blast
			targets = liveTargets(enemies)
		}
		results = append(results, FireResult{Enemy: enemy, Damage: damage, Killed: killed})
	}
	return results
}

// EnemyFire resolves one enemy ranged attack against the player.
// Damage jitters ±20% and is absorbed by armor first. Returns false
// when a wall blocks the shot.
func (r *Resolver) EnemyFire(e *component.Enemy, p *component.Player) bool {
	cls := e.Class()
	if !r.caster.LineOfSight(e.Pose.Pos, p.Pose.Pos, cls.AttackRange) {
		return false
	}

	damage := cls.RangedDamage
	if e.Kind == component.Boss && e.Phase == component.BossMelee {
		// Melee sub-phase only lands at contact range
		if vmath.Dist(e.Pose.Pos, p.Pose.Pos) > 1.5 {
			return false
		}
		damage = int(float64(cls.ContactDamage) * parameter.BossMeleeDamageScale)
	}
	damage = int(float64(damage) * r.rng.FloatRange(parameter.EnemyDamageVarianceMin, parameter.EnemyDamageVarianceMax))

	p.TakeDamage(damage)
	r.queue.Emit(event.PlayerHit, damage)
	return true
}

// Sees reports whether the enemy has an unobstructed view of the
// player within its detection range
func (r *Resolver) Sees(e *component.Enemy, p *component.Player) bool {
	return r.caster.LineOfSight(e.Pose.Pos, p.Pose.Pos, e.Class().DetectionRange)
}

// liveTargets builds the hitscan target list; a Target's ID is the
// enemy's index so results map back without a lookup
func liveTargets(enemies []*component.Enemy) []raycast.Target {
	targets := make([]raycast.Target, 0, len(enemies))
	for i, e := range enemies {
		if !e.Alive() {
			continue
		}
		targets = append(targets, raycast.Target{
			ID:     i,
			Pos:    e.Pose.Pos,
			Radius: parameter.EnemyRadius,
		})
	}
	return targets
}
