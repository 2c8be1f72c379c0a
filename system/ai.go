package system

import (
	"github.com/lixenwraith/termstrike/arena"
	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/mode"
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/vmath"
)

// AI advances the enemy state machines. One shared machine for every
// kind; per-kind behavior comes from the class parameter record, not
// from separate code paths.
type AI struct {
	grid     *arena.Grid
	resolver *Resolver
	rng      *vmath.FastRand
}

// NewAI creates the enemy simulation system
func NewAI(grid *arena.Grid, resolver *Resolver, rng *vmath.FastRand) *AI {
	return &AI{grid: grid, resolver: resolver, rng: rng}
}

// Advance runs one tick of every living enemy against the player.
// State progression is monotone: once alerted an enemy never idles
// again; only the Approach/Attack pair re-evaluates each tick.
func (a *AI) Advance(enemies []*component.Enemy, p *component.Player, cfg mode.Mode) {
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		a.advanceOne(e, p, cfg)
	}
}

func (a *AI) advanceOne(e *component.Enemy, p *component.Player, cfg mode.Mode) {
	cls := e.Class()
	dist := vmath.Dist(e.Pose.Pos, p.Pose.Pos)

	if e.AttackCooldown > 0 {
		e.AttackCooldown--
	}

	if e.Kind == component.Boss {
		a.cycleBossPhase(e)
	}

	switch e.State {
	case component.StateIdle:
		if a.resolver.Sees(e, p) {
			e.State = component.StateAlert
		}

	case component.StateAlert:
		// One tick of reaction, then commit to the chase
		e.State = component.StateApproach

	case component.StateApproach, component.StateAttack:
		inRange := dist <= cls.AttackRange
		if inRange {
			e.State = component.StateAttack
		} else {
			e.State = component.StateApproach
		}

		if cfg.EnemiesMove {
			a.move(e, p, dist)
		}
		if cfg.EnemiesShoot && e.State == component.StateAttack {
			a.tryFire(e, p)
		}
	}
}

// move steers by state: approach closes distance, snipers keep theirs.
// The boss in melee sub-phase always closes regardless of range.
func (a *AI) move(e *component.Enemy, p *component.Player, dist float64) {
	cls := e.Class()
	if dist < 1e-6 {
		return
	}

	toward := 1.0
	switch {
	case e.Kind == component.Sniper && dist < cls.AttackRange*parameter.SniperRetreatFraction:
		toward = -1.0 // back away, the player is too close
	case e.Kind == component.Boss && e.Phase == component.BossMelee:
		toward = 1.0
	case e.State == component.StateAttack && e.Kind != component.Boss:
		if e.Kind == component.Sniper {
			return // hold the firing position
		}
		if dist < 2 {
			return // close enough, stop shoving the player
		}
	}

	dir := p.Pose.Pos.Sub(e.Pose.Pos).Scale(toward / dist)
	step := dir.Scale(cls.Speed)
	a.slide(e, step)

	e.Pose.Angle = vmath.Angle(e.Pose.Pos, p.Pose.Pos)
}

// slide applies axis-separated collision: an axis blocked by a wall
// cancels only that axis, so enemies skim along walls instead of
// sticking to them
func (a *AI) slide(e *component.Enemy, step vmath.Vec2) {
	pos := e.Pose.Pos
	if a.grid.IsWalkable(pos.X+step.X, pos.Y) {
		pos.X += step.X
	}
	if a.grid.IsWalkable(pos.X, pos.Y+step.Y) {
		pos.Y += step.Y
	}
	e.Pose.Pos = pos
}

func (a *AI) tryFire(e *component.Enemy, p *component.Player) {
	if e.AttackCooldown > 0 {
		return
	}
	if a.rng.Float64() >= parameter.EnemyFireChance {
		return
	}
	if a.resolver.EnemyFire(e, p) {
		e.AttackCooldown = parameter.EnemyAttackCooldownTicks
	}
}

// cycleBossPhase flips the boss between ranged and melee sub-phases
// on a fixed timer, independent of distance
func (a *AI) cycleBossPhase(e *component.Enemy) {
	e.PhaseTicks--
	if e.PhaseTicks > 0 {
		return
	}
	e.PhaseTicks = parameter.BossPhaseTicks
	if e.Phase == component.BossRanged {
		e.Phase = component.BossMelee
	} else {
		e.Phase = component.BossRanged
	}
}
