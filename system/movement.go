package system

import (
	"github.com/lixenwraith/termstrike/arena"
	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/event"
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/vmath"
)

// Movement handles player locomotion and powerup pickups
type Movement struct {
	grid  *arena.Grid
	queue *event.Queue
}

// NewMovement creates the player movement system
func NewMovement(grid *arena.Grid, queue *event.Queue) *Movement {
	return &Movement{grid: grid, queue: queue}
}

// MovePlayer translates the player along their facing. dir is +1
// forward, -1 backward. Collision is axis-separated so the player
// slides along walls.
func (m *Movement) MovePlayer(p *component.Player, dir float64) {
	speed := parameter.PlayerMoveSpeed * p.SpeedMultiplier() * dir
	step := vmath.Heading(p.Pose.Angle).Scale(speed)

	pos := p.Pose.Pos
	if m.grid.IsWalkable(pos.X+step.X, pos.Y) {
		pos.X += step.X
	}
	if m.grid.IsWalkable(pos.X, pos.Y+step.Y) {
		pos.Y += step.Y
	}
	p.Pose.Pos = pos
}

// TurnPlayer rotates the player. dir is +1 left, -1 right.
func (m *Movement) TurnPlayer(p *component.Player, dir float64) {
	p.Pose.Turn(parameter.PlayerTurnSpeed * dir)
}

// Reload starts a reload and emits the cue event on success
func (m *Movement) Reload(p *component.Player) {
	if p.StartReload() {
		m.queue.Emit(event.ReloadStarted, int(p.Equipped))
	}
}

// CollectPowerups applies any active powerup within pickup radius and
// deactivates it. Health/ammo/armor apply instantly; damage and speed
// start (or refresh) their timed multipliers.
func (m *Movement) CollectPowerups(p *component.Player, powerups []*component.Powerup) {
	for _, pu := range powerups {
		if !pu.Active {
			continue
		}
		if vmath.Dist(p.Pose.Pos, pu.Pos) > parameter.PickupRadius {
			continue
		}

		cls := component.PowerupClassFor(pu.Kind)
		switch pu.Kind {
		case component.PowerupHealth:
			p.Heal(cls.Value)
		case component.PowerupAmmo:
			p.AddAmmo(cls.Value)
		case component.PowerupArmor:
			p.AddArmor(cls.Value)
		case component.PowerupDamage:
			p.ApplyBuff(component.BuffDamage)
		case component.PowerupSpeed:
			p.ApplyBuff(component.BuffSpeed)
		}

		pu.Active = false
		m.queue.Emit(event.Pickup, int(pu.Kind))
	}
}
