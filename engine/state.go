package engine

import (
	"fmt"

	"github.com/lixenwraith/termstrike/arena"
	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/event"
	"github.com/lixenwraith/termstrike/input"
	"github.com/lixenwraith/termstrike/mode"
	"github.com/lixenwraith/termstrike/raycast"
	"github.com/lixenwraith/termstrike/system"
	"github.com/lixenwraith/termstrike/vmath"
)

// State is the complete simulation state and the systems that advance
// it. One Tick call is one fixed simulation step; the same seed and
// the same action stream reproduce the same run.
type State struct {
	Grid     *arena.Grid
	Player   *component.Player
	Enemies  []*component.Enemy
	Powerups []*component.Powerup

	queue    *event.Queue
	rng      *vmath.FastRand
	caster   *raycast.Caster
	resolver *system.Resolver
	ai       *system.AI
	movement *system.Movement
	director *system.Director

	cfg    mode.Mode
	tick   uint64
	paused bool
	over   bool
}

// NewState wires the simulation for a grid and mode. The grid must
// hold at least one walkable cell; a sealed level is the one fatal
// setup error.
func NewState(grid *arena.Grid, cfg mode.Mode, seed uint64, queue *event.Queue) (*State, error) {
	spawn, err := grid.FindSpawn()
	if err != nil {
		return nil, fmt.Errorf("engine: level rejected: %w", err)
	}

	rng := vmath.NewFastRand(seed)
	caster := raycast.NewCaster(grid)
	resolver := system.NewResolver(caster, rng, queue)

	return &State{
		Grid:     grid,
		Player:   component.NewPlayer(component.Pose{Pos: spawn}),
		queue:    queue,
		rng:      rng,
		caster:   caster,
		resolver: resolver,
		ai:       system.NewAI(grid, resolver, rng),
		movement: system.NewMovement(grid, queue),
		director: system.NewDirector(grid, rng, queue, cfg),
		cfg:      cfg,
	}, nil
}

// Caster exposes the shared ray caster for rendering
func (s *State) Caster() *raycast.Caster {
	return s.caster
}

// Tick returns the simulation step count
func (s *State) Tick() uint64 {
	return s.tick
}

// Wave returns the current wave number
func (s *State) Wave() int {
	return s.director.Wave()
}

// Mode returns the active mode configuration
func (s *State) Mode() mode.Mode {
	return s.cfg
}

// Paused reports whether the simulation is frozen
func (s *State) Paused() bool {
	return s.paused
}

// Over reports whether the run has ended
func (s *State) Over() bool {
	return s.over
}

// TogglePause flips the pause flag; a finished run cannot unpause
func (s *State) TogglePause() {
	if s.over {
		return
	}
	s.paused = !s.paused
}

// SetMode swaps the mode configuration at runtime. Current enemies
// keep fighting under the old roster; the next wave uses the new one.
func (s *State) SetMode(cfg mode.Mode) {
	s.cfg = cfg
	s.director.SetMode(cfg)
}

// Advance runs one fixed simulation step with the player actions
// gathered since the last step. Paused and finished states are
// frozen; Advance is then a no-op.
func (s *State) Advance(actions []input.Action) {
	if s.paused || s.over {
		return
	}
	s.tick++

	for _, a := range actions {
		s.apply(a)
	}

	s.Player.TickTimers()
	s.ai.Advance(s.Enemies, s.Player, s.cfg)
	s.movement.CollectPowerups(s.Player, s.Powerups)
	s.director.Advance(s.Player, &s.Enemies, &s.Powerups)

	if !s.Player.Alive() {
		s.over = true
		s.queue.Emit(event.GameOver, s.Player.Score)
	}
}

func (s *State) apply(a input.Action) {
	switch a {
	case input.ActionForward:
		s.movement.MovePlayer(s.Player, 1)
	case input.ActionBackward:
		s.movement.MovePlayer(s.Player, -1)
	case input.ActionTurnLeft:
		s.movement.TurnPlayer(s.Player, 1)
	case input.ActionTurnRight:
		s.movement.TurnPlayer(s.Player, -1)
	case input.ActionFire:
		s.resolver.Fire(s.Player, s.Enemies)
	case input.ActionReload:
		s.movement.Reload(s.Player)
	case input.ActionWeaponKnife:
		s.Player.SwitchWeapon(component.WeaponKnife)
	case input.ActionWeaponPistol:
		s.Player.SwitchWeapon(component.WeaponPistol)
	case input.ActionWeaponRifle:
		s.Player.SwitchWeapon(component.WeaponRifle)
	case input.ActionWeaponShotgun:
		s.Player.SwitchWeapon(component.WeaponShotgun)
	}
}
