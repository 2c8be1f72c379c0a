package system

import (
	"github.com/lixenwraith/termstrike/arena"
	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/event"
	"github.com/lixenwraith/termstrike/mode"
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/vmath"
)

// Director runs wave progression: it decides what to spawn, staggers
// the spawns, and only opens the next wave once the current one is
// fully dead and the break delay has passed.
type Director struct {
	grid  *arena.Grid
	rng   *vmath.FastRand
	queue *event.Queue
	cfg   mode.Mode

	wave         int
	pending      []component.EnemyKind
	spawnTimer   int
	breakTimer   int
	powerupTimer int
}

// NewDirector creates a wave director; the first Advance call starts
// wave 1 immediately
func NewDirector(grid *arena.Grid, rng *vmath.FastRand, queue *event.Queue, cfg mode.Mode) *Director {
	return &Director{
		grid:         grid,
		rng:          rng,
		queue:        queue,
		cfg:          cfg,
		breakTimer:   1,
		powerupTimer: parameter.PowerupSpawnIntervalTicks,
	}
}

// Wave returns the current wave number (0 before the first spawn)
func (d *Director) Wave() int {
	return d.wave
}

// SetMode swaps the mode configuration; takes effect from the next
// wave roster
func (d *Director) SetMode(cfg mode.Mode) {
	d.cfg = cfg
}

// Advance runs one tick of wave logic, mutating the entity rosters in
// place. Never advances the wave while any current enemy lives.
func (d *Director) Advance(p *component.Player, enemies *[]*component.Enemy, powerups *[]*component.Powerup) {
	d.advanceSpawns(p, enemies)
	d.advanceCompletion(p, enemies)
	d.advancePowerups(p, powerups)
}

func (d *Director) advanceSpawns(p *component.Player, enemies *[]*component.Enemy) {
	if len(d.pending) == 0 {
		return
	}
	if d.spawnTimer > 0 {
		d.spawnTimer--
		return
	}

	kind := d.pending[0]
	d.pending = d.pending[1:]
	d.spawnTimer = parameter.WaveSpawnStaggerTicks

	pos, err := d.grid.RandomSpawn(d.rng, p.Pose.Pos, parameter.WaveSpawnMinDist)
	if err != nil {
		// Level validation guarantees a walkable cell; losing one
		// spawn is the worst case here
		return
	}
	*enemies = append(*enemies, component.NewEnemy(kind, component.Pose{Pos: pos}))
}

func (d *Director) advanceCompletion(p *component.Player, enemies *[]*component.Enemy) {
	if len(d.pending) > 0 || anyAlive(*enemies) {
		return
	}

	if d.wave > 0 && d.breakTimer == 0 {
		// Last enemy of the wave just died
		d.queue.Emit(event.WaveComplete, d.wave)
		p.Heal(parameter.WaveCompleteHeal)
		d.breakTimer = parameter.WaveBreakTicks
		return
	}

	if d.breakTimer > 0 {
		d.breakTimer--
		if d.breakTimer == 0 {
			d.startWave(enemies)
		}
	}
}

func (d *Director) startWave(enemies *[]*component.Enemy) {
	d.wave++

	// Corpses from the previous wave have served their purpose
	*enemies = (*enemies)[:0]

	count := parameter.WaveEnemyBase + d.wave*parameter.WaveEnemyPerWave
	if count > parameter.WaveEnemyCap {
		count = parameter.WaveEnemyCap
	}

	kinds := d.cfg.EnemyKinds()
	d.pending = d.pending[:0]
	if d.cfg.BossEveryNWaves > 0 && d.wave%d.cfg.BossEveryNWaves == 0 {
		d.pending = append(d.pending, component.Boss)
		count--
	}
	for i := 0; i < count; i++ {
		d.pending = append(d.pending, kinds[d.rng.Intn(len(kinds))])
	}

	d.spawnTimer = 0
	d.queue.Emit(event.WaveStarted, d.wave)
}

func (d *Director) advancePowerups(p *component.Player, powerups *[]*component.Powerup) {
	if !d.cfg.Powerups {
		return
	}
	if d.powerupTimer > 0 {
		d.powerupTimer--
		return
	}
	d.powerupTimer = parameter.PowerupSpawnIntervalTicks

	active := 0
	for _, pu := range *powerups {
		if pu.Active {
			active++
		}
	}
	if active >= parameter.PowerupMaxActive {
		return
	}

	pos, err := d.grid.RandomSpawn(d.rng, p.Pose.Pos, 0)
	if err != nil {
		return
	}
	kind := component.PowerupKinds[d.rng.Intn(len(component.PowerupKinds))]
	*powerups = append(*powerups, component.NewPowerup(kind, pos))
}

func anyAlive(enemies []*component.Enemy) bool {
	for _, e := range enemies {
		if e.Alive() {
			return true
		}
	}
	return false
}
