package system

import (
	"testing"

	"github.com/lixenwraith/termstrike/arena"
	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/event"
	"github.com/lixenwraith/termstrike/mode"
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/vmath"
)

func newTestDirector(cfg mode.Mode, seed uint64) (*Director, *event.Queue, *component.Player) {
	g := arena.NewGrid(30, 30)
	q := event.NewQueue()
	d := NewDirector(g, vmath.NewFastRand(seed), q, cfg)
	p := component.NewPlayer(component.Pose{Pos: vmath.Vec2{X: 15, Y: 15}})
	return d, q, p
}

func runTicks(d *Director, p *component.Player, enemies *[]*component.Enemy, powerups *[]*component.Powerup, n int) {
	for i := 0; i < n; i++ {
		d.Advance(p, enemies, powerups)
	}
}

func TestFirstWaveStartsAndSpawnsStaggered(t *testing.T) {
	d, q, p := newTestDirector(mode.Mode{Name: "T", Enemies: []string{"grunt"}}, 1)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	d.Advance(p, &enemies, &powerups)
	if d.Wave() != 1 {
		t.Fatalf("Wave %d after first tick, want 1", d.Wave())
	}
	if eventCount(q, event.WaveStarted) != 1 {
		t.Fatal("Expected WaveStarted event")
	}
	if len(enemies) != 0 {
		t.Fatal("Enemies appeared before the first stagger tick")
	}

	d.Advance(p, &enemies, &powerups)
	if len(enemies) != 1 {
		t.Fatalf("%d enemies after one stagger tick, want 1", len(enemies))
	}

	// Wave 1 total is base + 1*per-wave
	want := parameter.WaveEnemyBase + parameter.WaveEnemyPerWave
	runTicks(d, p, &enemies, &powerups, want*(parameter.WaveSpawnStaggerTicks+1)+5)
	if len(enemies) != want {
		t.Errorf("Wave 1 spawned %d enemies, want %d", len(enemies), want)
	}
}

func TestSpawnsKeepDistanceFromPlayer(t *testing.T) {
	d, _, p := newTestDirector(mode.Mode{Name: "T", Enemies: []string{"grunt"}}, 42)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	runTicks(d, p, &enemies, &powerups, 200)
	for _, e := range enemies {
		if dist := vmath.Dist(e.Pose.Pos, p.Pose.Pos); dist < parameter.WaveSpawnMinDist {
			t.Errorf("Enemy spawned %f cells from the player, want at least %f", dist, parameter.WaveSpawnMinDist)
		}
	}
}

func TestWaveNeverAdvancesWhileEnemiesLive(t *testing.T) {
	d, q, p := newTestDirector(mode.Mode{Name: "T", Enemies: []string{"grunt"}}, 1)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	// Spawn the full wave, then kill all but one
	runTicks(d, p, &enemies, &powerups, 200)
	for _, e := range enemies[1:] {
		e.Hurt(10000)
	}
	q.Consume()

	runTicks(d, p, &enemies, &powerups, parameter.WaveBreakTicks*4)
	if d.Wave() != 1 {
		t.Fatalf("Wave advanced to %d with a living enemy", d.Wave())
	}
	if eventCount(q, event.WaveComplete) != 0 {
		t.Error("WaveComplete emitted with a living enemy")
	}
}

func TestWaveCompletionHealsAndOpensNextAfterBreak(t *testing.T) {
	d, q, p := newTestDirector(mode.Mode{Name: "T", Enemies: []string{"grunt"}}, 1)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	runTicks(d, p, &enemies, &powerups, 200)
	wave1Count := len(enemies)
	p.TakeDamage(50)
	for _, e := range enemies {
		e.Hurt(10000)
	}
	q.Consume()

	d.Advance(p, &enemies, &powerups)
	if eventCount(q, event.WaveComplete) != 1 {
		t.Fatal("Expected WaveComplete when the last enemy died")
	}
	if p.Health != 50+parameter.WaveCompleteHeal {
		t.Errorf("Health %d after wave heal, want %d", p.Health, 50+parameter.WaveCompleteHeal)
	}
	if d.Wave() != 1 {
		t.Fatal("Wave advanced before the break delay")
	}

	runTicks(d, p, &enemies, &powerups, parameter.WaveBreakTicks)
	if d.Wave() != 2 {
		t.Fatalf("Wave %d after break delay, want 2", d.Wave())
	}
	// Corpses pruned at rollover
	for _, e := range enemies {
		if !e.Alive() {
			t.Fatal("Corpse survived the wave rollover")
		}
	}

	runTicks(d, p, &enemies, &powerups, 300)
	want := parameter.WaveEnemyBase + 2*parameter.WaveEnemyPerWave
	if len(enemies) != want {
		t.Errorf("Wave 2 spawned %d enemies, want %d", len(enemies), want)
	}
	if wave1Count >= want {
		t.Error("Wave 2 not larger than wave 1")
	}
}

func TestWaveCountCapped(t *testing.T) {
	d, _, p := newTestDirector(mode.Mode{Name: "T", Enemies: []string{"grunt"}}, 1)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	// Push through waves until the roster size stops growing
	for wave := 1; wave <= 6; wave++ {
		runTicks(d, p, &enemies, &powerups, 400)
		if len(enemies) > parameter.WaveEnemyCap {
			t.Fatalf("Wave %d spawned %d enemies, cap is %d", wave, len(enemies), parameter.WaveEnemyCap)
		}
		for _, e := range enemies {
			e.Hurt(10000)
		}
		runTicks(d, p, &enemies, &powerups, parameter.WaveBreakTicks+2)
	}
}

func TestBossWaveLeadsWithBoss(t *testing.T) {
	cfg := mode.Mode{Name: "T", Enemies: []string{"grunt"}, BossEveryNWaves: 1}
	d, _, p := newTestDirector(cfg, 1)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	// Boss spawns first in its wave
	d.Advance(p, &enemies, &powerups)
	d.Advance(p, &enemies, &powerups)
	if len(enemies) != 1 {
		t.Fatalf("%d enemies after first spawn tick, want 1", len(enemies))
	}
	if enemies[0].Kind != component.Boss {
		t.Errorf("First spawn of a boss wave is %v, want Boss", enemies[0].Kind)
	}

	// Boss replaces one regular slot, not added on top
	runTicks(d, p, &enemies, &powerups, 300)
	want := parameter.WaveEnemyBase + parameter.WaveEnemyPerWave
	if len(enemies) != want {
		t.Errorf("Boss wave size %d, want %d", len(enemies), want)
	}
}

func TestNoBossWithoutInterval(t *testing.T) {
	d, _, p := newTestDirector(mode.Mode{Name: "T", Enemies: []string{"grunt"}}, 1)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	runTicks(d, p, &enemies, &powerups, 300)
	for _, e := range enemies {
		if e.Kind == component.Boss {
			t.Fatal("Boss spawned with boss waves disabled")
		}
	}
}

func TestPowerupsSpawnOnTimerAndCap(t *testing.T) {
	cfg := mode.Mode{Name: "T", Enemies: []string{"grunt"}, Powerups: true}
	d, _, p := newTestDirector(cfg, 1)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	runTicks(d, p, &enemies, &powerups, parameter.PowerupSpawnIntervalTicks+2)
	if len(powerups) != 1 {
		t.Fatalf("%d powerups after one interval, want 1", len(powerups))
	}

	runTicks(d, p, &enemies, &powerups, parameter.PowerupSpawnIntervalTicks*parameter.PowerupMaxActive*3)
	active := 0
	for _, pu := range powerups {
		if pu.Active {
			active++
		}
	}
	if active > parameter.PowerupMaxActive {
		t.Errorf("%d active powerups, cap is %d", active, parameter.PowerupMaxActive)
	}
}

func TestPowerupsDisabledByMode(t *testing.T) {
	d, _, p := newTestDirector(mode.Mode{Name: "T", Enemies: []string{"grunt"}}, 1)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	runTicks(d, p, &enemies, &powerups, parameter.PowerupSpawnIntervalTicks*2)
	if len(powerups) != 0 {
		t.Errorf("%d powerups spawned with powerups disabled", len(powerups))
	}
}

func TestSetModeAffectsNextWave(t *testing.T) {
	d, _, p := newTestDirector(mode.Mode{Name: "T", Enemies: []string{"grunt"}}, 1)
	var enemies []*component.Enemy
	var powerups []*component.Powerup

	runTicks(d, p, &enemies, &powerups, 200)
	d.SetMode(mode.Mode{Name: "T2", Enemies: []string{"sniper"}})
	for _, e := range enemies {
		e.Hurt(10000)
	}
	runTicks(d, p, &enemies, &powerups, parameter.WaveBreakTicks+200)

	if len(enemies) == 0 {
		t.Fatal("No wave 2 enemies spawned")
	}
	for _, e := range enemies {
		if e.Kind != component.Sniper {
			t.Errorf("Wave 2 spawned %v after mode switch, want Sniper only", e.Kind)
		}
	}
}
