package mode

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/event"
)

func TestBuiltinModes(t *testing.T) {
	modes := Builtin()
	if len(modes) != 3 {
		t.Fatalf("Got %d builtin modes, want 3", len(modes))
	}

	simple := modes[0]
	if simple.EnemiesShoot || simple.EnemiesMove || simple.Powerups {
		t.Error("SIMPLE mode should have static, silent enemies and no powerups")
	}

	advanced := modes[2]
	if advanced.BossEveryNWaves != 3 {
		t.Errorf("ADVANCED boss cadence %d, want 3", advanced.BossEveryNWaves)
	}
	if !advanced.Powerups {
		t.Error("ADVANCED mode should enable powerups")
	}
}

func TestEnemyKindsResolution(t *testing.T) {
	m := Mode{Enemies: []string{"grunt", "sniper", "no-such-kind"}}
	kinds := m.EnemyKinds()
	if len(kinds) != 2 {
		t.Fatalf("Resolved %d kinds, want 2 (unknown skipped)", len(kinds))
	}
	if kinds[0] != component.Grunt || kinds[1] != component.Sniper {
		t.Errorf("Resolved kinds %v", kinds)
	}

	empty := Mode{}
	if kinds := empty.EnemyKinds(); len(kinds) != 1 || kinds[0] != component.Grunt {
		t.Error("Empty kind list should fall back to grunt")
	}
}

func TestLoadOverridesByName(t *testing.T) {
	data := []byte(`
modes:
  - name: MEDIUM
    enemies: [grunt]
    enemies_move: true
    wall_count: 40
  - name: CUSTOM
    enemies: [sniper]
    enemies_shoot: true
`)
	modes, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(modes) != 4 {
		t.Fatalf("Got %d modes, want 3 builtin + 1 custom", len(modes))
	}

	var medium *Mode
	for i := range modes {
		if modes[i].Name == "MEDIUM" {
			medium = &modes[i]
		}
	}
	if medium == nil {
		t.Fatal("MEDIUM mode missing after override")
	}
	if medium.WallCount != 40 || medium.EnemiesShoot {
		t.Errorf("Override not applied: %+v", *medium)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	if _, err := Load([]byte("modes: [{enemies: [grunt]}]")); err == nil {
		t.Error("Expected error for nameless mode entry")
	}
	if _, err := Load([]byte("{{not yaml")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modes.yaml")
	if err := os.WriteFile(path, []byte("modes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	q := event.NewQueue()
	loaded := make(chan []Mode, 1)
	w, err := Watch(path, q, func(m []Mode) {
		select {
		case loaded <- m:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	data := []byte(`
modes:
  - name: SIMPLE
    enemies: [grunt, sniper]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case modes := <-loaded:
		fresh := false
		for _, m := range modes {
			if m.Name == "SIMPLE" && len(m.Enemies) == 2 {
				fresh = true
			}
		}
		if !fresh {
			t.Error("Reload delivered stale modes")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for config reload")
	}

	// The queue gets the reload notification for the game loop
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		for _, ev := range q.Consume() {
			if ev.Type == event.ConfigReloaded {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("ConfigReloaded event never queued")
}
