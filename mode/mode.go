// Package mode defines game difficulty configurations: which enemy
// kinds spawn, whether they move and shoot, and powerup availability.
// The three built-in modes can be overridden from a YAML file.
package mode

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/termstrike/component"
)

// Mode is one difficulty configuration
type Mode struct {
	Name string `yaml:"name"`

	// Enemies lists spawnable kind names (grunt, shotgunner, sniper)
	Enemies []string `yaml:"enemies"`

	// BossEveryNWaves spawns one boss on every Nth wave; 0 disables
	BossEveryNWaves int `yaml:"boss_every_n_waves"`

	Powerups     bool `yaml:"powerups"`
	EnemiesMove  bool `yaml:"enemies_move"`
	EnemiesShoot bool `yaml:"enemies_shoot"`

	// WallCount is the wall blob count for generated maps
	WallCount int `yaml:"wall_count"`
}

var kindNames = map[string]component.EnemyKind{
	"grunt":      component.Grunt,
	"shotgunner": component.Shotgunner,
	"sniper":     component.Sniper,
	"boss":       component.Boss,
}

// EnemyKinds resolves the configured kind names; unknown names are
// skipped so a typo in a config file degrades instead of crashing
func (m Mode) EnemyKinds() []component.EnemyKind {
	kinds := make([]component.EnemyKind, 0, len(m.Enemies))
	for _, name := range m.Enemies {
		if k, ok := kindNames[name]; ok {
			kinds = append(kinds, k)
		}
	}
	if len(kinds) == 0 {
		kinds = append(kinds, component.Grunt)
	}
	return kinds
}

// Builtin returns the three stock modes
func Builtin() []Mode {
	return []Mode{
		{
			Name:      "SIMPLE",
			Enemies:   []string{"grunt"},
			WallCount: 15,
		},
		{
			Name:         "MEDIUM",
			Enemies:      []string{"grunt", "shotgunner", "sniper"},
			EnemiesMove:  true,
			EnemiesShoot: true,
			WallCount:    25,
		},
		{
			Name:            "ADVANCED",
			Enemies:         []string{"grunt", "shotgunner", "sniper"},
			BossEveryNWaves: 3,
			Powerups:        true,
			EnemiesMove:     true,
			EnemiesShoot:    true,
			WallCount:       35,
		},
	}
}

// file is the YAML document shape
type file struct {
	Modes []Mode `yaml:"modes"`
}

// Load merges YAML mode overrides into the builtin set, matching by
// name (case-sensitive). Modes with unknown names are appended.
func Load(data []byte) ([]Mode, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("mode: parse config: %w", err)
	}

	modes := Builtin()
	for _, override := range f.Modes {
		if override.Name == "" {
			return nil, fmt.Errorf("mode: config entry missing name")
		}
		replaced := false
		for i := range modes {
			if modes[i].Name == override.Name {
				modes[i] = override
				replaced = true
				break
			}
		}
		if !replaced {
			modes = append(modes, override)
		}
	}
	return modes, nil
}
