package component

import (
	"github.com/lixenwraith/termstrike/parameter"
)

// EnemyKind tags an enemy template
type EnemyKind uint8

const (
	Grunt EnemyKind = iota
	Shotgunner
	Sniper
	Boss
	enemyKindCount
)

// AIState is the enemy behavior state. Progression is monotone except
// the Approach/Attack toggle; an alerted enemy never returns to Idle.
type AIState uint8

const (
	StateIdle AIState = iota
	StateAlert
	StateApproach
	StateAttack
	StateDead
)

// EnemyClass is a fixed per-kind parameter record. One shared state
// machine branches on these thresholds; there is no per-kind code.
type EnemyClass struct {
	Name           string
	MaxHealth      int
	ContactDamage  int
	RangedDamage   int
	DetectionRange float64
	AttackRange    float64
	Speed          float64 // cells per tick
	Points         int
	Glyph          rune
}

var enemyClasses = [enemyKindCount]EnemyClass{
	Grunt: {
		Name:           "Grunt",
		MaxHealth:      100,
		ContactDamage:  10,
		RangedDamage:   10,
		DetectionRange: 12,
		AttackRange:    8,
		Speed:          0.03,
		Points:         100,
		Glyph:          'g',
	},
	Shotgunner: {
		Name:           "Shotgunner",
		MaxHealth:      150,
		ContactDamage:  25,
		RangedDamage:   25,
		DetectionRange: 10,
		AttackRange:    3,
		Speed:          0.02,
		Points:         200,
		Glyph:          's',
	},
	Sniper: {
		Name:           "Sniper",
		MaxHealth:      80,
		ContactDamage:  15,
		RangedDamage:   50,
		DetectionRange: parameter.MaxDepth,
		AttackRange:    15,
		Speed:          0.01,
		Points:         300,
		Glyph:          'z',
	},
	Boss: {
		Name:           "Boss",
		MaxHealth:      500,
		ContactDamage:  30,
		RangedDamage:   30,
		DetectionRange: parameter.MaxDepth,
		AttackRange:    10,
		Speed:          0.015,
		Points:         1000,
		Glyph:          'B',
	},
}

// ClassFor returns the template record for a kind
func ClassFor(kind EnemyKind) EnemyClass {
	if kind >= enemyKindCount {
		return enemyClasses[Grunt]
	}
	return enemyClasses[kind]
}

// BossPhase is the boss's timer-cycled attack sub-phase
type BossPhase uint8

const (
	BossRanged BossPhase = iota
	BossMelee
)

// Enemy is a live enemy instance
type Enemy struct {
	Pose   Pose
	Kind   EnemyKind
	Health int
	State  AIState

	// AttackCooldown gates ranged fire, in ticks
	AttackCooldown int

	// Boss sub-phase cycling; unused for other kinds
	Phase      BossPhase
	PhaseTicks int
}

// NewEnemy creates an enemy of the given kind at a position
func NewEnemy(kind EnemyKind, pose Pose) *Enemy {
	return &Enemy{
		Pose:       pose,
		Kind:       kind,
		Health:     ClassFor(kind).MaxHealth,
		State:      StateIdle,
		PhaseTicks: parameter.BossPhaseTicks,
	}
}

// Class returns the enemy's template record
func (e *Enemy) Class() EnemyClass {
	return ClassFor(e.Kind)
}

// Alive reports whether the enemy is still in active simulation
func (e *Enemy) Alive() bool {
	return e.State != StateDead
}

// Hurt applies damage, clamping health at zero, and returns true if
// this hit killed the enemy. Dead enemies take no further damage.
func (e *Enemy) Hurt(amount int) bool {
	if !e.Alive() || amount <= 0 {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.State = StateDead
		return true
	}
	return false
}
