package parameter

// Hitscan geometry
const (
	// EnemyRadius is the bounding radius used for ray/enemy intersection
	EnemyRadius = 0.45

	// RayStep is the sample interval along entity-testing rays in cells.
	// Must stay below twice the smallest bounding radius or fast rays
	// can tunnel through a target between samples.
	RayStep = 0.05
)

// Enemy fire behavior
const (
	// EnemyDamageVarianceMin/Max bound the random jitter applied to
	// enemy ranged damage (±20%)
	EnemyDamageVarianceMin = 0.8
	EnemyDamageVarianceMax = 1.2

	// EnemyFireChance is the per-tick probability an enemy in Attack
	// state with line of sight pulls the trigger
	EnemyFireChance = 0.02

	// EnemyAttackCooldownTicks is the minimum ticks between enemy shots
	EnemyAttackCooldownTicks = 15
)

// Sniper keeps its distance: below this fraction of its attack range
// it backs away instead of holding position
const SniperRetreatFraction = 0.6

// Boss sub-phase cycling
const (
	// BossPhaseTicks is how long each boss sub-phase lasts
	BossPhaseTicks = 5 * TickRate

	// BossMeleeDamageScale multiplies contact damage during the melee sub-phase
	BossMeleeDamageScale = 2.0
)
