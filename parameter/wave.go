package parameter

// Wave pacing
const (
	// WaveEnemyBase is the enemy count of wave 1 before per-wave scaling
	WaveEnemyBase = 3

	// WaveEnemyPerWave is how many extra enemies each wave adds
	WaveEnemyPerWave = 2

	// WaveEnemyCap is the hard ceiling on simultaneous enemies
	WaveEnemyCap = 10

	// WaveSpawnMinDist is the minimum spawn distance from the player in cells
	WaveSpawnMinDist = 5.0

	// WaveSpawnStaggerTicks is the interval between staggered spawns
	// within one wave
	WaveSpawnStaggerTicks = 10

	// WaveBreakTicks is the delay between clearing a wave and the first
	// spawn of the next
	WaveBreakTicks = 3 * TickRate

	// WaveCompleteHeal is health restored when a wave is cleared
	WaveCompleteHeal = 20
)

// Powerup spawning (Advanced mode)
const (
	// PowerupSpawnIntervalTicks is the timer between powerup drops
	PowerupSpawnIntervalTicks = 15 * TickRate

	// PowerupMaxActive caps concurrent uncollected powerups
	PowerupMaxActive = 3
)
