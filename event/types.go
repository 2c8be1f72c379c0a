package event

// Type identifies a discrete game event. The core emits these; the
// presentation and audio layers decide how to surface them.
type Type uint8

const (
	// None is the zero value; never queued
	None Type = iota

	// WeaponFired signals a successful trigger pull
	// Producer: combat resolver | Value: weapon id
	WeaponFired

	// WeaponDry signals a trigger pull with no round chambered
	// Producer: combat resolver | Value: weapon id
	WeaponDry

	// ReloadStarted signals the beginning of a reload
	// Producer: movement system | Value: weapon id
	ReloadStarted

	// EnemyHit signals a landed player shot
	// Producer: combat resolver | Value: damage dealt
	EnemyHit

	// EnemyKilled signals an enemy death
	// Producer: combat resolver | Value: points awarded
	EnemyKilled

	// PlayerHit signals enemy damage reaching the player
	// Producer: combat resolver | Value: damage before armor
	PlayerHit

	// Pickup signals a collected powerup
	// Producer: movement system | Value: powerup kind
	Pickup

	// WaveStarted signals the first spawn of a new wave
	// Producer: wave director | Value: wave number
	WaveStarted

	// WaveComplete signals the last enemy of a wave dying
	// Producer: wave director | Value: wave number
	WaveComplete

	// GameOver signals player death
	// Producer: simulation state | Value: final score
	GameOver

	// ConfigReloaded signals an on-disk config change was applied
	// Producer: config watcher goroutine | Value: unused
	ConfigReloaded
)

// Event is a discrete occurrence with one small payload value whose
// meaning depends on Type
type Event struct {
	Type  Type
	Value int
}
