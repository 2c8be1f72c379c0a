package parameter

// Player vitals
const (
	// PlayerMaxHealth is the health cap, also used for pickup clamping
	PlayerMaxHealth = 100

	// PlayerMaxArmor is the armor cap
	PlayerMaxArmor = 100
)

// Player movement
const (
	// PlayerMoveSpeed is forward/backward speed in cells per tick
	PlayerMoveSpeed = 0.1

	// PlayerTurnSpeed is rotation per turn action in radians (~3°)
	PlayerTurnSpeed = 0.0524

	// PlayerRadius is the player's bounding radius for enemy hitscan
	PlayerRadius = 0.4
)

// Powerups
const (
	// PickupRadius is the pickup collision distance in cells
	PickupRadius = 0.5

	// PowerupHealthValue restores this much health
	PowerupHealthValue = 50

	// PowerupAmmoValue adds this many rounds to every magazine-fed weapon
	PowerupAmmoValue = 30

	// PowerupArmorValue adds this much armor
	PowerupArmorValue = 50

	// PowerupDamageMultiplier is the damage buff factor
	PowerupDamageMultiplier = 2.0

	// PowerupSpeedMultiplier is the movement buff factor
	PowerupSpeedMultiplier = 2.0

	// PowerupDurationTicks is how long damage/speed multipliers last.
	// Picking up the same kind again resets the countdown, it never stacks.
	PowerupDurationTicks = 10 * TickRate
)
