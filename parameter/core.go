package parameter

import (
	"math"
	"time"
)

// Screen layout
const (
	// ScreenWidth is the rendered viewport width in character cells
	ScreenWidth = 80

	// ScreenHeight is the rendered viewport height in character cells
	ScreenHeight = 25

	// ViewportHeight is the wall projection plane height (status rows excluded)
	ViewportHeight = ScreenHeight - 2

	// StatusRows is the number of rows reserved for the HUD above the viewport
	StatusRows = 2
)

// Projection
const (
	// FOV is the horizontal field of view in radians (60°)
	FOV = 60 * math.Pi / 180

	// NumRays is the number of rays cast per frame; each ray owns two
	// screen columns to compensate for character cell aspect ratio
	NumRays = ScreenWidth / 2

	// ColumnsPerRay is how many adjacent screen columns share one ray
	ColumnsPerRay = 2

	// MaxDepth is the far render/targeting distance in grid units
	MaxDepth = 20.0

	// MinDepth clamps perpendicular distance before the height division
	MinDepth = 1e-4
)

// Simulation timing
const (
	// TickRate is simulation steps per second
	TickRate = 30

	// TickInterval is the fixed timestep budget
	TickInterval = time.Second / TickRate
)

// Default map dimensions for generated maps
const (
	MapWidth  = 24
	MapHeight = 24
)
