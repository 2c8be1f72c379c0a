package arena

import (
	"github.com/lixenwraith/termstrike/vmath"
)

// Config controls random map generation
type Config struct {
	Width, Height int

	// WallCount is the number of wall blobs scattered inside the border
	WallCount int

	// Seed drives the generator PRNG (0 = seed from the caller's rng
	// convention; pass an explicit value for reproducible maps)
	Seed uint64
}

// Generate creates a bordered random map with scattered wall blobs.
// The same Config always yields the same map.
func Generate(cfg Config) *Grid {
	if cfg.Width < 8 {
		cfg.Width = 8
	}
	if cfg.Height < 8 {
		cfg.Height = 8
	}

	g := NewGrid(cfg.Width, cfg.Height)
	rng := vmath.NewFastRand(cfg.Seed)

	materials := []Cell{WallBrick, WallMetal, WallStone}

	for i := 0; i < cfg.WallCount; i++ {
		cx := 2 + rng.Intn(cfg.Width-4)
		cy := 2 + rng.Intn(cfg.Height-4)
		size := 1 + rng.Intn(3)
		mat := materials[rng.Intn(len(materials))]

		for dy := -size; dy <= size; dy++ {
			for dx := -size; dx <= size; dx++ {
				x, y := cx+dx, cy+dy
				// Keep a one-cell walkable ring inside the border so
				// the interior stays connected along the edge.
				if x > 1 && x < cfg.Width-2 && y > 1 && y < cfg.Height-2 {
					g.set(x, y, mat)
				}
			}
		}
	}

	return g
}
