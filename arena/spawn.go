package arena

import (
	"errors"

	"github.com/lixenwraith/termstrike/vmath"
)

// ErrNoSpawn is the one fatal level error: the grid has no walkable
// interior cell to place an entity on.
var ErrNoSpawn = errors.New("arena: no walkable spawn cell")

// FindSpawn returns the first walkable interior cell, scanning
// row-major. Used for the player's initial position on hand-built
// maps, and as the level-start validity check.
func (g *Grid) FindSpawn() (vmath.Vec2, error) {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.cells[y*g.width+x] == Empty {
				return cellCenter(x, y), nil
			}
		}
	}
	return vmath.Vec2{}, ErrNoSpawn
}

// RandomSpawn picks a walkable cell at least minDist from a reference
// point. Falls back to any walkable cell if the distance constraint
// cannot be satisfied, and ErrNoSpawn if nothing is walkable at all.
func (g *Grid) RandomSpawn(rng *vmath.FastRand, from vmath.Vec2, minDist float64) (vmath.Vec2, error) {
	// Bounded random probes first; they keep placement uniform on
	// maps with plenty of floor.
	for attempt := 0; attempt < 200; attempt++ {
		x := 1 + rng.Intn(g.width-2)
		y := 1 + rng.Intn(g.height-2)
		if g.cells[y*g.width+x] != Empty {
			continue
		}
		p := cellCenter(x, y)
		if vmath.Dist(p, from) >= minDist {
			return p, nil
		}
	}

	// Dense or tiny maps: exhaustive scan, relaxing the distance
	// constraint only if no cell satisfies it.
	var fallback vmath.Vec2
	found := false
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.cells[y*g.width+x] != Empty {
				continue
			}
			p := cellCenter(x, y)
			if vmath.Dist(p, from) >= minDist {
				return p, nil
			}
			if !found {
				fallback = p
				found = true
			}
		}
	}
	if found {
		return fallback, nil
	}
	return vmath.Vec2{}, ErrNoSpawn
}

func cellCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
