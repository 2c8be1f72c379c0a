package raycast

import (
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/vmath"
)

// Target is an entity candidate for hitscan intersection. The caster
// knows nothing about enemies or players, only positions and radii.
type Target struct {
	ID     int
	Pos    vmath.Vec2
	Radius float64
}

// EntityHitKind tags what stopped an entity-testing ray
type EntityHitKind uint8

const (
	HitNothing EntityHitKind = iota
	HitWall
	HitEntity
)

// EntityHit is the result of CastEntities
type EntityHit struct {
	Kind EntityHitKind
	Dist float64

	// ID is the Target.ID of the struck entity; valid only for HitEntity
	ID int
}

// CastEntities marches a ray sampling target bounding circles along
// the way, and returns the first thing struck: the nearest target
// whose radius the ray enters before reaching a wall, the wall
// otherwise, or nothing within maxDist. Wall distance comes from the
// same DDA as rendering, so hitscan and drawing agree about cover.
func (c *Caster) CastEntities(origin vmath.Vec2, angle, maxDist float64, targets []Target) EntityHit {
	wall := c.WallDist(origin, angle)

	limit := maxDist
	if wall < limit {
		limit = wall
	}

	dir := vmath.Heading(angle)
	for t := parameter.RayStep; t <= limit; t += parameter.RayStep {
		p := origin.Add(dir.Scale(t))
		for _, tgt := range targets {
			if vmath.Dist(p, tgt.Pos) <= tgt.Radius {
				return EntityHit{Kind: HitEntity, Dist: t, ID: tgt.ID}
			}
		}
	}

	if wall <= maxDist {
		return EntityHit{Kind: HitWall, Dist: wall}
	}
	return EntityHit{Kind: HitNothing, Dist: maxDist}
}
