// Package raycast provides the grid ray-marching primitive shared by
// the frame projector (wall distances) and the combat resolver
// (hitscan and line-of-sight). One traversal algorithm, two callers.
package raycast

import (
	"math"

	"github.com/lixenwraith/termstrike/arena"
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/vmath"
)

// Hit is the result of a wall cast
type Hit struct {
	// Dist is the perpendicular distance: travel projected onto the
	// view axis, so wall heights derived from it show no fisheye
	Dist float64

	// Material is the wall cell that stopped the ray
	Material arena.Cell

	// Vertical reports that the last grid-line crossed was an x
	// boundary, i.e. the ray hit a vertical (east/west facing) wall
	// face. Used to shade lit vs shadowed faces.
	Vertical bool
}

// Caster casts rays against one immutable grid. Stateless beyond the
// grid reference; safe to share.
type Caster struct {
	grid *arena.Grid
}

// NewCaster creates a caster for a grid
func NewCaster(grid *arena.Grid) *Caster {
	return &Caster{grid: grid}
}

// Cast marches a ray from origin along rayAngle until it enters a
// wall cell, using DDA over grid-line crossings. The returned
// distance is corrected by cos(rayAngle-viewAngle) to be
// perpendicular to the view plane; pass rayAngle as viewAngle to get
// the true Euclidean distance. Step count is bounded; if the ray
// somehow escapes the sealed border the cast fails closed with the
// map diagonal.
func (c *Caster) Cast(origin vmath.Vec2, viewAngle, rayAngle float64) Hit {
	dir := vmath.Heading(rayAngle)

	mapX := int(math.Floor(origin.X))
	mapY := int(math.Floor(origin.Y))

	deltaX := math.Abs(1 / dir.X) // +Inf for axis-parallel rays
	deltaY := math.Abs(1 / dir.Y)

	var sideX, sideY float64
	stepX, stepY := 1, 1
	if dir.X < 0 {
		stepX = -1
		sideX = (origin.X - float64(mapX)) * deltaX
	} else {
		sideX = (float64(mapX) + 1 - origin.X) * deltaX
	}
	if dir.Y < 0 {
		stepY = -1
		sideY = (origin.Y - float64(mapY)) * deltaY
	} else {
		sideY = (float64(mapY) + 1 - origin.Y) * deltaY
	}

	vertical := true
	hit := false
	var cell arena.Cell

	for steps := 0; steps < c.grid.MaxSteps(); steps++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			vertical = true
		} else {
			sideY += deltaY
			mapY += stepY
			vertical = false
		}

		cell = c.grid.CellAt(mapX, mapY)
		if cell.IsWall() {
			hit = true
			break
		}
	}

	if !hit {
		// Unreachable with a sealed border; fail closed
		return Hit{Dist: c.grid.Diagonal(), Material: arena.WallBrick, Vertical: vertical}
	}

	// Perpendicular distance along the ray axis, then projected onto
	// the view axis. The half-step term lands the distance exactly on
	// the wall boundary that was entered.
	var dist float64
	if vertical {
		dist = (float64(mapX) - origin.X + (1-float64(stepX))/2) / dir.X
	} else {
		dist = (float64(mapY) - origin.Y + (1-float64(stepY))/2) / dir.Y
	}
	dist *= math.Cos(rayAngle - viewAngle)

	if dist < parameter.MinDepth {
		dist = parameter.MinDepth
	}

	return Hit{Dist: dist, Material: cell, Vertical: vertical}
}

// WallDist returns the Euclidean distance to the nearest wall along
// angle, uncorrected
func (c *Caster) WallDist(origin vmath.Vec2, angle float64) float64 {
	return c.Cast(origin, angle, angle).Dist
}

// LineOfSight reports whether the straight segment from a to b is
// wall-free and no longer than maxDist
func (c *Caster) LineOfSight(a, b vmath.Vec2, maxDist float64) bool {
	d := vmath.Dist(a, b)
	if d > maxDist {
		return false
	}
	return c.WallDist(a, vmath.Angle(a, b)) >= d
}
