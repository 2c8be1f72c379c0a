package arena

import (
	"math"
)

// Cell is a single map cell: empty floor or a wall material
type Cell uint8

const (
	Empty Cell = iota
	WallBrick
	WallMetal
	WallStone
)

// IsWall reports whether the cell blocks movement and rays
func (c Cell) IsWall() bool {
	return c != Empty
}

// Grid is the static level map. Immutable once constructed; every
// query is safe for any coordinate. The outer border is always wall,
// which guarantees ray termination.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid builds an all-empty grid with a solid border
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.sealBorder()
	return g
}

// Width returns the grid width in cells
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells
func (g *Grid) Height() int {
	return g.height
}

// CellAt returns the cell at integer coordinates. Out-of-range
// queries return WallBrick so traversals always terminate.
func (g *Grid) CellAt(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return WallBrick
	}
	return g.cells[y*g.width+x]
}

// IsWalkable reports whether a continuous position lies on an empty cell
func (g *Grid) IsWalkable(x, y float64) bool {
	return g.CellAt(int(math.Floor(x)), int(math.Floor(y))) == Empty
}

// Diagonal returns the map diagonal length, the fail-closed distance
// for a ray that somehow escapes the border
func (g *Grid) Diagonal() float64 {
	return math.Hypot(float64(g.width), float64(g.height))
}

// MaxSteps bounds DDA traversal; the border makes hitting it unreachable
func (g *Grid) MaxSteps() int {
	if g.width > g.height {
		return 2 * g.width
	}
	return 2 * g.height
}

func (g *Grid) set(x, y int, c Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = c
}

// sealBorder forces every boundary cell to wall. Called by all
// constructors; a map missing its border is repaired, not rejected.
func (g *Grid) sealBorder() {
	for x := 0; x < g.width; x++ {
		g.set(x, 0, WallBrick)
		g.set(x, g.height-1, WallBrick)
	}
	for y := 0; y < g.height; y++ {
		g.set(0, y, WallBrick)
		g.set(g.width-1, y, WallBrick)
	}
}
