package render

import (
	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/raycast"
)

// Projector drives the ray caster across the field of view and turns
// wall distances into vertical character columns. It owns the depth
// buffer contract: after Project, every screen column holds the
// perpendicular distance of its wall slice.
type Projector struct {
	caster *raycast.Caster
	depth  *DepthBuffer
}

// NewProjector creates a projector writing into depth
func NewProjector(caster *raycast.Caster, depth *DepthBuffer) *Projector {
	return &Projector{caster: caster, depth: depth}
}

// Depth exposes the depth buffer for the sprite compositor
func (p *Projector) Depth() *DepthBuffer {
	return p.depth
}

// Project renders one frame of walls, floor and ceiling into buf and
// rewrites the depth buffer. Rays sweep the FOV left to right,
// centered on the pose's facing; each ray fills ColumnsPerRay
// adjacent screen columns to correct the cell aspect ratio.
func (p *Projector) Project(buf *Buffer, pose component.Pose) {
	p.depth.Reset()

	height := buf.Height()
	delta := parameter.FOV / parameter.NumRays

	for ray := 0; ray < parameter.NumRays; ray++ {
		// Sample at the column center; leftmost column looks half a
		// FOV counter-clockwise of the facing
		rayAngle := pose.Angle + parameter.FOV/2 - (float64(ray)+0.5)*delta

		hit := p.caster.Cast(pose.Pos, pose.Angle, rayAngle)

		wallHeight := int(float64(height) / hit.Dist)
		if wallHeight > height {
			wallHeight = height
		}
		drawStart := (height - wallHeight) / 2
		drawEnd := (height + wallHeight) / 2

		cell := wallCell(hit.Material, hit.Dist, hit.Vertical)
		beyond := hit.Dist > parameter.MaxDepth

		for i := 0; i < parameter.ColumnsPerRay; i++ {
			col := ray*parameter.ColumnsPerRay + i
			p.depth.Set(col, hit.Dist, hit.Material)

			for y := 0; y < height; y++ {
				switch {
				case y < drawStart:
					buf.Set(col, y, ceilingGlyph, floorStyle)
				case y < drawEnd && !beyond:
					buf.Set(col, y, cell.Rune, cell.Style)
				case y < drawEnd:
					// Wall past the far plane: leave the slice open
					buf.Set(col, y, ceilingGlyph, floorStyle)
				default:
					buf.Set(col, y, floorGlyph, floorStyle)
				}
			}
		}
	}
}
