package component

import (
	"github.com/lixenwraith/termstrike/vmath"
)

// Pose is a continuous position plus a facing angle in [0, Tau)
type Pose struct {
	Pos   vmath.Vec2
	Angle float64
}

// Advance returns the position after moving dist along the facing angle
func (p Pose) Advance(dist float64) vmath.Vec2 {
	return p.Pos.Add(vmath.Heading(p.Angle).Scale(dist))
}

// Turn rotates the facing by delta radians, keeping it normalized
func (p *Pose) Turn(delta float64) {
	p.Angle = vmath.NormalizeAngle(p.Angle + delta)
}
