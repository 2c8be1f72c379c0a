package vmath

import (
	"math"
)

// Tau is a full turn in radians. Facing angles are normalized to [0, Tau).
const Tau = 2 * math.Pi

// Vec2 is a continuous world-space position or direction
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between a and b
func Dist(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Heading returns a unit direction vector for angle theta
// Screen-space convention: Y grows downward, so positive theta turns counter-clockwise on screen
func Heading(theta float64) Vec2 {
	return Vec2{math.Cos(theta), -math.Sin(theta)}
}

// Angle returns the facing angle from a toward b, normalized to [0, Tau)
func Angle(a, b Vec2) float64 {
	return NormalizeAngle(math.Atan2(-(b.Y - a.Y), b.X-a.X))
}

// NormalizeAngle wraps theta into [0, Tau)
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, Tau)
	if theta < 0 {
		theta += Tau
	}
	return theta
}

// AngleDiff returns the shortest signed difference a-b in (-Pi, Pi]
func AngleDiff(a, b float64) float64 {
	d := math.Mod(a-b+math.Pi, Tau)
	if d < 0 {
		d += Tau
	}
	return d - math.Pi
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt limits x to [lo, hi]
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
