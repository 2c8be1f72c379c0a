package render

import (
	"github.com/lixenwraith/termstrike/arena"
)

// DepthSample is one screen column's nearest-wall record
type DepthSample struct {
	Dist     float64
	Material arena.Cell
}

// DepthBuffer holds per-column wall distances for the current frame.
// The projector overwrites it every frame; the sprite compositor
// reads it for occlusion. Nothing persists across frames.
type DepthBuffer struct {
	samples []DepthSample
}

// NewDepthBuffer creates a buffer with one sample per screen column
func NewDepthBuffer(columns int) *DepthBuffer {
	return &DepthBuffer{samples: make([]DepthSample, columns)}
}

// Columns returns the buffer width
func (d *DepthBuffer) Columns() int {
	return len(d.samples)
}

// Reset marks every column infinitely far so an unwritten column
// never occludes anything
func (d *DepthBuffer) Reset() {
	for i := range d.samples {
		d.samples[i] = DepthSample{Dist: 1e18}
	}
}

// Set records the wall distance for a column
func (d *DepthBuffer) Set(col int, dist float64, material arena.Cell) {
	if col < 0 || col >= len(d.samples) {
		return
	}
	d.samples[col] = DepthSample{Dist: dist, Material: material}
}

// At returns the sample for a column; infinitely far out of range
func (d *DepthBuffer) At(col int) DepthSample {
	if col < 0 || col >= len(d.samples) {
		return DepthSample{Dist: 1e18}
	}
	return d.samples[col]
}
