package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is a single drawable character cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the frame's character grid. Fully rewritten every frame;
// the screen flushes it in one pass.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.Clear()
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Set writes a cell; out-of-range writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at a position; the zero cell out of range
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Clear resets every cell to a blank
func (b *Buffer) Clear() {
	blank := Cell{Rune: ' ', Style: tcell.StyleDefault}
	for i := range b.cells {
		b.cells[i] = blank
	}
}
