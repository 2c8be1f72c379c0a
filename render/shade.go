package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termstrike/arena"
	"github.com/lixenwraith/termstrike/parameter"
)

// Wall fill glyphs by distance band, densest nearest
var wallGlyphs = [4]rune{'█', '▓', '▒', '░'}

// Floor and ceiling fill
const (
	floorGlyph   = '.'
	ceilingGlyph = ' '
)

var materialColors = map[arena.Cell]tcell.Color{
	arena.WallBrick: tcell.ColorWhite,
	arena.WallMetal: tcell.ColorTeal,
	arena.WallStone: tcell.ColorYellow,
}

// wallCell picks the glyph and style for a wall column slice.
// Horizontal faces render dimmed, which fakes a directional light
// without any lighting pass.
func wallCell(material arena.Cell, dist float64, vertical bool) Cell {
	band := 3
	switch {
	case dist < parameter.ShadeNearDist:
		band = 0
	case dist < parameter.ShadeMidDist:
		band = 1
	case dist < parameter.ShadeFarDist:
		band = 2
	}

	color, ok := materialColors[material]
	if !ok {
		color = tcell.ColorWhite
	}

	style := tcell.StyleDefault.Foreground(color)
	if !vertical {
		style = style.Dim(true)
	}
	return Cell{Rune: wallGlyphs[band], Style: style}
}

var floorStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
