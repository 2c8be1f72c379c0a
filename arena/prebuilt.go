package arena

import (
	"fmt"
)

// arenaRows is the hand-built arena layout: an open yard with cover
// blocks and an inner chamber.
var arenaRows = []string{
	"########################",
	"#......................#",
	"#..====..........====..#",
	"#..#..............#....#",
	"#..#....%%%%%%%...#....#",
	"#......%.......%......#",
	"#......%.......%......#",
	"#...====.......====...#",
	"#......................#",
	"#...====.......====...#",
	"#......%.......%......#",
	"#......%.......%......#",
	"#..#....%%%%%%%...#....#",
	"#..#..............#....#",
	"#..====..........====..#",
	"#......................#",
	"########################",
}

// Arena returns the prebuilt arena map
func Arena() *Grid {
	g, err := Parse(arenaRows)
	if err != nil {
		// The embedded layout is validated by tests; a parse failure
		// here is a programming error.
		panic(err)
	}
	return g
}

// Parse builds a grid from map rows. '#' is brick, '=' metal,
// '%' stone; '.' and ' ' are floor. Rows may be ragged; short rows
// are padded with floor. The border is sealed after parsing, so a
// malformed map without a full border still yields a valid grid.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("arena: empty map")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width < 3 || len(rows) < 3 {
		return nil, fmt.Errorf("arena: map %dx%d too small for an interior", width, len(rows))
	}

	g := NewGrid(width, len(rows))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#':
				g.set(x, y, WallBrick)
			case '=':
				g.set(x, y, WallMetal)
			case '%':
				g.set(x, y, WallStone)
			case '.', ' ':
				// floor
			default:
				return nil, fmt.Errorf("arena: unknown map glyph %q at %d,%d", ch, x, y)
			}
		}
	}
	g.sealBorder()
	return g, nil
}
