package arena

import (
	"testing"

	"github.com/lixenwraith/termstrike/vmath"
)

func TestNewGridBorderSealed(t *testing.T) {
	g := NewGrid(10, 8)

	for x := 0; x < 10; x++ {
		if !g.CellAt(x, 0).IsWall() {
			t.Errorf("Top border open at x=%d", x)
		}
		if !g.CellAt(x, 7).IsWall() {
			t.Errorf("Bottom border open at x=%d", x)
		}
	}
	for y := 0; y < 8; y++ {
		if !g.CellAt(0, y).IsWall() {
			t.Errorf("Left border open at y=%d", y)
		}
		if !g.CellAt(9, y).IsWall() {
			t.Errorf("Right border open at y=%d", y)
		}
	}
}

func TestCellAtOutOfRangeIsWall(t *testing.T) {
	g := NewGrid(5, 5)

	cases := [][2]int{{-1, 2}, {5, 2}, {2, -1}, {2, 5}, {-100, -100}}
	for _, c := range cases {
		if got := g.CellAt(c[0], c[1]); got != WallBrick {
			t.Errorf("CellAt(%d, %d) = %v, want WallBrick", c[0], c[1], got)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	g := NewGrid(6, 6)
	g.set(3, 3, WallMetal)

	if !g.IsWalkable(2.5, 2.5) {
		t.Error("Interior floor reported unwalkable")
	}
	if g.IsWalkable(3.5, 3.5) {
		t.Error("Wall cell reported walkable")
	}
	if g.IsWalkable(0.5, 0.5) {
		t.Error("Border cell reported walkable")
	}
	if g.IsWalkable(-1, 3) {
		t.Error("Out-of-range position reported walkable")
	}
}

func TestParseRepairsMissingBorder(t *testing.T) {
	g, err := Parse([]string{
		"....",
		"....",
		"....",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !g.CellAt(0, 0).IsWall() || !g.CellAt(3, 2).IsWall() {
		t.Error("Parse did not seal the border")
	}
}

func TestParseRejectsUnknownGlyph(t *testing.T) {
	if _, err := Parse([]string{"###", "#?#", "###"}); err == nil {
		t.Error("Expected error for unknown glyph")
	}
	if _, err := Parse(nil); err == nil {
		t.Error("Expected error for empty map")
	}
	if _, err := Parse([]string{"##", "##"}); err == nil {
		t.Error("Expected error for map with no interior")
	}
}

func TestParseMaterials(t *testing.T) {
	g, err := Parse([]string{
		"#####",
		"#.=%#",
		"#####",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.CellAt(1, 1) != Empty {
		t.Error("Expected floor at 1,1")
	}
	if g.CellAt(2, 1) != WallMetal {
		t.Error("Expected metal at 2,1")
	}
	if g.CellAt(3, 1) != WallStone {
		t.Error("Expected stone at 3,1")
	}
}

func TestArenaLoads(t *testing.T) {
	g := Arena()
	if g.Width() != 24 || g.Height() != 17 {
		t.Errorf("Arena dimensions %dx%d unexpected", g.Width(), g.Height())
	}
	if _, err := g.FindSpawn(); err != nil {
		t.Fatalf("Arena has no spawn: %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{Width: 24, Height: 24, WallCount: 25, Seed: 99}
	a := Generate(cfg)
	b := Generate(cfg)

	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			if a.CellAt(x, y) != b.CellAt(x, y) {
				t.Fatalf("Same seed produced different maps at %d,%d", x, y)
			}
		}
	}

	c := Generate(Config{Width: 24, Height: 24, WallCount: 25, Seed: 100})
	same := true
	for y := 0; y < 24 && same; y++ {
		for x := 0; x < 24; x++ {
			if a.CellAt(x, y) != c.CellAt(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds produced identical maps")
	}
}

func TestGenerateKeepsBorderAndRing(t *testing.T) {
	g := Generate(Config{Width: 20, Height: 20, WallCount: 200, Seed: 5})

	for x := 0; x < 20; x++ {
		if !g.CellAt(x, 0).IsWall() || !g.CellAt(x, 19).IsWall() {
			t.Fatal("Generated map border open")
		}
	}
	// The inner ring next to the border stays walkable even under
	// extreme wall counts.
	if g.CellAt(1, 1).IsWall() {
		t.Error("Inner ring cell blocked by generator")
	}
}

func TestFindSpawnFailsOnSolidMap(t *testing.T) {
	g := NewGrid(6, 6)
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			g.set(x, y, WallStone)
		}
	}

	if _, err := g.FindSpawn(); err != ErrNoSpawn {
		t.Errorf("Expected ErrNoSpawn, got %v", err)
	}
	if _, err := g.RandomSpawn(vmath.NewFastRand(1), vmath.Vec2{}, 0); err != ErrNoSpawn {
		t.Errorf("Expected ErrNoSpawn from RandomSpawn, got %v", err)
	}
}

func TestRandomSpawnRespectsDistance(t *testing.T) {
	g := NewGrid(24, 24)
	rng := vmath.NewFastRand(3)
	from := vmath.Vec2{X: 12, Y: 12}

	for i := 0; i < 50; i++ {
		p, err := g.RandomSpawn(rng, from, 5)
		if err != nil {
			t.Fatalf("RandomSpawn failed: %v", err)
		}
		if vmath.Dist(p, from) < 5 {
			t.Fatalf("Spawn %v closer than minimum distance", p)
		}
		if !g.IsWalkable(p.X, p.Y) {
			t.Fatalf("Spawn %v not walkable", p)
		}
	}
}

func TestRandomSpawnRelaxesWhenImpossible(t *testing.T) {
	g := NewGrid(5, 5)
	// Only a handful of interior cells, all within minDist
	p, err := g.RandomSpawn(vmath.NewFastRand(8), vmath.Vec2{X: 2.5, Y: 2.5}, 100)
	if err != nil {
		t.Fatalf("Expected relaxed fallback spawn, got %v", err)
	}
	if !g.IsWalkable(p.X, p.Y) {
		t.Errorf("Fallback spawn %v not walkable", p)
	}
}
