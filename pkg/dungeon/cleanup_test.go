package dungeon

import (
	"errors"
	"math/rand"
	"testing"

	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
)

// newTestGenerator - генератор с уже нарисованной картой.
func newTestGenerator(rows ...string) *Generator {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = len(rows[0]), len(rows)

	g := NewGenerator(cfg, rand.New(rand.NewSource(1)))
	g.voidMap()
	for y, row := range rows {
		for x, ch := range row {
			g.a.SetTile(x, y, kindByChar[ch])
		}
	}
	return g
}

func countKind(g *Generator, kind enums.TerrainKind) int {
	return g.a.CountTiles(func(t *domain.Tile) bool { return t.Kind == kind })
}

func TestFillVoid(t *testing.T) {
	g := newTestGenerator(
		"  ...",
		" ... ",
		"     ",
	)
	g.fillVoid()

	if n := countKind(g, enums.TerrainVoid); n != 0 {
		t.Errorf("%d void cells left", n)
	}
	// Пол на краю тоже становится стеной
	if g.kindAt(4, 0) != enums.TerrainRawWall {
		t.Errorf("border floor = %s, want RAW_WALL", g.kindAt(4, 0))
	}
	if g.kindAt(2, 1) != enums.TerrainRawFloor {
		t.Errorf("interior floor = %s, want RAW_FLOOR", g.kindAt(2, 1))
	}
}

func TestCleanupDoors(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		check func(t *testing.T, g *Generator)
	}{
		{
			name: "door between two rooms stays",
			rows: []string{
				"#######",
				"#.....#",
				"#.....#",
				"###+###",
				"#.....#",
				"#.....#",
				"#######",
			},
			check: func(t *testing.T, g *Generator) {
				if g.kindAt(3, 3) != enums.TerrainDoorCandidate {
					t.Errorf("door = %s", g.kindAt(3, 3))
				}
				if n := countKind(g, enums.TerrainRawFloor); n != 20 {
					t.Errorf("floor count = %d, want 20", n)
				}
			},
		},
		{
			name: "door into rock is walled up",
			rows: []string{
				"#######",
				"#.....#",
				"#.....#",
				"###+###",
				"#######",
			},
			check: func(t *testing.T, g *Generator) {
				if g.kindAt(3, 3) != enums.TerrainRawWall {
					t.Errorf("door = %s, want RAW_WALL", g.kindAt(3, 3))
				}
			},
		},
		{
			name: "door open on three sides becomes floor",
			rows: []string{
				"#######",
				"#.....#",
				"#.#+..#",
				"#.....#",
				"#######",
			},
			check: func(t *testing.T, g *Generator) {
				if g.kindAt(3, 2) != enums.TerrainRawFloor {
					t.Errorf("door = %s, want RAW_FLOOR", g.kindAt(3, 2))
				}
			},
		},
		{
			name: "doors too close: the first one becomes floor",
			rows: []string{
				"#######",
				"#.....#",
				"#.....#",
				"#+#+###",
				"#.....#",
				"#.....#",
				"#######",
			},
			check: func(t *testing.T, g *Generator) {
				if g.kindAt(1, 3) != enums.TerrainRawFloor {
					t.Errorf("first door = %s, want RAW_FLOOR", g.kindAt(1, 3))
				}
				if g.kindAt(3, 3) != enums.TerrainDoorCandidate {
					t.Errorf("second door = %s, want DOOR_CANDIDATE", g.kindAt(3, 3))
				}
			},
		},
		{
			name: "dead-end nub is filled",
			rows: []string{
				"#######",
				"#.....#",
				"#.....#",
				"###.###",
				"#######",
			},
			check: func(t *testing.T, g *Generator) {
				if g.kindAt(3, 3) != enums.TerrainRawWall {
					t.Errorf("nub = %s, want RAW_WALL", g.kindAt(3, 3))
				}
				if n := countKind(g, enums.TerrainRawFloor); n != 10 {
					t.Errorf("floor count = %d, want 10", n)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(tt.rows...)
			g.cleanupDoors()
			tt.check(t, g)
		})
	}
}

func TestRemoveLDoors(t *testing.T) {
	g := newTestGenerator(
		"#####",
		"#+..#",
		"#.###",
		"#####",
	)
	if n := g.removeLDoors(); n != 1 {
		t.Fatalf("removeLDoors() = %d, want 1", n)
	}
	if g.kindAt(1, 1) != enums.TerrainRawFloor {
		t.Errorf("corner door = %s, want RAW_FLOOR", g.kindAt(1, 1))
	}
}

func TestSmoothCorners(t *testing.T) {
	rows := []string{
		"######",
		"#....#",
		"#....#",
		"#....#",
		"######",
	}

	t.Run("always", func(t *testing.T) {
		g := newTestGenerator(rows...)
		g.cfg.CornerSmoothChance = 100

		if n := g.smoothCorners(); n != 4 {
			t.Fatalf("smoothCorners() = %d, want 4\n%s", n, dump(g.a))
		}
		for _, p := range []domain.Position{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 1, Y: 3}, {X: 4, Y: 3}} {
			if g.kindAt(p.X, p.Y) != enums.TerrainRawWall {
				t.Errorf("corner %v = %s, want RAW_WALL", p, g.kindAt(p.X, p.Y))
			}
		}
	})

	t.Run("never", func(t *testing.T) {
		g := newTestGenerator(rows...)
		g.cfg.CornerSmoothChance = 0
		if n := g.smoothCorners(); n != 0 {
			t.Errorf("smoothCorners() = %d, want 0", n)
		}
	})

	t.Run("corridor cell is not a corner", func(t *testing.T) {
		g := newTestGenerator(
			"#####",
			"#...#",
			"#####",
		)
		if g.isCorner(2, 1) {
			t.Error("middle of a corridor must not be smoothed")
		}
	})
}

func TestRemoveCheckerboards(t *testing.T) {
	g := newTestGenerator(
		"####",
		"#.##",
		"##.#",
		"####",
	)
	if n := g.removeCheckerboards(); n != 2 {
		t.Fatalf("removeCheckerboards() = %d, want 2", n)
	}
	if g.kindAt(1, 1) != enums.TerrainRawWall || g.kindAt(2, 2) != enums.TerrainRawWall {
		t.Errorf("diagonal pair not walled:\n%s", dump(g.a))
	}

	g = newTestGenerator(
		"####",
		"##+#",
		"#.##",
		"####",
	)
	if n := g.removeCheckerboards(); n != 2 {
		t.Fatalf("door diagonal: removeCheckerboards() = %d, want 2", n)
	}
}

func TestPlaceStairs(t *testing.T) {
	g := newTestGenerator(
		"######",
		"#....#",
		"#....#",
		"#....#",
		"######",
	)
	g.rooms = []Rect{{X: 0, Y: 0, W: 6, H: 5}}

	if err := g.placeStairs(); err != nil {
		t.Fatalf("placeStairs() error = %v", err)
	}
	if g.stairsUp == g.stairsDown {
		t.Fatalf("stairs share a cell %v", g.stairsUp)
	}
	if countKind(g, enums.TerrainStairsUp) != 1 || countKind(g, enums.TerrainStairsDown) != 1 {
		t.Fatalf("want one staircase of each kind\n%s", dump(g.a))
	}
	if err := g.checkStairsConnected(); err != nil {
		t.Errorf("checkStairsConnected() error = %v", err)
	}
}

func TestPlaceStairs_Failures(t *testing.T) {
	t.Run("no corner cell", func(t *testing.T) {
		g := newTestGenerator(
			"#####",
			"#...#",
			"#####",
		)
		g.rooms = []Rect{{X: 0, Y: 0, W: 5, H: 3}}
		// У коридора нет клеток с двумя стенами и двумя полами
		g.a.SetTile(1, 1, enums.TerrainRawWall)
		g.a.SetTile(3, 1, enums.TerrainRawWall)

		if err := g.placeStairs(); !errors.Is(err, errNoStairs) {
			t.Errorf("err = %v, want errNoStairs", err)
		}
	})

	t.Run("disconnected rooms", func(t *testing.T) {
		g := newTestGenerator(
			"###########",
			"#...###...#",
			"#...###...#",
			"###########",
		)
		g.rooms = []Rect{{X: 0, Y: 0, W: 5, H: 4}, {X: 6, Y: 0, W: 5, H: 4}}

		if err := g.placeStairs(); err != nil {
			t.Fatalf("placeStairs() error = %v", err)
		}
		if err := g.checkStairsConnected(); !errors.Is(err, errStairsDisconnected) {
			t.Errorf("err = %v, want errStairsDisconnected", err)
		}
	})
}

func TestDigTombsAndBake(t *testing.T) {
	g := newTestGenerator(
		"#######",
		"#######",
		"##...##",
		"##...##",
		"##...##",
		"#######",
		"#######",
	)
	g.rooms = []Rect{{X: 1, Y: 1, W: 5, H: 5}}
	g.cfg.TombChance = 100

	g.digTombs()
	if n := countKind(g, enums.TerrainTombMarker); n != 4 {
		t.Fatalf("tombs = %d, want 4 (one per side)\n%s", n, dump(g.a))
	}

	if err := g.bake(); err != nil {
		t.Fatalf("bake() error = %v", err)
	}
	if n := countKind(g, enums.TerrainTomb); n != 4 {
		t.Errorf("baked tombs = %d, want 4", n)
	}
	if len(g.spawned) != 4 || len(g.a.Entities()) != 4 {
		t.Errorf("guardians = %d (area %d), want 4", len(g.spawned), len(g.a.Entities()))
	}
	for y := 0; y < g.a.Height(); y++ {
		for x := 0; x < g.a.Width(); x++ {
			if g.kindAt(x, y).IsProvisional() {
				t.Fatalf("provisional %s at (%d,%d) after baking", g.kindAt(x, y), x, y)
			}
		}
	}
}

func TestDigTombs_SkipsUpStairRoom(t *testing.T) {
	g := newTestGenerator(
		"#######",
		"#######",
		"##...##",
		"##...##",
		"##...##",
		"#######",
		"#######",
	)
	g.rooms = []Rect{{X: 1, Y: 1, W: 5, H: 5}}
	g.upRoom = 0
	g.cfg.TombChance = 100

	g.digTombs()
	if n := countKind(g, enums.TerrainTombMarker); n != 0 {
		t.Errorf("tombs in the up-stair room = %d, want 0", n)
	}
}

func TestBake_VoidIsUnbakeable(t *testing.T) {
	g := newTestGenerator(
		"###",
		"# #",
		"###",
	)
	if err := g.bake(); !errors.Is(err, errUnbakeable) {
		t.Errorf("err = %v, want errUnbakeable", err)
	}
}
