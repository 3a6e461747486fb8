package dungeon

import (
	"dungeon-core/internal/area"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
)

// OpenArea - открытая площадка из каменного пола, по желанию обнесенная стеной.
func OpenArea(width, height int, walled bool) *area.Area {
	a := area.New(width, height)
	a.Fill(enums.TerrainStoneFloor)
	if !walled {
		return a
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				a.SetTile(x, y, enums.TerrainStoneWall)
			}
		}
	}
	return a
}

// GenerateSurface создает "домашний" уровень (поверхность).
// Пока это пустая площадка со спуском в подземелье по центру.
func GenerateSurface(width, height int) *Result {
	a := OpenArea(width, height, true)

	startPos := domain.Position{X: width / 2, Y: height / 2}
	a.SetTile(startPos.X, startPos.Y, enums.TerrainStairsDown)

	whole := Rect{X: 0, Y: 0, W: width, H: height}
	return &Result{
		Area:            a,
		Rooms:           []Rect{whole},
		UpRoom:          -1,
		DownRoom:        0,
		StairsDown:      startPos,
		Start:           startPos,
		Attempts:        1,
		FloorPercent:    a.FloorPercent(),
		WalkablePercent: a.WalkablePercent(),
	}
}
