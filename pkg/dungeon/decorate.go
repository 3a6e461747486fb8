package dungeon

import (
	"codeberg.org/anaseto/gruid"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/pkg/utils"
)

// digTombs - фаза 7. На каждой стороне каждой комнаты (кроме комнаты
// с лестницей вверх) выбирается одна ниша в стене и с шансом TombChance
// становится гробницей.
func (g *Generator) digTombs() {
	if g.cfg.TombChance <= 0 {
		return
	}
	for i, r := range g.rooms {
		if i == g.upRoom {
			continue
		}
		for _, e := range roomEdges {
			slots := g.tombSlots(r, e)
			if len(slots) == 0 {
				continue
			}
			p := slots[g.rng.Intn(len(slots))]
			if utils.Chance(g.rng, g.cfg.TombChance) {
				g.a.SetTile(p.X, p.Y, enums.TerrainTombMarker)
			}
		}
	}
}

// tombSlots идет вдоль стороны e прямоугольника r и для каждой линии
// берет стену прямо перед первым полом.
func (g *Generator) tombSlots(r Rect, e edge) []gruid.Point {
	ax, ay := e.along()

	ox, oy := r.X, r.Y
	if e.dx > 0 {
		ox = r.X + r.W - 1
	}
	if e.dy > 0 {
		oy = r.Y + r.H - 1
	}
	length, depth := r.W, r.H
	if e.dx != 0 {
		length, depth = r.H, r.W
	}

	var res []gruid.Point
	for i := 1; i < length-1; i++ {
		x, y := ox+i*ax, oy+i*ay
		for d := 0; d < depth && g.isKind(x, y, enums.TerrainRawWall); d++ {
			x -= e.dx
			y -= e.dy
		}
		if !g.isKind(x, y, enums.TerrainRawFloor) {
			continue
		}
		wx, wy := x+e.dx, y+e.dy
		if g.isTombSlot(wx, wy, e) {
			res = append(res, gruid.Point{X: wx, Y: wy})
		}
	}
	return res
}

// isTombSlot - стена с полом внутрь и глухим камнем снаружи и по бокам.
func (g *Generator) isTombSlot(x, y int, e edge) bool {
	if !g.isKind(x, y, enums.TerrainRawWall) {
		return false
	}
	if g.orthCount(x, y, enums.TerrainRawFloor) != 1 || g.orthCount(x, y, enums.TerrainRawWall) != 3 {
		return false
	}
	if !g.isKind(x-e.dx, y-e.dy, enums.TerrainRawFloor) {
		return false
	}

	fx, fy := x+e.dx, y+e.dy
	ax, ay := e.along()
	return g.isKind(fx, fy, enums.TerrainRawWall) &&
		g.isKind(fx+ax, fy+ay, enums.TerrainRawWall) &&
		g.isKind(fx-ax, fy-ay, enums.TerrainRawWall)
}
