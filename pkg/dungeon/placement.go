package dungeon

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"dungeon-core/internal/core/types/enums"
	"github.com/zyedidia/generic/mapset"
)

// placeRooms - фаза 1. Первая комната встает по центру, остальные
// пристыковываются дверь к двери. Фаза заканчивается после MaxFailedRooms
// неудач подряд или когда пол подошел к TargetFloorPercent.
func (g *Generator) placeRooms() error {
	failed := 0
	// Стоп, когда бюджет пола не вместит даже самую маленькую комнату
	for failed < g.cfg.MaxFailedRooms && g.floor+g.cfg.MinRoomFloor <= g.floorBudget() {
		first := len(g.rooms) == 0
		r, err := newRoom(g.rng, g.cfg, first)
		if err != nil {
			failed++
			continue
		}

		if first {
			if !g.placeFirstRoom(r) {
				return errFirstRoomPaste
			}
			continue
		}

		// Не влезает в бюджет пола - сдвиги можно не перебирать
		if g.floor+r.floorCells() > g.floorBudget() {
			failed++
			continue
		}
		if g.placeRoom(r) {
			failed = 0
		} else {
			failed++
		}
	}

	if len(g.rooms) == 0 {
		return errFirstRoomPaste
	}
	return nil
}

func (g *Generator) placeFirstRoom(r *room) bool {
	ox := (g.cfg.Width - r.actualW) / 2
	oy := (g.cfg.Height - r.actualH) / 2
	return g.paste(r, ox, oy, false)
}

// placeRoom перебирает все сдвиги, при которых дверь комнаты ложится
// на свободную дверь карты, в случайном порядке.
func (g *Generator) placeRoom(r *room) bool {
	mapDoors := g.linkableDoors()
	roomDoors := r.doors()
	if len(mapDoors) == 0 || len(roomDoors) == 0 {
		return false
	}

	seen := mapset.New[gruid.Point]()
	offsets := make([]gruid.Point, 0, len(mapDoors)*len(roomDoors))
	for _, md := range mapDoors {
		for _, rd := range roomDoors {
			off := md.Sub(rd)
			if seen.Has(off) {
				continue
			}
			seen.Put(off)
			offsets = append(offsets, off)
		}
	}
	g.rng.Shuffle(len(offsets), func(i, j int) {
		offsets[i], offsets[j] = offsets[j], offsets[i]
	})

	for _, off := range offsets {
		if g.paste(r, off.X, off.Y, true) {
			return true
		}
	}
	return false
}

// linkableDoors - двери карты, снаружи которых еще пусто (не меньше трех пустых соседей).
func (g *Generator) linkableDoors() []gruid.Point {
	var nbs paths.Neighbors
	inBounds := func(p gruid.Point) bool { return g.a.InBounds(p.X, p.Y) }

	var res []gruid.Point
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			if g.kindAt(x, y) != enums.TerrainDoorCandidate {
				continue
			}
			p := gruid.Point{X: x, Y: y}
			voids := 0
			for _, q := range nbs.All(p, inBounds) {
				if g.kindAt(q.X, q.Y) == enums.TerrainVoid {
					voids++
				}
			}
			if voids >= 3 {
				res = append(res, p)
			}
		}
	}
	return res
}

// paste кладет комнату со сдвигом (ox, oy), если она встает без конфликтов.
// Пол ложится только на пустоту и не на край карты. Стены и двери комнаты
// могут лечь на стены и двери карты - тогда клетка карты остается как есть.
// Дверь на двери - это стыковка; needAlign требует хотя бы одну.
// Комната, с которой пол превысит бюджет, не кладется.
func (g *Generator) paste(r *room, ox, oy int, needAlign bool) bool {
	aligned, floor := 0, 0
	for y := 0; y < r.actualH; y++ {
		for x := 0; x < r.actualW; x++ {
			k := r.at(x, y)
			if k == enums.TerrainVoid {
				continue
			}
			mx, my := ox+x, oy+y
			if !g.a.InBounds(mx, my) {
				return false
			}
			mk := g.kindAt(mx, my)

			if k == enums.TerrainRawFloor {
				if mk != enums.TerrainVoid || g.onBorder(mx, my) {
					return false
				}
				floor++
				continue
			}
			if mk == enums.TerrainRawFloor {
				return false
			}
			if k == enums.TerrainDoorCandidate && mk == enums.TerrainDoorCandidate {
				aligned++
			}
		}
	}
	if needAlign && aligned == 0 {
		return false
	}
	if g.floor+floor > g.floorBudget() {
		return false
	}

	for y := 0; y < r.actualH; y++ {
		for x := 0; x < r.actualW; x++ {
			k := r.at(x, y)
			if k == enums.TerrainVoid || g.kindAt(ox+x, oy+y) != enums.TerrainVoid {
				continue
			}
			g.a.SetTile(ox+x, oy+y, k)
		}
	}

	g.floor += floor
	g.rooms = append(g.rooms, Rect{X: ox, Y: oy, W: r.actualW, H: r.actualH})
	return true
}
