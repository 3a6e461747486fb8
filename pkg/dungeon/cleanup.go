package dungeon

import (
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/pkg/utils"
)

// fillVoid - фаза 2: край карты и вся оставшаяся пустота становятся стеной.
func (g *Generator) fillVoid() {
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			if g.onBorder(x, y) || g.kindAt(x, y) == enums.TerrainVoid {
				g.a.SetTile(x, y, enums.TerrainRawWall)
			}
		}
	}
}

// cleanupDoors - фаза 3: чистим двери и тупиковые выступы до неподвижной точки,
// затем убираем двери "углом".
func (g *Generator) cleanupDoors() {
	for g.pruneDoors() > 0 {
	}
	g.removeLDoors()
}

// pruneDoors - один проход по карте. Возвращает число изменений.
//   - дверь, за которой меньше двух клеток пола, замуровывается;
//   - дверь с тремя-четырьмя клетками пола - просто пол;
//   - дверь рядом с другой дверью (ближе DoorSpacing) - пол;
//   - пол, зажатый стеной с трех сторон, - стена.
func (g *Generator) pruneDoors() int {
	changes := 0
	for y := 1; y < g.cfg.Height-1; y++ {
		for x := 1; x < g.cfg.Width-1; x++ {
			switch g.kindAt(x, y) {
			case enums.TerrainDoorCandidate:
				floors := g.orthCount(x, y, enums.TerrainRawFloor)
				switch {
				case floors < 2:
					g.a.SetTile(x, y, enums.TerrainRawWall)
					changes++
				case floors > 2, g.doorNearby(x, y):
					g.a.SetTile(x, y, enums.TerrainRawFloor)
					changes++
				}
			case enums.TerrainRawFloor:
				if g.orthCount(x, y, enums.TerrainRawWall) == 3 {
					g.a.SetTile(x, y, enums.TerrainRawWall)
					changes++
				}
			}
		}
	}
	return changes
}

// doorNearby - есть ли другая дверь в квадрате радиуса DoorSpacing.
func (g *Generator) doorNearby(x, y int) bool {
	s := g.cfg.DoorSpacing
	for dy := -s; dy <= s; dy++ {
		for dx := -s; dx <= s; dx++ {
			if (dx != 0 || dy != 0) && g.isKind(x+dx, y+dy, enums.TerrainDoorCandidate) {
				return true
			}
		}
	}
	return false
}

// removeLDoors - дверь должна стоять между двумя клетками пола на одной оси.
func (g *Generator) removeLDoors() int {
	changes := 0
	for y := 1; y < g.cfg.Height-1; y++ {
		for x := 1; x < g.cfg.Width-1; x++ {
			if g.kindAt(x, y) != enums.TerrainDoorCandidate {
				continue
			}
			horizontal := g.isKind(x-1, y, enums.TerrainRawFloor) && g.isKind(x+1, y, enums.TerrainRawFloor)
			vertical := g.isKind(x, y-1, enums.TerrainRawFloor) && g.isKind(x, y+1, enums.TerrainRawFloor)
			if !horizontal && !vertical {
				g.a.SetTile(x, y, enums.TerrainRawFloor)
				changes++
			}
		}
	}
	return changes
}

// smoothCorners - фаза 4: часть внутренних углов комнат заливается стеной.
// Трогаем только клетки, чья заливка не может разрезать пол.
func (g *Generator) smoothCorners() int {
	if g.cfg.CornerSmoothChance <= 0 {
		return 0
	}
	changes := 0
	for y := 1; y < g.cfg.Height-1; y++ {
		for x := 1; x < g.cfg.Width-1; x++ {
			if g.kindAt(x, y) != enums.TerrainRawFloor || g.count8(x, y, enums.TerrainRawWall) < 5 {
				continue
			}
			if !g.isCorner(x, y) {
				continue
			}
			if utils.Chance(g.rng, g.cfg.CornerSmoothChance) {
				g.a.SetTile(x, y, enums.TerrainRawWall)
				changes++
			}
		}
	}
	return changes
}

// isCorner - у клетки пола один выход, либо два перпендикулярных
// с полом на диагонали между ними. Рядом с дверью углов не бывает.
func (g *Generator) isCorner(x, y int) bool {
	var open []struct{ dx, dy int }
	for _, d := range orthDirs {
		switch g.kindAt(x+d.dx, y+d.dy) {
		case enums.TerrainRawFloor:
			open = append(open, d)
		case enums.TerrainRawWall:
		default:
			return false
		}
	}

	switch len(open) {
	case 1:
		return true
	case 2:
		a, b := open[0], open[1]
		if a.dx == -b.dx && a.dy == -b.dy {
			return false
		}
		return g.isKind(x+a.dx+b.dx, y+a.dy+b.dy, enums.TerrainRawFloor)
	}
	return false
}

// eliminateDiagonals - фаза 5: ни в одном квадрате 2x2 проходимые клетки
// не должны касаться только углами. Каждая такая пара замуровывается,
// после чего повторяем чистку дверей, пока карта не перестанет меняться.
func (g *Generator) eliminateDiagonals() {
	for {
		n := g.removeCheckerboards()
		n += g.pruneDoors()
		n += g.removeLDoors()
		if n == 0 {
			return
		}
	}
}

func (g *Generator) removeCheckerboards() int {
	walkable := func(x, y int) bool { return !g.a.Tile(x, y).BlocksMovement() }

	changes := 0
	for y := 0; y < g.cfg.Height-1; y++ {
		for x := 0; x < g.cfg.Width-1; x++ {
			nw, ne := walkable(x, y), walkable(x+1, y)
			sw, se := walkable(x, y+1), walkable(x+1, y+1)

			switch {
			case nw && se && !ne && !sw:
				g.a.SetTile(x, y, enums.TerrainRawWall)
				g.a.SetTile(x+1, y+1, enums.TerrainRawWall)
				changes += 2
			case ne && sw && !nw && !se:
				g.a.SetTile(x+1, y, enums.TerrainRawWall)
				g.a.SetTile(x, y+1, enums.TerrainRawWall)
				changes += 2
			}
		}
	}
	return changes
}
