package dungeon

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
)

// isStairCell - клетка пола во внутреннем углу: две стены и два пола вокруг,
// причем по горизонтали с одной стороны стена, с другой пол.
func (g *Generator) isStairCell(x, y int) bool {
	if g.kindAt(x, y) != enums.TerrainRawFloor {
		return false
	}
	if g.orthCount(x, y, enums.TerrainRawWall) != 2 || g.orthCount(x, y, enums.TerrainRawFloor) != 2 {
		return false
	}
	left, right := g.kindAt(x-1, y), g.kindAt(x+1, y)
	return (left == enums.TerrainRawWall && right == enums.TerrainRawFloor) ||
		(left == enums.TerrainRawFloor && right == enums.TerrainRawWall)
}

// stairCandidates - подходящие клетки внутри прямоугольника комнаты.
func (g *Generator) stairCandidates(r Rect) []domain.Position {
	var res []domain.Position
	for y := max(r.Y, 1); y < min(r.Y+r.H, g.cfg.Height-1); y++ {
		for x := max(r.X, 1); x < min(r.X+r.W, g.cfg.Width-1); x++ {
			if g.isStairCell(x, y) {
				res = append(res, domain.Position{X: x, Y: y})
			}
		}
	}
	return res
}

// placeStairs - фаза 6. Лестница вниз ищется с первой комнаты вперед,
// лестница вверх - с последней назад.
func (g *Generator) placeStairs() error {
	for i := 0; i < len(g.rooms); i++ {
		if c := g.stairCandidates(g.rooms[i]); len(c) > 0 {
			g.stairsDown = c[g.rng.Intn(len(c))]
			g.downRoom = i
			g.a.SetTile(g.stairsDown.X, g.stairsDown.Y, enums.TerrainStairsDown)
			break
		}
	}
	if g.downRoom < 0 {
		return fmt.Errorf("%w: down", errNoStairs)
	}

	// Клетка лестницы вниз уже не пол, так что совпасть они не могут
	for i := len(g.rooms) - 1; i >= 0; i-- {
		if c := g.stairCandidates(g.rooms[i]); len(c) > 0 {
			g.stairsUp = c[g.rng.Intn(len(c))]
			g.upRoom = i
			g.a.SetTile(g.stairsUp.X, g.stairsUp.Y, enums.TerrainStairsUp)
			break
		}
	}
	if g.upRoom < 0 {
		return fmt.Errorf("%w: up", errNoStairs)
	}
	return nil
}

// checkStairsConnected - с лестницы вниз можно дойти до лестницы вверх.
func (g *Generator) checkStairsConnected() error {
	walkable := func(p gruid.Point) bool { return g.a.CanWalk(p.X, p.Y) }
	reached := flood(g.stairsDown.Point(), walkable)

	if !reached.Has(g.stairsUp.Point()) {
		return fmt.Errorf("%w: %v -> %v", errStairsDisconnected, g.stairsDown, g.stairsUp)
	}
	return nil
}
