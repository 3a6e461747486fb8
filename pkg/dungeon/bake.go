package dungeon

import (
	"fmt"

	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
)

// bakeTable - во что превращается каждый временный вид.
// Void в таблице нет: пустота к этой фазе - ошибка генерации.
var bakeTable = map[enums.TerrainKind]enums.TerrainKind{
	enums.TerrainRawFloor:      enums.TerrainStoneFloor,
	enums.TerrainRawWall:       enums.TerrainStoneWall,
	enums.TerrainDoorCandidate: enums.TerrainWoodDoor,
	enums.TerrainTombMarker:    enums.TerrainTomb,
}

// bake - фаза 8: временные виды становятся финальными.
// В каждой гробнице просыпается страж.
func (g *Generator) bake() error {
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			kind := g.kindAt(x, y)
			if !kind.IsProvisional() {
				continue
			}
			final, ok := bakeTable[kind]
			if !ok {
				return fmt.Errorf("%w: %s at (%d,%d)", errUnbakeable, kind, x, y)
			}
			g.a.SetTile(x, y, final)

			if kind == enums.TerrainTombMarker {
				g.spawnGuardian(domain.Position{X: x, Y: y})
			}
		}
	}
	return nil
}

func (g *Generator) spawnGuardian(pos domain.Position) {
	tpl := TombGuardians[g.rng.Intn(len(TombGuardians))].Scaled(g.depth)
	guardian := tpl.SpawnEntity(g.ids.next(tpl.Type), pos, g.depth)

	g.a.AddEntity(guardian)
	g.spawned = append(g.spawned, guardian)
}
