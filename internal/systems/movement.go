package systems

import (
	"dungeon-core/internal/area"
	"dungeon-core/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewX, NewY int
	HasMoved   bool
	BlockedBy  domain.Occupant // Если врезались в кого-то (для атаки)
	IsWall     bool            // Если врезались в стену или край карты
	OpensDoor  bool            // Шаг придется в закрытую дверь
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(e *domain.Entity, dx, dy int, a *area.Area) MovementResult {
	targetPos := e.Pos.Shift(dx, dy)
	res := MovementResult{NewX: targetPos.X, NewY: targetPos.Y}

	// 1. Границы и местность
	if !a.CanWalk(targetPos.X, targetPos.Y) {
		res.IsWall = true
		return res
	}

	// 2. Сущности. Предметы и трупы (без живого тела) проходимы - это решает Blocks.
	for _, other := range a.EntitiesAt(targetPos.X, targetPos.Y) {
		if other.ID() == e.ID() {
			continue
		}
		res.BlockedBy = other
		return res
	}

	res.OpensDoor = a.Tile(targetPos.X, targetPos.Y).Has(domain.TagOpenable)
	res.HasMoved = true
	return res
}
