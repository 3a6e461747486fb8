package systems

import (
	"dungeon-core/internal/area"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ComputeMonsterAction решает, что делать монстру.
// Возвращает (команда, цель_атаки_если_есть, dx, dy)
func ComputeMonsterAction(npc, player *domain.Entity, a *area.Area, cfg PathConfig) (action domain.ActionType, target *domain.Entity, dx, dy int) {
	aiLog := logger.Log.WithFields(logrus.Fields{
		"component": "ai",
		"npc":       npc.Name,
		"npc_pos":   npc.Pos,
	})

	if npc.AI == nil || !npc.IsAlive() || !npc.AI.IsHostile {
		aiLog.Debug("Invalid state (dead, not hostile, etc). Action: WAIT")
		return domain.ActionWait, nil, 0, 0
	}
	if player == nil || !player.IsAlive() {
		return domain.ActionWait, nil, 0, 0
	}

	// Видимость и дальность одним вызовом
	dist := a.FOVDistance(npc.Pos.X, npc.Pos.Y, player.Pos.X, player.Pos.Y)
	if dist == area.NoLineOfSight {
		aiLog.Debug("Target not visible. Action: WAIT")
		return domain.ActionWait, nil, 0, 0
	}
	if dist > domain.AggroRadius {
		aiLog.WithField("distance", dist).Debug("Target out of aggro range. Action: WAIT")
		return domain.ActionWait, nil, 0, 0
	}

	if npc.Pos.IsAdjacent(player.Pos) {
		aiLog.Debug("Target in attack range. Action: ATTACK")
		return domain.ActionAttack, player, 0, 0
	}

	path := NewPathfinder(a, a.Entities(), ModeMonster, npc.Pos, player.Pos, cfg).Pathfind()
	if len(path) == 0 {
		// Пустой путь - не ошибка, просто стоим
		aiLog.Debug("No path to target. Action: WAIT")
		return domain.ActionWait, nil, 0, 0
	}

	step := path[0]
	dx, dy = step.X-npc.Pos.X, step.Y-npc.Pos.Y

	// Путь мог пройти сквозь союзника (со штрафом) - протиснуться всё равно нельзя
	if res := CalculateMove(npc, dx, dy, a); !res.HasMoved {
		aiLog.WithField("step", step).Debug("First step is occupied. Action: WAIT")
		return domain.ActionWait, nil, 0, 0
	}

	aiLog.WithFields(logrus.Fields{"dx": dx, "dy": dy, "path_len": len(path)}).Debug("Action: MOVE")
	return domain.ActionMove, nil, dx, dy
}
