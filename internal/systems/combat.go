package systems

import (
	"fmt"

	"dungeon-core/internal/area"
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ColorCorpse - цвет трупа на карте.
const ColorCorpse uint32 = 0x6B6B6B

// ApplyAttack бьет цель силой атакующего. Кровь остается на клетке цели.
// Возвращает строку для журнала.
func ApplyAttack(attacker, target *domain.Entity, a *area.Area) string {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.EntityID,
		"attacker_name": attacker.Name,
		"target_id":     target.EntityID,
		"target_name":   target.Name,
	})

	if target.Stats == nil {
		combatLogger.Warn("Attack failed: target has no StatsComponent.")
		return fmt.Sprintf("%s атакует %s, но это бесполезно.", attacker.Name, target.Name)
	}
	if target.Stats.IsDead {
		return fmt.Sprintf("%s пинает труп %s.", attacker.Name, target.Name)
	}

	damage := 1
	if attacker.Stats != nil && attacker.Stats.Strength > damage {
		damage = attacker.Stats.Strength
	}

	hpBefore := target.Stats.HP
	died := target.Stats.TakeDamage(damage)

	if a != nil && a.InBounds(target.Pos.X, target.Pos.Y) {
		a.Bloody(target.Pos.X, target.Pos.Y)
	}

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Stats.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	logMsg := fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, damage, target.Name)
	if died {
		target.Glyph = types.MakeGlyph(ColorCorpse, '%')
		if target.AI != nil {
			target.AI.IsHostile = false
		}
		logMsg += fmt.Sprintf(" %s погибает.", target.Name)
	}
	return logMsg
}
