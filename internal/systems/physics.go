package systems

import (
	"dungeon-core/internal/area"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя точками.
// Стартовая и конечная клетки не проверяются: стену можно видеть, стоя рядом.
func HasLineOfSight(a *area.Area, p1, p2 domain.Position) bool {
	visible := a.FOVDistance(p1.X, p1.Y, p2.X, p2.Y) != area.NoLineOfSight

	logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"start_pos": p1,
		"end_pos":   p2,
		"visible":   visible,
	}).Debug("Line of sight check")

	return visible
}
