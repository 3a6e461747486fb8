package domain

import (
	"fmt"

	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

// InvariantViolation - нарушенный инвариант (выход за границы карты, nil-тайл).
// Сигнализирует об ошибке вызывающего кода; ядро её никогда не перехватывает.
type InvariantViolation struct {
	Op  string
	Msg string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in %s: %s", e.Op, e.Msg)
}

// Invariantf логирует нарушение и паникует с *InvariantViolation.
func Invariantf(op, format string, args ...any) {
	err := &InvariantViolation{Op: op, Msg: fmt.Sprintf(format, args...)}
	logger.Log.WithFields(logrus.Fields{
		"component": "invariant",
		"op":        op,
	}).Error(err.Msg)
	panic(err)
}
