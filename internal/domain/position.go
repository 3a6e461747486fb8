package domain

import (
	"math"

	"codeberg.org/anaseto/gruid"
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo возвращает евклидово расстояние до другой точки
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ)
func (p Position) IsAdjacent(other Position) bool {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Shift возвращает новую позицию со смещением, не меняя текущую.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Point конвертирует в gruid.Point (генератор считает соседей через gruid/paths).
func (p Position) Point() gruid.Point {
	return gruid.Point{X: p.X, Y: p.Y}
}

// FromPoint - обратное преобразование.
func FromPoint(pt gruid.Point) Position {
	return Position{X: pt.X, Y: pt.Y}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
