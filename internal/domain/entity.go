package domain

import (
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/core/types/enums"
)

// Occupant - всё, что ядро спрашивает у сущности на карте:
// кто ты и занимаешь ли ты клетку.
type Occupant interface {
	ID() types.EntityID
	Type() enums.EntityType
	Blocks(x, y int) bool
}

// StatsComponent - тело сущности. Без него сущность (предмет, метка) проходима.
type StatsComponent struct {
	HP       int  `json:"hp"`
	MaxHP    int  `json:"maxHp"`
	Strength int  `json:"strength"`
	IsDead   bool `json:"isDead"`
}

// AIComponent - поведение.
type AIComponent struct {
	IsHostile   bool   `json:"isHostile"`
	Personality string `json:"personality,omitempty"`
}

type Entity struct {
	EntityID    types.EntityID `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Glyph       types.Glyph    `json:"glyph"`
	Pos         Position       `json:"pos"`
	Depth       int            `json:"depth"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Stats *StatsComponent `json:"stats,omitempty"`
	AI    *AIComponent    `json:"ai,omitempty"`
}

func (e *Entity) ID() types.EntityID {
	return e.EntityID
}

// Type берется прямо из идентификатора.
func (e *Entity) Type() enums.EntityType {
	return e.EntityID.Type()
}

// Blocks - блокирует, только если у сущности есть живое тело.
func (e *Entity) Blocks(x, y int) bool {
	if e.Pos.X != x || e.Pos.Y != y {
		return false
	}
	return e.Stats != nil && !e.Stats.IsDead
}

// IsAlive - есть тело и оно живо.
func (e *Entity) IsAlive() bool {
	return e.Stats != nil && !e.Stats.IsDead
}
