package area

import (
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

// --- Сущности ---
// Список на поле - авторитетный ответ на вопрос "кто стоит на этом этаже".

func (a *Area) AddEntity(e domain.Occupant) {
	a.entities = append(a.entities, e)
}

// RemoveEntity убирает сущность по ID. Порядок остальных сохраняется.
func (a *Area) RemoveEntity(e domain.Occupant) {
	for i, cur := range a.entities {
		if cur.ID() == e.ID() {
			a.entities = append(a.entities[:i], a.entities[i+1:]...)
			return
		}
	}
}

func (a *Area) Entities() []domain.Occupant {
	return a.entities
}

// EntitiesAt возвращает сущности, которые блокируют клетку.
func (a *Area) EntitiesAt(x, y int) []domain.Occupant {
	var res []domain.Occupant
	for _, e := range a.entities {
		if e.Blocks(x, y) {
			res = append(res, e)
		}
	}
	return res
}

// --- Изменения местности во время игры ---

// OpenDoor открывает закрытую дверь. Возвращает false, если открывать нечего.
func (a *Area) OpenDoor(x, y int) bool {
	t := a.Tile(x, y)
	if !t.Has(domain.TagOpenable) {
		return false
	}
	a.replaceKeepingMarks(x, y, enums.TerrainWoodDoorOpen)
	a.NeedFOVRecalc()

	logger.Log.WithFields(logrus.Fields{
		"component": "area",
		"x":         x,
		"y":         y,
	}).Debug("Door opened")
	return true
}

// CloseDoor закрывает открытую дверь, если на пороге никто не стоит.
func (a *Area) CloseDoor(x, y int) bool {
	t := a.Tile(x, y)
	if !t.Has(domain.TagCloseable) {
		return false
	}
	if len(a.EntitiesAt(x, y)) > 0 {
		return false
	}
	a.replaceKeepingMarks(x, y, enums.TerrainWoodDoor)
	a.NeedFOVRecalc()
	return true
}

// Bloody пачкает клетку кровью. Обзор не меняется.
func (a *Area) Bloody(x, y int) {
	t := a.Tile(x, y)
	if t.Kind == enums.TerrainVoid {
		return
	}
	t.Tags.Set(domain.TagBloodied)
	t.Glyph = t.Glyph.WithColor(domain.ColorBlood)
}

// replaceKeepingMarks меняет вид клетки, сохраняя следы игры (кровь, "исследовано").
func (a *Area) replaceKeepingMarks(x, y int, kind enums.TerrainKind) {
	t := a.Tile(x, y)
	bloodied := t.Has(domain.TagBloodied)
	explored := t.Has(domain.TagExplored)

	domain.GenerateTile(t, kind)

	if bloodied {
		t.Tags.Set(domain.TagBloodied)
		t.Glyph = t.Glyph.WithColor(domain.ColorBlood)
	}
	if explored {
		t.Tags.Set(domain.TagExplored)
	}
}
