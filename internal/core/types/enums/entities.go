package enums

import "strings"

// EntityType - кто стоит на клетке. Поиск пути решает по типу,
// блокирует ли сущность клетку полностью, частично или не блокирует вовсе.
type EntityType uint8

const (
	EntityTypeUnknown EntityType = iota
	EntityTypePlayer
	EntityTypeAlly
	EntityTypeMonster
	EntityTypeItem
	EntityTypeObject
)

var entityTypeToString = map[EntityType]string{
	EntityTypePlayer:  "PLAYER",
	EntityTypeAlly:    "ALLY",
	EntityTypeMonster: "MONSTER",
	EntityTypeItem:    "ITEM",
	EntityTypeObject:  "OBJECT",
}

var entityTypeStringToType = map[string]EntityType{
	"PLAYER":  EntityTypePlayer,
	"ALLY":    EntityTypeAlly,
	"MONSTER": EntityTypeMonster,
	"ITEM":    EntityTypeItem,
	"OBJECT":  EntityTypeObject,
}

// String возвращает строковое представление (для логов и дебага)
func (e EntityType) String() string {
	if val, ok := entityTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityType конвертирует строку в Enum (шаблоны, флаги CLI)
func ParseEntityType(s string) EntityType {
	upper := strings.ToUpper(s)
	if val, ok := entityTypeStringToType[upper]; ok {
		return val
	}
	return EntityTypeUnknown
}
