package enums

import "strings"

// TerrainKind - вид местности клетки. Вид полностью определяет набор тегов
// тайла в момент его создания (см. domain.GenerateTile).
type TerrainKind uint8

const (
	// Временные виды: существуют только во время генерации и обязаны
	// быть "запечены" в финальные до того, как уровень отдадут игре.
	TerrainVoid TerrainKind = iota
	TerrainRawFloor
	TerrainRawWall
	TerrainDoorCandidate
	TerrainTombMarker

	// Финальные виды
	TerrainStoneFloor
	TerrainStoneWall
	TerrainWoodDoor
	TerrainWoodDoorOpen
	TerrainStairsUp
	TerrainStairsDown
	TerrainTomb

	terrainKindCount
)

var terrainToString = map[TerrainKind]string{
	TerrainVoid:          "VOID",
	TerrainRawFloor:      "RAW_FLOOR",
	TerrainRawWall:       "RAW_WALL",
	TerrainDoorCandidate: "DOOR_CANDIDATE",
	TerrainTombMarker:    "TOMB_MARKER",
	TerrainStoneFloor:    "STONE_FLOOR",
	TerrainStoneWall:     "STONE_WALL",
	TerrainWoodDoor:      "WOOD_DOOR",
	TerrainWoodDoorOpen:  "WOOD_DOOR_OPEN",
	TerrainStairsUp:      "STAIRS_UP",
	TerrainStairsDown:    "STAIRS_DOWN",
	TerrainTomb:          "TOMB",
}

var terrainStringToKind = func() map[string]TerrainKind {
	m := make(map[string]TerrainKind, len(terrainToString))
	for k, v := range terrainToString {
		m[v] = k
	}
	return m
}()

// String возвращает строковое представление (для логов и дампов)
func (t TerrainKind) String() string {
	if val, ok := terrainToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseTerrainKind конвертирует строку в вид местности.
func ParseTerrainKind(s string) (TerrainKind, bool) {
	val, ok := terrainStringToKind[strings.ToUpper(s)]
	return val, ok
}

// Виды, которые существуют только во время генерации.
var provisionalTerrain = map[TerrainKind]bool{
	TerrainVoid:          true,
	TerrainRawFloor:      true,
	TerrainRawWall:       true,
	TerrainDoorCandidate: true,
	TerrainTombMarker:    true,
}

// Виды, которые считаются полом в доле пола уровня. Лестница - тоже пол.
var floorTerrain = map[TerrainKind]bool{
	TerrainRawFloor:   true,
	TerrainStoneFloor: true,
	TerrainStairsUp:   true,
	TerrainStairsDown: true,
}

// IsProvisional сообщает, что вид существует только во время генерации.
func (t TerrainKind) IsProvisional() bool {
	return provisionalTerrain[t]
}

// IsFloor - клетка пола (сырого или финального), включая лестницы.
func (t TerrainKind) IsFloor() bool {
	return floorTerrain[t]
}

// AllTerrainKinds - все известные виды по порядку.
func AllTerrainKinds() []TerrainKind {
	kinds := make([]TerrainKind, 0, terrainKindCount)
	for k := TerrainKind(0); k < terrainKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
