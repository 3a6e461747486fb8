package domain

import (
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/core/types/enums"
)

// terrainDef - значения тайла по умолчанию для вида местности.
type terrainDef struct {
	name  string
	glyph types.Glyph
	tags  TagSet
}

var terrainTable = map[enums.TerrainKind]terrainDef{
	// --- генерация ---
	enums.TerrainVoid: {
		name:  "пустота",
		glyph: types.MakeGlyph(0x000000, ' '),
		tags:  Tags(TagBlocksMovement, TagBlocksLight),
	},
	enums.TerrainRawFloor: {
		name:  "черновой пол",
		glyph: types.MakeGlyph(0x606060, '.'),
	},
	enums.TerrainRawWall: {
		name:  "черновая стена",
		glyph: types.MakeGlyph(0x606060, '#'),
		tags:  Tags(TagBlocksMovement, TagBlocksLight),
	},
	enums.TerrainDoorCandidate: {
		name:  "проём",
		glyph: types.MakeGlyph(0x8B5A2B, '+'),
	},
	enums.TerrainTombMarker: {
		name:  "ниша",
		glyph: types.MakeGlyph(0xC0C0A0, '&'),
	},

	// --- финальные ---
	enums.TerrainStoneFloor: {
		name:  "каменный пол",
		glyph: types.MakeGlyph(0x808080, '.'),
	},
	enums.TerrainStoneWall: {
		name:  "каменная стена",
		glyph: types.MakeGlyph(0xA0A0A0, '#'),
		tags:  Tags(TagBlocksMovement, TagBlocksLight),
	},
	enums.TerrainWoodDoor: {
		// Закрытая дверь не пускает свет, но проходима: шаг в неё открывает её.
		name:  "деревянная дверь",
		glyph: types.MakeGlyph(0x8B5A2B, '+'),
		tags:  Tags(TagBlocksLight, TagOpenable),
	},
	enums.TerrainWoodDoorOpen: {
		name:  "открытая дверь",
		glyph: types.MakeGlyph(0x8B5A2B, '\''),
		tags:  Tags(TagCloseable, TagOpen),
	},
	enums.TerrainStairsUp: {
		name:  "лестница вверх",
		glyph: types.MakeGlyph(0xFFFFFF, '<'),
		tags:  Tags(TagStairsUp, TagImmutable),
	},
	enums.TerrainStairsDown: {
		name:  "лестница вниз",
		glyph: types.MakeGlyph(0xFFFFFF, '>'),
		tags:  Tags(TagStairsDown, TagImmutable),
	},
	enums.TerrainTomb: {
		name:  "гробница",
		glyph: types.MakeGlyph(0xC0C0A0, '&'),
		tags:  Tags(TagImmutable),
	},
}

// GenerateTile сбрасывает тайл и заполняет его по виду местности.
// nil-тайл и неизвестный вид - ошибки программиста, а не рантайма.
func GenerateTile(t *Tile, kind enums.TerrainKind) {
	if t == nil {
		Invariantf("GenerateTile", "nil tile for kind %s", kind)
	}
	def, ok := terrainTable[kind]
	if !ok {
		Invariantf("GenerateTile", "no terrain definition for kind %d", uint8(kind))
	}

	t.Kind = kind
	t.Name = def.name
	t.Glyph = def.glyph
	t.Tags = def.tags
}

// NewTile - тайл заданного вида по значению.
func NewTile(kind enums.TerrainKind) Tile {
	var t Tile
	GenerateTile(&t, kind)
	return t
}
