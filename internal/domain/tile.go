package domain

import (
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/core/types/enums"
)

// TileTag - флаг свойства клетки. Словарь закрыт, поэтому теги хранятся
// битами в TagSet, а не в динамическом множестве.
type TileTag uint16

const (
	TagBlocksMovement TileTag = 1 << iota
	TagBlocksLight
	TagImmutable
	TagOpenable
	TagCloseable
	TagOpen
	TagStairsUp
	TagStairsDown
	TagBloodied
	TagExplored
)

var tagNames = []struct {
	tag  TileTag
	name string
}{
	{TagBlocksMovement, "BLOCKS_MOVEMENT"},
	{TagBlocksLight, "BLOCKS_LIGHT"},
	{TagImmutable, "IMMUTABLE"},
	{TagOpenable, "OPENABLE"},
	{TagCloseable, "CLOSEABLE"},
	{TagOpen, "OPEN"},
	{TagStairsUp, "STAIRS_UP"},
	{TagStairsDown, "STAIRS_DOWN"},
	{TagBloodied, "BLOODIED"},
	{TagExplored, "EXPLORED"},
}

func (t TileTag) String() string {
	for _, tn := range tagNames {
		if tn.tag == t {
			return tn.name
		}
	}
	return "UNKNOWN"
}

// TagSet - набор тегов, хранится по значению.
type TagSet uint16

// Tags собирает набор из перечисленных тегов.
func Tags(tags ...TileTag) TagSet {
	var s TagSet
	for _, t := range tags {
		s |= TagSet(t)
	}
	return s
}

func (s TagSet) Has(tag TileTag) bool {
	return s&TagSet(tag) != 0
}

func (s *TagSet) Set(tag TileTag) {
	*s |= TagSet(tag)
}

func (s *TagSet) Clear(tag TileTag) {
	*s &^= TagSet(tag)
}

// With возвращает копию набора с добавленным тегом.
func (s TagSet) With(tag TileTag) TagSet {
	return s | TagSet(tag)
}

// Tile - состояние одной клетки. Идентичности у тайла нет: при смене
// местности он перезаписывается на месте.
type Tile struct {
	Kind  enums.TerrainKind
	Glyph types.Glyph
	Name  string
	Tags  TagSet
}

func (t *Tile) Has(tag TileTag) bool {
	return t.Tags.Has(tag)
}

func (t *Tile) BlocksMovement() bool {
	return t.Tags.Has(TagBlocksMovement)
}

func (t *Tile) BlocksLight() bool {
	return t.Tags.Has(TagBlocksLight)
}
