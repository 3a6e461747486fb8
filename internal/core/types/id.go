package types

import (
	"fmt"

	"dungeon-core/internal/core/types/enums"
)

// EntityID - 64-битный идентификатор сущности на уровне.
//
// Формат битов (от старших к младшим):
//
//	[ reserved (8) | Type (8) | Generation (16) | Index (32) ]
//
// Тип зашит в сам идентификатор: поиск пути спрашивает у препятствия
// "кто ты" и получает ответ без обращения к реестру.
type EntityID uint64

// NilEntityID - отсутствие сущности.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 16
	bitsType  = 8

	shiftGen  = bitsIndex
	shiftType = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskType  = (1 << bitsType) - 1
)

// PackEntityID собирает EntityID. Диапазоны не проверяются.
func PackEntityID(typ enums.EntityType, gen uint16, index uint32) EntityID {
	return EntityID(
		(uint64(typ) << shiftType) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает порядковый номер сущности.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение (сколько раз слот переиспользовался).
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Type возвращает тип сущности.
func (id EntityID) Type() enums.EntityType {
	return enums.EntityType((id >> shiftType) & maskType)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String - для логов: "[MONSTER gen=0 idx=3]".
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s gen=%d idx=%d]", id.Type(), id.Generation(), id.Index())
}
