package dungeon

import (
	"errors"
	"fmt"
)

// Размеры карты по умолчанию
const (
	MapWidth  = 60
	MapHeight = 30
)

// Config - настройки генератора. Генератор их только читает.
type Config struct {
	Width  int
	Height int

	// Размер "коробки" комнаты до обрезки
	MinRoomSize int
	MaxRoomSize int

	MinRoomFloor   int // минимум клеток пола в комнате
	MaxShapeTries  int // попыток выкопать форму одной комнаты
	MaxFailedRooms int // подряд неудачных комнат до конца фазы размещения

	// Допустимая доля пола, в процентах
	MinFloorPercent int
	MaxFloorPercent int

	// Фаза размещения не кладет комнату, если пол превысит эту долю.
	// Запас до MaxFloorPercent нужен дверям, которые чистка превратит в пол.
	TargetFloorPercent int

	DoorSpacing        int // две двери ближе этого (по Чебышеву) не стоят
	CornerSmoothChance int // шанс (%) сгладить угол; 0 - не сглаживать
	TombChance         int // шанс (%) выкопать гробницу на стороне комнаты

	MaxRestarts int // полных перезапусков до ErrGenerationFailed
}

func DefaultConfig() Config {
	return Config{
		Width:              MapWidth,
		Height:             MapHeight,
		MinRoomSize:        6,
		MaxRoomSize:        12,
		MinRoomFloor:       12,
		MaxShapeTries:      20,
		MaxFailedRooms:     50,
		MinFloorPercent:    20,
		MaxFloorPercent:    50,
		TargetFloorPercent: 44,
		DoorSpacing:        2,
		CornerSmoothChance: 50,
		TombChance:         25,
		MaxRestarts:        100,
	}
}

var errBadConfig = errors.New("invalid generator config")

// Validate отсекает настройки, при которых генерация заведомо бессмысленна.
func (c Config) Validate() error {
	switch {
	case c.MinRoomSize < 5:
		return fmt.Errorf("%w: MinRoomSize %d < 5", errBadConfig, c.MinRoomSize)
	case c.MaxRoomSize < c.MinRoomSize:
		return fmt.Errorf("%w: MaxRoomSize %d < MinRoomSize %d", errBadConfig, c.MaxRoomSize, c.MinRoomSize)
	case c.Width < c.MaxRoomSize+2 || c.Height < c.MaxRoomSize+2:
		return fmt.Errorf("%w: map %dx%d is too small for rooms up to %d", errBadConfig, c.Width, c.Height, c.MaxRoomSize)
	case c.MinFloorPercent < 0 || c.MaxFloorPercent > 100 || c.MinFloorPercent > c.MaxFloorPercent:
		return fmt.Errorf("%w: floor band [%d,%d]", errBadConfig, c.MinFloorPercent, c.MaxFloorPercent)
	case c.TargetFloorPercent < c.MinFloorPercent || c.TargetFloorPercent > c.MaxFloorPercent:
		return fmt.Errorf("%w: target floor %d%% outside [%d,%d]", errBadConfig, c.TargetFloorPercent, c.MinFloorPercent, c.MaxFloorPercent)
	case c.MaxShapeTries <= 0 || c.MaxFailedRooms <= 0 || c.MaxRestarts <= 0:
		return fmt.Errorf("%w: retry budgets must be positive", errBadConfig)
	}
	return nil
}
