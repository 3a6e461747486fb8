package engine

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"dungeon-core/internal/domain"
	"dungeon-core/internal/systems"
	"dungeon-core/pkg/dungeon"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни:
	// зерно уровня N = Seed + N.
	Seed int64

	Width, Height    int
	VisionRadius     int
	MonstersPerLevel int

	Dungeon dungeon.Config
	Path    systems.PathConfig
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:             time.Now().UnixNano(),
		Width:            dungeon.MapWidth,
		Height:           dungeon.MapHeight,
		VisionRadius:     domain.VisionRadius,
		MonstersPerLevel: 6,
		Dungeon:          dungeon.DefaultConfig(),
		Path:             systems.DefaultPathConfig(),
	}
}

// ApplyEnv перекрывает поля значениями из окружения:
// DUNGEON_SEED (0 - случайный) и DUNGEON_EUCLIDEAN.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv("DUNGEON_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DUNGEON_SEED: %w", err)
		}
		if seed != 0 {
			c.Seed = seed
		}
	}
	if v, ok := os.LookupEnv("DUNGEON_EUCLIDEAN"); ok {
		euclid, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DUNGEON_EUCLIDEAN: %w", err)
		}
		c.Path.Euclidean = euclid
	}
	return nil
}

// levelConfig - настройки генератора с размером карты из конфига движка.
func (c Config) levelConfig() dungeon.Config {
	dcfg := c.Dungeon
	dcfg.Width, dcfg.Height = c.Width, c.Height
	return dcfg
}
