package engine

import (
	"errors"
	"fmt"

	"dungeon-core/internal/domain"
	"dungeon-core/pkg/dungeon"
	"dungeon-core/pkg/logger"
	"dungeon-core/pkg/utils"
	"github.com/sirupsen/logrus"
)

var ErrBadDepth = errors.New("depth must not be negative")

// World - все этажи одной игры. Этаж строится при первом обращении
// и дальше живет в кэше.
type World struct {
	cfg    Config
	levels map[int]*Level
	log    *logrus.Entry
}

func NewWorld(cfg Config) *World {
	return &World{
		cfg:    cfg,
		levels: make(map[int]*Level),
		log:    logger.Component("world").WithField("seed", cfg.Seed),
	}
}

func (w *World) Config() Config { return w.cfg }

// Level возвращает этаж depth. 0 - поверхность.
func (w *World) Level(depth int) (*Level, error) {
	if depth < 0 {
		return nil, fmt.Errorf("level %d: %w", depth, ErrBadDepth)
	}
	if l, ok := w.levels[depth]; ok {
		return l, nil
	}

	var layout *dungeon.Result
	if depth == 0 {
		layout = dungeon.GenerateSurface(w.cfg.Width, w.cfg.Height)
	} else {
		rng := utils.NewRand(w.cfg.Seed + int64(depth))
		var err error
		layout, err = dungeon.NewLevel(depth, rng).
			WithConfig(w.cfg.levelConfig()).
			SpawnMonsters(w.cfg.MonstersPerLevel).
			Build()
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", depth, err)
		}
	}

	l := newLevel(depth, layout, w.cfg, w.log)
	w.levels[depth] = l
	w.log.WithFields(logrus.Fields{
		"depth":    depth,
		"rooms":    len(layout.Rooms),
		"floor":    layout.FloorPercent,
		"spawned":  len(layout.Spawned),
		"attempts": layout.Attempts,
	}).Info("Level generated")
	return l, nil
}

// Travel переводит игрока по лестнице на соседний этаж.
// Спускаясь, игрок встает на лестницу вверх, поднимаясь - на лестницу вниз.
func (w *World) Travel(p *domain.Entity, from *Level) (*Level, error) {
	dir, ok := from.OnStairs()
	if !ok {
		return from, nil
	}

	to, err := w.Level(from.Depth + dir)
	if err != nil {
		return from, err
	}

	at := to.Layout.StairsUp
	if dir < 0 {
		at = to.Layout.StairsDown
	}
	from.LeavePlayer()
	to.EnterPlayer(p, at)
	return to, nil
}
