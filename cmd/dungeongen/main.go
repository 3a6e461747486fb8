package main

import (
	"bufio"
	"flag"
	"os"

	"dungeon-core/internal/domain"
	"dungeon-core/internal/engine"
	"dungeon-core/internal/infrastructure/storage"
	"dungeon-core/internal/systems"
	"dungeon-core/internal/version"
	"dungeon-core/pkg/dungeon"
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	cfg := engine.NewConfig()
	if err := cfg.ApplyEnv(); err != nil {
		logger.Log.Fatal("Bad environment: ", err)
	}

	var (
		seed     int64
		depth    int
		showPath bool
		outDir   string
	)
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.IntVar(&depth, "depth", 1, "Level to generate (0 is the surface)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Map width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Map height")
	flag.IntVar(&cfg.MonstersPerLevel, "monsters", cfg.MonstersPerLevel, "Monsters per level")
	flag.BoolVar(&cfg.Path.Euclidean, "euclidean", cfg.Path.Euclidean, "Euclidean pathfinding heuristic")
	flag.BoolVar(&showPath, "path", false, "Mark the path between the stairs")
	flag.StringVar(&outDir, "out", "", "Directory to save the level snapshot to")
	flag.Parse()

	logger.Log.Info(version.String())
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("Using master seed: %d", cfg.Seed)
	}

	world := engine.NewWorld(cfg)
	level, err := world.Level(depth)
	if err != nil {
		logger.Log.Fatal("Generation failed: ", err)
	}

	player := dungeon.CreatePlayer(1)
	level.EnterPlayer(player, level.Layout.Start)

	var path []domain.Position
	if showPath && depth > 0 {
		l := level.Layout
		path = systems.NewPathfinder(level.Area, level.Area.Entities(), systems.ModePlayer,
			l.StairsUp, l.StairsDown, cfg.Path).Pathfind()
		if len(path) == 0 {
			logger.Log.Warn("No path between the stairs")
		}
	}

	if outDir != "" {
		if err := save(outDir, cfg.Seed, level); err != nil {
			logger.Log.Fatal("Save failed: ", err)
		}
	}

	w := bufio.NewWriter(os.Stdout)
	render(w, level, path)
	if err := w.Flush(); err != nil {
		logger.Log.Fatal(err)
	}

	logger.Log.WithFields(logrus.Fields{
		"depth":       depth,
		"rooms":       len(level.Layout.Rooms),
		"floor":       level.Layout.FloorPercent,
		"walkable":    level.Layout.WalkablePercent,
		"monsters":    len(level.Layout.Spawned),
		"attempts":    level.Layout.Attempts,
		"stairs_up":   level.Layout.StairsUp,
		"stairs_down": level.Layout.StairsDown,
		"path_len":    len(path),
	}).Info("Done.")
}

func save(dir string, seed int64, l *engine.Level) error {
	store, err := storage.NewLevelStore(dir)
	if err != nil {
		return err
	}
	_, err = store.Save(&storage.Snapshot{
		Seed:       seed,
		Depth:      l.Depth,
		Area:       l.Area,
		StairsUp:   l.Layout.StairsUp,
		StairsDown: l.Layout.StairsDown,
	})
	return err
}
