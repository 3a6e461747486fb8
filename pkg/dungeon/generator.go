package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"dungeon-core/internal/area"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ErrGenerationFailed - генератор исчерпал лимит перезапусков.
var ErrGenerationFailed = errors.New("dungeon generation failed")

// Причины перезапуска. Наружу уходят только обернутыми в ErrGenerationFailed.
var (
	errFirstRoomPaste     = errors.New("first room does not fit the map")
	errFloorBand          = errors.New("floor share out of band")
	errNoStairs           = errors.New("no cell fits a staircase")
	errStairsDisconnected = errors.New("stairs are not connected")
	errUnbakeable         = errors.New("provisional terrain left after baking")
)

// Result - готовый уровень.
type Result struct {
	Area *area.Area

	// Прямоугольники размещенных комнат в порядке размещения
	Rooms     []Rect
	FirstRoom int
	UpRoom    int
	DownRoom  int

	StairsUp   domain.Position
	StairsDown domain.Position
	// Start - где появляется пришедший сверху: клетка лестницы вверх
	Start domain.Position

	Spawned []*domain.Entity

	Attempts        int
	FloorPercent    int
	WalkablePercent int
}

// Generator строит один уровень. Генератор не потокобезопасен:
// на каждый уровень - свой экземпляр со своим rng.
type Generator struct {
	cfg   Config
	rng   *rand.Rand
	depth int
	ids   *idAllocator
	log   *logrus.Entry

	// Состояние текущей попытки
	a          *area.Area
	rooms      []Rect
	floor      int // клеток пола, уложенных комнатами
	upRoom     int
	downRoom   int
	stairsUp   domain.Position
	stairsDown domain.Position
	spawned    []*domain.Entity
}

func NewGenerator(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rng,
		ids: &idAllocator{},
		log: logger.Component("generator"),
	}
}

// WithDepth задает глубину: она попадает в сущности, которые рождает генератор.
func (g *Generator) WithDepth(depth int) *Generator {
	g.depth = depth
	g.log = g.log.WithField("depth", depth)
	return g
}

// Generate крутит попытки, пока одна не пройдет все проверки.
func (g *Generator) Generate() (*Result, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxRestarts; attempt++ {
		g.voidMap()

		if err := g.attempt(); err != nil {
			lastErr = err
			g.log.WithFields(logrus.Fields{
				"attempt": attempt,
				"reason":  err,
			}).Debug("Generation restarted")
			continue
		}

		res := g.result(attempt)
		g.log.WithFields(logrus.Fields{
			"attempts": attempt,
			"rooms":    len(res.Rooms),
			"floor":    res.FloorPercent,
			"spawned":  len(res.Spawned),
		}).Info("Level generated")
		return res, nil
	}

	g.log.WithError(lastErr).Warn("Generation gave up")
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrGenerationFailed, g.cfg.MaxRestarts, lastErr)
}

// attempt - одна полная попытка, фазы по порядку.
func (g *Generator) attempt() error {
	if err := g.placeRooms(); err != nil {
		return err
	}

	g.fillVoid()
	if err := g.checkFloorBand(); err != nil {
		return err
	}

	g.cleanupDoors()
	g.smoothCorners()
	g.eliminateDiagonals()

	if err := g.placeStairs(); err != nil {
		return err
	}
	if err := g.checkStairsConnected(); err != nil {
		return err
	}

	g.digTombs()

	if err := g.bake(); err != nil {
		return err
	}
	return g.checkFloorBand()
}

// voidMap сбрасывает всё состояние попытки.
func (g *Generator) voidMap() {
	g.a = area.New(g.cfg.Width, g.cfg.Height)
	g.rooms = g.rooms[:0]
	g.floor = 0
	g.upRoom, g.downRoom = -1, -1
	g.stairsUp, g.stairsDown = domain.Position{}, domain.Position{}
	g.spawned = nil
}

// floorBudget - сколько клеток пола фаза размещения может уложить.
func (g *Generator) floorBudget() int {
	return g.cfg.TargetFloorPercent * g.cfg.Width * g.cfg.Height / 100
}

func (g *Generator) checkFloorBand() error {
	pct := g.a.FloorPercent()
	if pct < g.cfg.MinFloorPercent || pct > g.cfg.MaxFloorPercent {
		return fmt.Errorf("%w: %d%% not in [%d,%d]", errFloorBand, pct, g.cfg.MinFloorPercent, g.cfg.MaxFloorPercent)
	}
	return nil
}

func (g *Generator) result(attempt int) *Result {
	rooms := make([]Rect, len(g.rooms))
	copy(rooms, g.rooms)
	return &Result{
		Area:            g.a,
		Rooms:           rooms,
		FirstRoom:       0,
		UpRoom:          g.upRoom,
		DownRoom:        g.downRoom,
		StairsUp:        g.stairsUp,
		StairsDown:      g.stairsDown,
		Start:           g.stairsUp,
		Spawned:         g.spawned,
		Attempts:        attempt,
		FloorPercent:    g.a.FloorPercent(),
		WalkablePercent: g.a.WalkablePercent(),
	}
}

// --- Доступ к карте во время генерации ---

func (g *Generator) kindAt(x, y int) enums.TerrainKind {
	return g.a.Tile(x, y).Kind
}

// isKind - false за пределами карты.
func (g *Generator) isKind(x, y int, kind enums.TerrainKind) bool {
	return g.a.InBounds(x, y) && g.a.Tile(x, y).Kind == kind
}

func (g *Generator) onBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.cfg.Width-1 || y == g.cfg.Height-1
}

var orthDirs = [4]struct{ dx, dy int }{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// orthCount - сколько ортогональных соседей имеют вид kind.
func (g *Generator) orthCount(x, y int, kind enums.TerrainKind) int {
	n := 0
	for _, d := range orthDirs {
		if g.isKind(x+d.dx, y+d.dy, kind) {
			n++
		}
	}
	return n
}

// count8 - то же по всем восьми соседям.
func (g *Generator) count8(x, y int, kind enums.TerrainKind) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && g.isKind(x+dx, y+dy, kind) {
				n++
			}
		}
	}
	return n
}
