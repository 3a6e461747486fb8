package systems

import (
	"math"

	"codeberg.org/anaseto/gruid/paths"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Mode определяет, какие сущности считаются "мягкими" препятствиями.
type Mode uint8

const (
	// ModePlayer - путь для игрока: союзники не мешают, все остальные блокируют.
	ModePlayer Mode = iota
	// ModeMonster - путь к игроку: игрок не мешает (он всё равно сдвинется),
	// союзник стоит штрафа, остальные блокируют.
	ModeMonster
)

func (m Mode) String() string {
	if m == ModeMonster {
		return "MONSTER"
	}
	return "PLAYER"
}

// PathConfig - настройки поиска пути. Ядро их только читает.
type PathConfig struct {
	Euclidean    bool    // эвристика: true - евклидова, false - манхэттенская
	StraightCost float64 // цена шага по горизонтали/вертикали
	DiagonalCost float64 // цена диагонального шага
	AllyPenalty  float64 // надбавка за клетку с союзником (ModeMonster)
	MaxTries     int     // лимит раскрытий узлов при поиске
	MaxBacktrack int     // лимит шагов при восстановлении пути
}

func DefaultPathConfig() PathConfig {
	return PathConfig{
		Euclidean:    false,
		StraightCost: 1.0,
		DiagonalCost: math.Sqrt2,
		AllyPenalty:  5.0,
		MaxTries:     2048,
		MaxBacktrack: 512,
	}
}

// Grid - то, что поиску пути нужно от карты.
type Grid interface {
	InBounds(x, y int) bool
	CanWalk(x, y int) bool
}

// Порядок обхода соседей фиксирован: С, СВ, В, ЮВ, Ю, ЮЗ, З, СЗ.
// От него зависит выбор при равных ценах, поэтому пути воспроизводимы.
var neighborDirs = [8]struct{ dx, dy int }{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// pathNode - узел поиска. g накапливается, h фиксирована при создании.
type pathNode struct {
	pos        domain.Position
	g          float64
	h          float64
	impassable bool
}

func (n *pathNode) f() float64 { return n.g + n.h }

// Pathfinder - одноразовый поиск пути. Родителей не хранит: путь
// восстанавливается по записанным ценам от цели к старту.
type Pathfinder struct {
	grid      Grid
	occupants []domain.Occupant
	mode      Mode
	start     domain.Position
	goal      domain.Position
	cfg       PathConfig

	checked map[domain.Position]*pathNode
	viable  []*pathNode

	log *logrus.Entry
}

func NewPathfinder(grid Grid, occupants []domain.Occupant, mode Mode, start, goal domain.Position, cfg PathConfig) *Pathfinder {
	return &Pathfinder{
		grid:      grid,
		occupants: occupants,
		mode:      mode,
		start:     start,
		goal:      goal,
		cfg:       cfg,
		checked:   make(map[domain.Position]*pathNode),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "pathfinder",
			"mode":      mode.String(),
			"start":     start,
			"goal":      goal,
		}),
	}
}

// Pathfind возвращает клетки от шага после старта до цели включительно.
// Пустой результат - нормальный исход: пути нет или лимит исчерпан.
func (pf *Pathfinder) Pathfind() []domain.Position {
	if pf.start == pf.goal {
		return nil
	}
	if !pf.grid.InBounds(pf.goal.X, pf.goal.Y) || !pf.grid.CanWalk(pf.goal.X, pf.goal.Y) {
		pf.log.Debug("Goal is not walkable")
		return nil
	}

	startNode := &pathNode{pos: pf.start, h: pf.heuristic(pf.start)}
	pf.checked[pf.start] = startNode
	pf.findCandidates(startNode)

	found := false
	tries := 0
	for ; tries < pf.cfg.MaxTries; tries++ {
		if len(pf.viable) == 0 {
			break
		}

		best := 0
		for i, n := range pf.viable {
			if n.pos == pf.goal {
				found = true
				break
			}
			if n.f() < pf.viable[best].f() {
				best = i
			}
		}
		if found {
			break
		}

		cur := pf.viable[best]
		pf.viable = append(pf.viable[:best], pf.viable[best+1:]...)
		pf.findCandidates(cur)
	}

	if !found {
		pf.log.WithFields(logrus.Fields{
			"tries":    tries,
			"frontier": len(pf.viable),
		}).Debug("Path not found")
		return nil
	}

	path := pf.backtrack()
	pf.log.WithFields(logrus.Fields{
		"tries":  tries,
		"length": len(path),
	}).Debug("Path found")
	return path
}

// findCandidates раскрывает узел: каждый новый сосед попадает в checked,
// проходимые - ещё и во фронт.
func (pf *Pathfinder) findCandidates(cur *pathNode) {
	for _, d := range neighborDirs {
		p := cur.pos.Shift(d.dx, d.dy)
		if !pf.grid.InBounds(p.X, p.Y) {
			continue
		}
		if _, seen := pf.checked[p]; seen {
			continue
		}

		step := pf.cfg.StraightCost
		if d.dx != 0 && d.dy != 0 {
			step = pf.cfg.DiagonalCost
		}
		n := &pathNode{pos: p, g: cur.g + step, h: pf.heuristic(p)}
		pf.checked[p] = n

		if !pf.grid.CanWalk(p.X, p.Y) {
			n.impassable = true
			continue
		}

		penalty, blocked := pf.occupancyCost(p)
		if blocked {
			n.impassable = true
			continue
		}
		n.g += penalty
		pf.viable = append(pf.viable, n)
	}
}

// occupancyCost решает, что делать с сущностью на клетке.
func (pf *Pathfinder) occupancyCost(p domain.Position) (penalty float64, blocked bool) {
	for _, o := range pf.occupants {
		if !o.Blocks(p.X, p.Y) {
			continue
		}

		switch typ := o.Type(); {
		case pf.mode == ModeMonster && typ == enums.EntityTypePlayer:
			// Игрок к нашему ходу уже уйдет
		case pf.mode == ModeMonster && typ == enums.EntityTypeAlly:
			penalty += pf.cfg.AllyPenalty
		case pf.mode == ModePlayer && typ == enums.EntityTypeAlly:
			// Союзник уступит дорогу
		default:
			return 0, true
		}
	}
	return penalty, false
}

// backtrack идет от цели к старту, каждый раз выбирая среди соседей
// узел с наименьшей записанной ценой, строго меньшей текущей.
// При равных ценах побеждает первый в порядке обхода.
func (pf *Pathfinder) backtrack() []domain.Position {
	cur := pf.checked[pf.goal]
	path := []domain.Position{cur.pos}

	for i := 0; i < pf.cfg.MaxBacktrack; i++ {
		var best *pathNode
		bestScore := cur.g

		for _, d := range neighborDirs {
			n, ok := pf.checked[cur.pos.Shift(d.dx, d.dy)]
			if !ok || n.impassable {
				continue
			}
			if n.g < bestScore {
				best = n
				bestScore = n.g
			}
		}

		if best == nil {
			pf.log.WithField("at", cur.pos).Debug("Backtrack dead end")
			return nil
		}
		if best.pos == pf.start {
			return path
		}

		path = append([]domain.Position{best.pos}, path...)
		cur = best
	}

	pf.log.Debug("Backtrack limit reached")
	return nil
}

func (pf *Pathfinder) heuristic(p domain.Position) float64 {
	if pf.cfg.Euclidean {
		return p.DistanceTo(pf.goal)
	}
	return float64(paths.DistanceManhattan(p.Point(), pf.goal.Point()))
}
