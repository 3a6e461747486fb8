package engine

import (
	"dungeon-core/internal/area"
	"dungeon-core/internal/domain"
	"dungeon-core/internal/systems"
	"dungeon-core/pkg/dungeon"
	"github.com/sirupsen/logrus"
)

// Level - один этаж: карта, кто на ней стоит и чей сейчас ход.
type Level struct {
	Depth  int
	Area   *area.Area
	Layout *dungeon.Result

	player *domain.Entity
	tick   int
	turns  *TurnQueue
	cfg    Config
	log    *logrus.Entry
}

func newLevel(depth int, layout *dungeon.Result, cfg Config, log *logrus.Entry) *Level {
	l := &Level{
		Depth:  depth,
		Area:   layout.Area,
		Layout: layout,
		turns:  NewTurnQueue(),
		cfg:    cfg,
		log:    log.WithField("depth", depth),
	}
	for _, e := range layout.Spawned {
		if e.AI != nil {
			l.turns.Schedule(e, 0)
		}
	}
	return l
}

// Tick - текущее время этажа.
func (l *Level) Tick() int { return l.tick }

func (l *Level) Player() *domain.Entity { return l.player }

// EnterPlayer ставит игрока на клетку и открывает ему обзор.
func (l *Level) EnterPlayer(p *domain.Entity, at domain.Position) {
	p.Pos = at
	p.Depth = l.Depth
	l.player = p
	l.Area.AddEntity(p)
	l.Area.SetViewer(p.Pos, l.cfg.VisionRadius)
	l.log.WithFields(logrus.Fields{"player": p.Name, "pos": at}).Info("Player entered level")
}

// LeavePlayer убирает игрока с этажа. Монстры без него стоят.
func (l *Level) LeavePlayer() {
	if l.player == nil {
		return
	}
	l.Area.RemoveEntity(l.player)
	l.player = nil
}

// MovePlayer - ход игрока на (dx, dy). Враг на пути атакуется,
// закрытая дверь открывается. После хода игрока ходят монстры.
func (l *Level) MovePlayer(dx, dy int) []string {
	p := l.player
	if p == nil || !p.IsAlive() {
		return nil
	}

	res := systems.CalculateMove(p, dx, dy, l.Area)
	var msgs []string
	var cost int

	switch {
	case res.IsWall:
		// Упереться в стену - не ход
		return []string{"Путь прегражден."}
	case res.BlockedBy != nil:
		target, ok := res.BlockedBy.(*domain.Entity)
		if !ok || target.AI == nil || !target.AI.IsHostile {
			return []string{"Кто-то стоит на пути."}
		}
		msgs = append(msgs, systems.ApplyAttack(p, target, l.Area))
		cost = domain.TimeCostAttack
	default:
		if res.OpensDoor {
			l.Area.OpenDoor(res.NewX, res.NewY)
			msgs = append(msgs, "Дверь открывается.")
		}
		p.Pos = domain.Position{X: res.NewX, Y: res.NewY}
		l.Area.SetViewer(p.Pos, l.cfg.VisionRadius)
		cost = domain.TimeCostMove
	}

	l.tick += cost
	return append(msgs, l.MonsterTurn()...)
}

// Wait - игрок пропускает ход.
func (l *Level) Wait() []string {
	l.tick += domain.TimeCostWait
	return l.MonsterTurn()
}

// MonsterTurn отыгрывает все ходы, чье время уже наступило.
func (l *Level) MonsterTurn() []string {
	var msgs []string
	for {
		next, ok := l.turns.PeekTick()
		if !ok || next > l.tick {
			return msgs
		}
		npc, tick, _ := l.turns.Next()
		if !npc.IsAlive() {
			continue
		}

		cost, msg := l.act(npc)
		if msg != "" {
			msgs = append(msgs, msg)
		}
		l.turns.Schedule(npc, tick+cost)

		// Игрок погиб - дальше ходить незачем
		if l.player != nil && !l.player.IsAlive() {
			return msgs
		}
	}
}

// act выполняет одно действие монстра и возвращает его цену.
func (l *Level) act(npc *domain.Entity) (int, string) {
	action, target, dx, dy := systems.ComputeMonsterAction(npc, l.player, l.Area, l.cfg.Path)

	switch action {
	case domain.ActionAttack:
		return domain.TimeCostAttack, systems.ApplyAttack(npc, target, l.Area)
	case domain.ActionMove:
		res := systems.CalculateMove(npc, dx, dy, l.Area)
		if !res.HasMoved {
			return domain.TimeCostWait, ""
		}
		if res.OpensDoor {
			l.Area.OpenDoor(res.NewX, res.NewY)
		}
		npc.Pos = domain.Position{X: res.NewX, Y: res.NewY}
		return domain.TimeCostMove, ""
	default:
		return domain.TimeCostWait, ""
	}
}

// OnStairs сообщает, стоит ли игрок на лестнице, и куда она ведет (+1 вниз, -1 вверх).
func (l *Level) OnStairs() (int, bool) {
	if l.player == nil {
		return 0, false
	}
	t := l.Area.Tile(l.player.Pos.X, l.player.Pos.Y)
	switch {
	case t.Has(domain.TagStairsDown):
		return 1, true
	case t.Has(domain.TagStairsUp):
		return -1, true
	}
	return 0, false
}
