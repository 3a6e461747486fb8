package engine

import (
	"dungeon-core/internal/domain"
	"github.com/zyedidia/generic/heap"
)

// turnItem - запись в очереди ходов
type turnItem struct {
	actor *domain.Entity
	tick  int    // когда ходит. Чем меньше, тем раньше ход.
	seq   uint64 // порядок постановки, разрешает равные тики
}

// TurnQueue - очередь ходов по времени (min-heap по тику).
type TurnQueue struct {
	h   *heap.Heap[turnItem]
	seq uint64
}

func NewTurnQueue() *TurnQueue {
	return &TurnQueue{
		h: heap.New[turnItem](func(a, b turnItem) bool {
			if a.tick != b.tick {
				return a.tick < b.tick
			}
			return a.seq < b.seq
		}),
	}
}

// Schedule ставит сущность в очередь на указанный тик.
func (q *TurnQueue) Schedule(e *domain.Entity, tick int) {
	q.seq++
	q.h.Push(turnItem{actor: e, tick: tick, seq: q.seq})
}

// Next снимает ближайший ход.
func (q *TurnQueue) Next() (*domain.Entity, int, bool) {
	it, ok := q.h.Pop()
	if !ok {
		return nil, 0, false
	}
	return it.actor, it.tick, true
}

// PeekTick - тик ближайшего хода, не снимая его.
func (q *TurnQueue) PeekTick() (int, bool) {
	it, ok := q.h.Peek()
	return it.tick, ok
}

func (q *TurnQueue) Len() int {
	return q.h.Size()
}
