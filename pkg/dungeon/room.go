package dungeon

import (
	"errors"
	"math/rand"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"dungeon-core/internal/area"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/pkg/utils"
	"github.com/zyedidia/generic/mapset"
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Intersects - есть хотя бы одна общая клетка.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// edge - сторона комнаты, задана направлением наружу.
type edge struct {
	dx, dy int
}

var (
	edgeNorth = edge{0, -1}
	edgeSouth = edge{0, 1}
	edgeWest  = edge{-1, 0}
	edgeEast  = edge{1, 0}

	roomEdges = [4]edge{edgeNorth, edgeSouth, edgeWest, edgeEast}
)

// along - единичный шаг вдоль стороны.
func (e edge) along() (int, int) {
	if e.dx == 0 {
		return 1, 0
	}
	return 0, 1
}

// Сколько раз перебрасывать пару прямоугольников, пока они не разойдутся.
const rectTries = 32

var errRoomShape = errors.New("room shape failed")

// room - комната на время генерации: собственная маленькая сетка.
// После обрезки actualW x actualH - размер содержимого без пустых краев.
type room struct {
	grid    *area.Area
	w, h    int
	actualW int
	actualH int
}

// newRoom бросает размер, копает форму (с повторами) и расставляет кандидатов в двери.
// Первая комната получает все четыре двери на каждой стороне.
func newRoom(rng *rand.Rand, cfg Config, first bool) (*room, error) {
	w := utils.RandRange(rng, cfg.MinRoomSize, cfg.MaxRoomSize)
	h := utils.RandRange(rng, cfg.MinRoomSize, cfg.MaxRoomSize)
	r := &room{grid: area.New(w, h), w: w, h: h}

	for try := 0; try < cfg.MaxShapeTries; try++ {
		if r.generateTypeA(rng, cfg.MinRoomFloor) {
			r.placeDoors(rng, first)
			r.crop()
			return r, nil
		}
	}
	return nil, errRoomShape
}

func (r *room) at(x, y int) enums.TerrainKind {
	return r.grid.Tile(x, y).Kind
}

func (r *room) isKind(x, y int, kind enums.TerrainKind) bool {
	return r.grid.InBounds(x, y) && r.grid.Tile(x, y).Kind == kind
}

// generateTypeA копает два пересекающихся прямоугольника и обносит их стеной.
// false - форма не годится (разрыв или мало пола), надо копать заново.
func (r *room) generateTypeA(rng *rand.Rand, minFloor int) bool {
	r.grid.Fill(enums.TerrainVoid)

	a, b, ok := r.rollRects(rng)
	if !ok {
		return false
	}
	for _, rect := range [2]Rect{a, b} {
		for y := rect.Y; y < rect.Y+rect.H; y++ {
			for x := rect.X; x < rect.X+rect.W; x++ {
				r.grid.SetTile(x, y, enums.TerrainRawFloor)
			}
		}
	}

	r.ringWalls()
	return r.floodCheck(minFloor)
}

// rollRects ищет пару пересекающихся прямоугольников с разнесенными углами.
// Если в маленькой коробке развести их нельзя, берется первая пересекающаяся пара.
func (r *room) rollRects(rng *rand.Rand) (Rect, Rect, bool) {
	var fa, fb Rect
	haveFallback := false

	for i := 0; i < rectTries; i++ {
		a, b := r.randomRect(rng), r.randomRect(rng)
		if !a.Intersects(b) {
			continue
		}
		if abs(a.X-b.X) > 1 || abs(a.Y-b.Y) > 1 {
			return a, b, true
		}
		if !haveFallback {
			fa, fb, haveFallback = a, b, true
		}
	}
	return fa, fb, haveFallback
}

// randomRect - прямоугольник не меньше 3x3 внутри коробки, с местом под стену по краю.
func (r *room) randomRect(rng *rand.Rand) Rect {
	rw := utils.RandRange(rng, 3, r.w-2)
	rh := utils.RandRange(rng, 3, r.h-2)
	return Rect{
		X: utils.RandRange(rng, 1, r.w-1-rw),
		Y: utils.RandRange(rng, 1, r.h-1-rh),
		W: rw,
		H: rh,
	}
}

// ringWalls - каждая пустая клетка рядом с полом (с диагоналями) становится стеной.
func (r *room) ringWalls() {
	var nbs paths.Neighbors
	inBounds := func(p gruid.Point) bool { return r.grid.InBounds(p.X, p.Y) }

	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			if r.at(x, y) != enums.TerrainVoid {
				continue
			}
			for _, q := range nbs.All(gruid.Point{X: x, Y: y}, inBounds) {
				if r.at(q.X, q.Y) == enums.TerrainRawFloor {
					r.grid.SetTile(x, y, enums.TerrainRawWall)
					break
				}
			}
		}
	}
}

// floodCheck - весь пол связан (по ортогоналям) и его не меньше minFloor.
func (r *room) floodCheck(minFloor int) bool {
	var start gruid.Point
	total := 0
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			if r.at(x, y) == enums.TerrainRawFloor {
				if total == 0 {
					start = gruid.Point{X: x, Y: y}
				}
				total++
			}
		}
	}
	if total < minFloor {
		return false
	}

	isFloor := func(p gruid.Point) bool {
		return r.isKind(p.X, p.Y, enums.TerrainRawFloor)
	}
	return flood(start, isFloor).Size() == total
}

// flood - клетки, достижимые из start по ортогоналям через pass.
func flood(start gruid.Point, pass func(gruid.Point) bool) mapset.Set[gruid.Point] {
	var nbs paths.Neighbors
	visited := mapset.New[gruid.Point]()
	visited.Put(start)
	queue := []gruid.Point{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, q := range nbs.Cardinal(cur, pass) {
			if visited.Has(q) {
				continue
			}
			visited.Put(q)
			queue = append(queue, q)
		}
	}
	return visited
}

// placeDoors ставит до четырех кандидатов на каждую сторону:
// сторона делится на четверти, бит маски включает четверть.
func (r *room) placeDoors(rng *rand.Rand, first bool) {
	for _, e := range roomEdges {
		mask := 0xF
		if !first {
			mask = rng.Intn(16)
		}

		slots := r.doorSlots(e)
		n := len(slots)
		for q := 0; q < 4; q++ {
			if mask&(1<<q) == 0 {
				continue
			}
			lo, hi := q*n/4, (q+1)*n/4
			if hi <= lo {
				continue
			}
			p := slots[lo+rng.Intn(hi-lo)]
			r.grid.SetTile(p.X, p.Y, enums.TerrainDoorCandidate)
		}
	}
}

// doorSlots - крайние клетки стены на стороне e, за которыми внутрь лежит пол,
// а по бокам стоит стена.
func (r *room) doorSlots(e edge) []gruid.Point {
	var res []gruid.Point
	ax, ay := e.along()

	length, depth := r.w, r.h
	if e.dx != 0 {
		length, depth = r.h, r.w
	}

	for i := 1; i < length-1; i++ {
		// Стартуем с внешнего края коробки и идем внутрь до первой непустой клетки
		x, y := i*ax, i*ay
		if e.dx > 0 {
			x = r.w - 1
		}
		if e.dy > 0 {
			y = r.h - 1
		}
		for d := 0; d < depth && r.isKind(x, y, enums.TerrainVoid); d++ {
			x -= e.dx
			y -= e.dy
		}

		if !r.isKind(x, y, enums.TerrainRawWall) {
			continue
		}
		if !r.isKind(x-e.dx, y-e.dy, enums.TerrainRawFloor) {
			continue
		}
		if !r.isKind(x+ax, y+ay, enums.TerrainRawWall) || !r.isKind(x-ax, y-ay, enums.TerrainRawWall) {
			continue
		}
		res = append(res, gruid.Point{X: x, Y: y})
	}
	return res
}

// crop сдвигает содержимое к левому верхнему углу и запоминает его размер.
func (r *room) crop() {
	minX, minY, maxX, maxY := r.w, r.h, -1, -1
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			if r.at(x, y) == enums.TerrainVoid {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX < 0 {
		r.actualW, r.actualH = 0, 0
		return
	}

	r.actualW = maxX - minX + 1
	r.actualH = maxY - minY + 1
	cropped := area.New(r.actualW, r.actualH)
	for y := 0; y < r.actualH; y++ {
		for x := 0; x < r.actualW; x++ {
			cropped.SetTile(x, y, r.at(x+minX, y+minY))
		}
	}
	r.grid = cropped
}

// doors - кандидаты в двери в порядке обхода.
func (r *room) doors() []gruid.Point {
	var res []gruid.Point
	for y := 0; y < r.actualH; y++ {
		for x := 0; x < r.actualW; x++ {
			if r.at(x, y) == enums.TerrainDoorCandidate {
				res = append(res, gruid.Point{X: x, Y: y})
			}
		}
	}
	return res
}

func (r *room) floorCells() int {
	n := 0
	for y := 0; y < r.actualH; y++ {
		for x := 0; x < r.actualW; x++ {
			if r.at(x, y) == enums.TerrainRawFloor {
				n++
			}
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
