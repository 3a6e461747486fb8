package area

import (
	"math"

	"dungeon-core/internal/core/types"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
	"dungeon-core/internal/fov"
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

// NoLineOfSight - результат FOVDistance, когда между точками есть непрозрачная клетка.
const NoLineOfSight = -1.0

// Area - игровое поле одного уровня: тайлы, видимость, память и сущности.
// Все три массива row-major и одного размера width*height.
type Area struct {
	width  int
	height int

	tiles   []domain.Tile
	visible []bool
	memory  []types.Glyph

	entities []domain.Occupant

	viewer     domain.Position
	viewRadius int
	hasViewer  bool
	fovDirty   bool
}

// New создает поле, заполненное пустотой. Видимости и памяти нет.
func New(width, height int) *Area {
	if width <= 0 || height <= 0 {
		domain.Invariantf("area.New", "invalid size %dx%d", width, height)
	}

	a := &Area{
		width:   width,
		height:  height,
		tiles:   make([]domain.Tile, width*height),
		visible: make([]bool, width*height),
		memory:  make([]types.Glyph, width*height),
	}
	a.Fill(enums.TerrainVoid)
	return a
}

func (a *Area) Width() int  { return a.width }
func (a *Area) Height() int { return a.height }

func (a *Area) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < a.width && y < a.height
}

func (a *Area) index(op string, x, y int) int {
	if !a.InBounds(x, y) {
		domain.Invariantf(op, "(%d,%d) outside %dx%d", x, y, a.width, a.height)
	}
	return y*a.width + x
}

// Tile - ссылка на тайл. Выход за границы - ошибка программиста.
func (a *Area) Tile(x, y int) *domain.Tile {
	return &a.tiles[a.index("Area.Tile", x, y)]
}

// SetTile перезаписывает клетку через фабрику тайлов.
// FOV не инвалидирует: если изменение влияет на обзор, вызывающий зовёт NeedFOVRecalc.
func (a *Area) SetTile(x, y int, kind enums.TerrainKind) {
	domain.GenerateTile(&a.tiles[a.index("Area.SetTile", x, y)], kind)
}

// Fill перезаписывает все клетки одним видом и сбрасывает видимость и память.
func (a *Area) Fill(kind enums.TerrainKind) {
	for i := range a.tiles {
		domain.GenerateTile(&a.tiles[i], kind)
		a.visible[i] = false
		a.memory[i] = types.Blank
	}
	a.fovDirty = true
}

// CanWalk учитывает только местность. Сущности проверяют вызывающие:
// поиску пути нужен свой контроль над тем, кто считается препятствием.
func (a *Area) CanWalk(x, y int) bool {
	if !a.InBounds(x, y) {
		return false
	}
	return !a.tiles[y*a.width+x].BlocksMovement()
}

// IsOpaque - клетка не пропускает свет. За границами - всё непрозрачно.
func (a *Area) IsOpaque(x, y int) bool {
	if !a.InBounds(x, y) {
		return true
	}
	return a.tiles[y*a.width+x].BlocksLight()
}

// SetVisible помечает клетку видимой в текущем кадре и запоминает её вид.
func (a *Area) SetVisible(x, y int) {
	i := a.index("Area.SetVisible", x, y)
	a.visible[i] = true
	a.memory[i] = a.tiles[i].Glyph
	a.tiles[i].Tags.Set(domain.TagExplored)
}

// SetViewer ставит наблюдателя. Пересчет обзора произойдет при следующем запросе.
func (a *Area) SetViewer(pos domain.Position, radius int) {
	a.viewer = pos
	a.viewRadius = radius
	a.hasViewer = true
	a.fovDirty = true
}

func (a *Area) Viewer() (domain.Position, bool) {
	return a.viewer, a.hasViewer
}

// NeedFOVRecalc помечает обзор устаревшим.
func (a *Area) NeedFOVRecalc() {
	a.fovDirty = true
}

func (a *Area) FOVDirty() bool {
	return a.fovDirty
}

// RecalcFOV очищает видимость и заново запускает shadowcasting от наблюдателя.
func (a *Area) RecalcFOV() {
	for i := range a.visible {
		a.visible[i] = false
	}
	a.fovDirty = false

	if !a.hasViewer || !a.InBounds(a.viewer.X, a.viewer.Y) {
		return
	}
	fov.Compute(a, a.viewer.X, a.viewer.Y, a.viewRadius)

	logger.Log.WithFields(logrus.Fields{
		"component": "area",
		"viewer":    a.viewer,
		"radius":    a.viewRadius,
	}).Debug("FOV recalculated")
}

func (a *Area) ensureFOV() {
	if a.fovDirty {
		a.RecalcFOV()
	}
}

// IsInFOV - клетка наблюдателя или видима по последнему расчету.
func (a *Area) IsInFOV(x, y int) bool {
	if !a.InBounds(x, y) {
		return false
	}
	if a.hasViewer && a.viewer.X == x && a.viewer.Y == y {
		return true
	}
	a.ensureFOV()
	return a.visible[y*a.width+x]
}

// Remembered возвращает последний увиденный глиф клетки.
func (a *Area) Remembered(x, y int) (types.Glyph, bool) {
	a.ensureFOV()
	g := a.memory[a.index("Area.Remembered", x, y)]
	return g, !g.IsBlank()
}

// GridDistance - прямое евклидово расстояние без проверки видимости.
func (a *Area) GridDistance(x1, y1, x2, y2 int) float64 {
	return math.Hypot(float64(x2-x1), float64(y2-y1))
}

// FOVDistance идет по линии Брезенхэма и возвращает NoLineOfSight,
// если какая-то промежуточная клетка непрозрачна. Конечная клетка не проверяется.
func (a *Area) FOVDistance(x1, y1, x2, y2 int) float64 {
	line := fov.NewLine(x1, y1, x2, y2)
	for {
		x, y, ok := line.Step()
		if !ok || (x == x2 && y == y2) {
			break
		}
		if a.IsOpaque(x, y) {
			return NoLineOfSight
		}
	}
	return a.GridDistance(x1, y1, x2, y2)
}

// FindTileTag ищет первую клетку с тегом (построчно сверху вниз).
func (a *Area) FindTileTag(tag domain.TileTag) (domain.Position, bool) {
	for i := range a.tiles {
		if a.tiles[i].Has(tag) {
			return domain.Position{X: i % a.width, Y: i / a.width}, true
		}
	}
	return domain.Position{}, false
}

// CountTiles считает клетки, удовлетворяющие условию.
func (a *Area) CountTiles(pred func(t *domain.Tile) bool) int {
	n := 0
	for i := range a.tiles {
		if pred(&a.tiles[i]) {
			n++
		}
	}
	return n
}

// FloorPercent - доля клеток пола (с лестницами) в процентах.
// Двери и гробницы проходимы, но полом не считаются.
func (a *Area) FloorPercent() int {
	floor := a.CountTiles(func(t *domain.Tile) bool { return t.Kind.IsFloor() })
	return floor * 100 / len(a.tiles)
}

// WalkablePercent - доля проходимых клеток в процентах.
func (a *Area) WalkablePercent() int {
	walkable := a.CountTiles(func(t *domain.Tile) bool { return !t.BlocksMovement() })
	return walkable * 100 / len(a.tiles)
}
