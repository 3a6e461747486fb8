package dungeon

import (
	"math/rand"

	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"
)

// Сколько раз пробовать найти свободную клетку под сущность
const spawnAttempts = 20

// spawnRequest - отложенный спавн: комнаты известны только после генерации.
// Пустое name - случайный враг.
type spawnRequest struct {
	name  string
	pool  map[string]EntityTemplate
	count int
}

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	depth    int
	cfg      Config
	rng      *rand.Rand
	requests []spawnRequest
}

// NewLevel создает новый builder для уровня
func NewLevel(depth int, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		depth: depth,
		cfg:   DefaultConfig(),
		rng:   rng,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.cfg.Width = width
	b.cfg.Height = height
	return b
}

// WithConfig заменяет настройки генератора целиком (вместе с размером).
func (b *LevelBuilder) WithConfig(cfg Config) *LevelBuilder {
	b.cfg = cfg
	return b
}

// SpawnMonsters добавляет n случайных врагов.
func (b *LevelBuilder) SpawnMonsters(n int) *LevelBuilder {
	b.requests = append(b.requests, spawnRequest{pool: EnemyTemplates, count: n})
	return b
}

// SpawnEnemy спавнит врага из шаблона
func (b *LevelBuilder) SpawnEnemy(templateName string, count int) *LevelBuilder {
	return b.request(EnemyTemplates, templateName, count)
}

// SpawnNPC спавнит мирного NPC из шаблона
func (b *LevelBuilder) SpawnNPC(templateName string, count int) *LevelBuilder {
	return b.request(NPCTemplates, templateName, count)
}

func (b *LevelBuilder) request(pool map[string]EntityTemplate, name string, count int) *LevelBuilder {
	if _, ok := pool[name]; !ok {
		logger.Component("builder").WithField("template", name).Warn("Unknown template, skipped")
		return b
	}
	b.requests = append(b.requests, spawnRequest{name: name, pool: pool, count: count})
	return b
}

// Build генерирует карту и расселяет по ней сущности.
func (b *LevelBuilder) Build() (*Result, error) {
	gen := NewGenerator(b.cfg, b.rng).WithDepth(b.depth)
	res, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	for _, req := range b.requests {
		for i := 0; i < req.count; i++ {
			tpl := b.pick(req)
			pos, ok := b.findSpawnCell(res)
			if !ok {
				continue // Пропускаем, если не нашли место
			}

			// Масштабируем статы по уровню
			tpl = tpl.Scaled(b.depth)
			e := tpl.SpawnEntity(gen.ids.next(tpl.Type), pos, b.depth)
			res.Area.AddEntity(e)
			res.Spawned = append(res.Spawned, e)
		}
	}

	logger.Component("builder").WithField("depth", b.depth).
		WithField("entities", len(res.Spawned)).Debug("Level populated")
	return res, nil
}

func (b *LevelBuilder) pick(req spawnRequest) EntityTemplate {
	if req.name != "" {
		return req.pool[req.name]
	}
	return req.pool[enemyOrder[b.rng.Intn(len(enemyOrder))]]
}

// findSpawnCell ищет свободный каменный пол в случайной комнате,
// кроме комнаты с лестницей вверх: там появляется игрок.
func (b *LevelBuilder) findSpawnCell(res *Result) (domain.Position, bool) {
	var candidates []int
	for i := range res.Rooms {
		if i != res.UpRoom {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return domain.Position{}, false
	}

	room := res.Rooms[candidates[b.rng.Intn(len(candidates))]]
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		x := room.X + b.rng.Intn(room.W)
		y := room.Y + b.rng.Intn(room.H)
		if !res.Area.InBounds(x, y) || res.Area.Tile(x, y).Kind != enums.TerrainStoneFloor {
			continue
		}
		if len(res.Area.EntitiesAt(x, y)) > 0 {
			continue
		}
		return domain.Position{X: x, Y: y}, true
	}
	return domain.Position{}, false
}
