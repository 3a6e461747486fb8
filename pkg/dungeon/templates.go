package dungeon

import (
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
)

// EntityTemplate определяет шаблон для создания сущности
type EntityTemplate struct {
	Name        string
	Type        enums.EntityType
	Glyph       types.Glyph
	Description string
	Stats       domain.StatsComponent
	AI          domain.AIComponent
}

// SpawnEntity создает сущность из шаблона на заданной позиции
func (t EntityTemplate) SpawnEntity(id types.EntityID, pos domain.Position, depth int) *domain.Entity {
	entity := &domain.Entity{
		EntityID:    id,
		Name:        t.Name,
		Description: t.Description,
		Glyph:       t.Glyph,
		Pos:         pos,
		Depth:       depth,
	}

	// Добавляем Stats и AI, если это существо
	if t.Stats.HP > 0 {
		entity.Stats = &domain.StatsComponent{
			HP:       t.Stats.HP,
			MaxHP:    t.Stats.HP,
			Strength: t.Stats.Strength,
		}
		entity.AI = &domain.AIComponent{
			IsHostile:   t.AI.IsHostile,
			Personality: t.AI.Personality,
		}
	}

	return entity
}

// Scaled - шаблон с поправкой на глубину уровня.
func (t EntityTemplate) Scaled(depth int) EntityTemplate {
	t.Stats.HP += depth * 2
	t.Stats.Strength += depth / 2
	return t
}

// --- ВРАГИ ---

var Goblin = EntityTemplate{
	Name:        "Хитрый Гоблин",
	Type:        enums.EntityTypeMonster,
	Glyph:       types.MakeGlyph(0x22C55E, 'g'),
	Description: "Мелкий пакостный гоблин, воровато оглядывается.",
	Stats:       domain.StatsComponent{HP: 15, Strength: 2},
	AI:          domain.AIComponent{IsHostile: true, Personality: "Cowardly"},
}

var Orc = EntityTemplate{
	Name:        "Свирепый Орк",
	Type:        enums.EntityTypeMonster,
	Glyph:       types.MakeGlyph(0xDC2626, 'O'),
	Description: "Огромный зеленокожий орк с тяжелой дубиной.",
	Stats:       domain.StatsComponent{HP: 30, Strength: 5},
	AI:          domain.AIComponent{IsHostile: true, Personality: "Furious"},
}

var Troll = EntityTemplate{
	Name:        "Каменный Тролль",
	Type:        enums.EntityTypeMonster,
	Glyph:       types.MakeGlyph(0x78716C, 'T'),
	Description: "Массивное существо с каменной кожей.",
	Stats:       domain.StatsComponent{HP: 50, Strength: 8},
	AI:          domain.AIComponent{IsHostile: true, Personality: "Aggressive"},
}

// --- СТРАЖИ ГРОБНИЦ ---

var Skeleton = EntityTemplate{
	Name:        "Скелет-страж",
	Type:        enums.EntityTypeMonster,
	Glyph:       types.MakeGlyph(0xE5E7EB, 's'),
	Description: "Кости в истлевших доспехах. Гробница потревожена.",
	Stats:       domain.StatsComponent{HP: 20, Strength: 4},
	AI:          domain.AIComponent{IsHostile: true, Personality: "Relentless"},
}

var Mummy = EntityTemplate{
	Name:        "Мумия",
	Type:        enums.EntityTypeMonster,
	Glyph:       types.MakeGlyph(0xD6D3D1, 'M'),
	Description: "Спеленутое тело медленно поднимается из саркофага.",
	Stats:       domain.StatsComponent{HP: 35, Strength: 4},
	AI:          domain.AIComponent{IsHostile: true, Personality: "Relentless"},
}

// --- NPC (мирные) ---

var Merchant = EntityTemplate{
	Name:        "Торговец",
	Type:        enums.EntityTypeAlly,
	Glyph:       types.MakeGlyph(0xFCD34D, 'm'),
	Description: "Странствующий торговец с тележкой товаров.",
	Stats:       domain.StatsComponent{HP: 20, Strength: 1},
	AI:          domain.AIComponent{IsHostile: false, Personality: "Friendly"},
}

// EnemyTemplates - карта всех доступных врагов
var EnemyTemplates = map[string]EntityTemplate{
	"goblin": Goblin,
	"orc":    Orc,
	"troll":  Troll,
}

// enemyOrder - ключи EnemyTemplates в фиксированном порядке.
// Обход карты в Go случаен, а уровень с тем же сидом должен совпадать.
var enemyOrder = []string{"goblin", "orc", "troll"}

// NPCTemplates - карта всех NPC
var NPCTemplates = map[string]EntityTemplate{
	"merchant": Merchant,
}

// TombGuardians - кто просыпается в запечатанной гробнице.
var TombGuardians = []EntityTemplate{Skeleton, Mummy}

// idAllocator раздает индексы сущностям уровня. Сид тот же - ID те же.
type idAllocator struct {
	last uint32
}

func (a *idAllocator) next(typ enums.EntityType) types.EntityID {
	a.last++
	return types.PackEntityID(typ, 0, a.last)
}
