package dungeon

import (
	"fmt"

	"dungeon-core/internal/core/types"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
)

// CreatePlayer создает героя с индексом index (игроков может быть несколько).
func CreatePlayer(index uint32) *domain.Entity {
	p := EntityTemplate{
		Name:        fmt.Sprintf("Герой %d", index),
		Type:        enums.EntityTypePlayer,
		Glyph:       types.MakeGlyph(0x22D3EE, '@'),
		Description: "Храбрый исследователь подземелий.",
		Stats:       domain.StatsComponent{HP: 100, Strength: 10},
	}.SpawnEntity(types.PackEntityID(enums.EntityTypePlayer, 0, index), domain.Position{}, 0)

	// У игрока нет AI: им управляют снаружи
	p.AI = nil
	return p
}
