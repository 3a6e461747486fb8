package systems

import (
	"testing"

	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
)

func TestApplyAttack(t *testing.T) {
	a := createTestArea(5, 5)
	attacker := newActor(enums.EntityTypePlayer, "Hero", 1, 1)
	attacker.Stats.Strength = 5

	target := newActor(enums.EntityTypeMonster, "Ork", 2, 1)
	target.Stats.HP, target.Stats.MaxHP = 20, 20

	msg := ApplyAttack(attacker, target, a)
	if target.Stats.HP != 15 {
		t.Errorf("Expected target HP to be 15, got %d", target.Stats.HP)
	}
	if msg == "" {
		t.Error("Expected attack log message, got empty string")
	}
	if !a.Tile(2, 1).Has(domain.TagBloodied) {
		t.Error("Expected blood on the target cell")
	}

	// Kill shot
	attacker.Stats.Strength = 100
	ApplyAttack(attacker, target, a)

	if !target.Stats.IsDead {
		t.Errorf("Expected target to be dead, got HP %d", target.Stats.HP)
	}
	if target.AI.IsHostile {
		t.Error("Corpse should not stay hostile")
	}
	if target.Glyph.Char() != '%' {
		t.Errorf("Corpse glyph = %v", target.Glyph)
	}
}

func TestApplyAttack_NoBody(t *testing.T) {
	attacker := newActor(enums.EntityTypePlayer, "Hero", 1, 1)
	statue := &domain.Entity{Name: "Statue"}

	if msg := ApplyAttack(attacker, statue, nil); msg == "" {
		t.Error("Expected message for attacking an object")
	}
}
