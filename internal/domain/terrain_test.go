package domain

import (
	"errors"
	"testing"

	"dungeon-core/internal/core/types/enums"
)

func TestGenerateTile_AllKindsDefined(t *testing.T) {
	for _, kind := range enums.AllTerrainKinds() {
		tile := NewTile(kind)
		if tile.Kind != kind {
			t.Errorf("%s: Kind = %s", kind, tile.Kind)
		}
		if tile.Name == "" {
			t.Errorf("%s: empty name", kind)
		}
		if kind != enums.TerrainVoid && tile.Glyph.IsBlank() {
			t.Errorf("%s: blank glyph", kind)
		}
	}
}

func TestGenerateTile_Tags(t *testing.T) {
	tests := []struct {
		kind          enums.TerrainKind
		blocksMove    bool
		blocksLight   bool
		extraTag      TileTag
		extraExpected bool
	}{
		{enums.TerrainVoid, true, true, TagImmutable, false},
		{enums.TerrainStoneFloor, false, false, TagOpenable, false},
		{enums.TerrainStoneWall, true, true, TagOpenable, false},
		{enums.TerrainWoodDoor, false, true, TagOpenable, true},
		{enums.TerrainWoodDoorOpen, false, false, TagCloseable, true},
		{enums.TerrainStairsUp, false, false, TagStairsUp, true},
		{enums.TerrainStairsDown, false, false, TagStairsDown, true},
		{enums.TerrainTomb, false, false, TagImmutable, true},
	}

	for _, tt := range tests {
		tile := NewTile(tt.kind)
		if got := tile.BlocksMovement(); got != tt.blocksMove {
			t.Errorf("%s: BlocksMovement = %v, want %v", tt.kind, got, tt.blocksMove)
		}
		if got := tile.BlocksLight(); got != tt.blocksLight {
			t.Errorf("%s: BlocksLight = %v, want %v", tt.kind, got, tt.blocksLight)
		}
		if got := tile.Has(tt.extraTag); got != tt.extraExpected {
			t.Errorf("%s: Has(%s) = %v, want %v", tt.kind, tt.extraTag, got, tt.extraExpected)
		}
	}
}

func TestGenerateTile_ResetsPreviousState(t *testing.T) {
	tile := NewTile(enums.TerrainStoneFloor)
	tile.Tags.Set(TagBloodied)
	tile.Tags.Set(TagExplored)

	GenerateTile(&tile, enums.TerrainStoneWall)

	if tile.Has(TagBloodied) || tile.Has(TagExplored) {
		t.Errorf("tags survived regeneration: %b", tile.Tags)
	}
	if !tile.BlocksMovement() {
		t.Error("wall should block movement")
	}
}

func TestGenerateTile_NilPanicsWithInvariant(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %T is not an error", r)
		}
		var iv *InvariantViolation
		if !errors.As(err, &iv) {
			t.Fatalf("panic value %v is not *InvariantViolation", err)
		}
		if iv.Op != "GenerateTile" {
			t.Errorf("Op = %q", iv.Op)
		}
	}()

	GenerateTile(nil, enums.TerrainStoneFloor)
}

func TestTagSet(t *testing.T) {
	s := Tags(TagBlocksLight, TagOpenable)
	if !s.Has(TagBlocksLight) || !s.Has(TagOpenable) || s.Has(TagOpen) {
		t.Fatalf("unexpected set %b", s)
	}

	s.Clear(TagBlocksLight)
	if s.Has(TagBlocksLight) {
		t.Error("Clear did not remove tag")
	}

	w := s.With(TagOpen)
	if s.Has(TagOpen) {
		t.Error("With mutated receiver")
	}
	if !w.Has(TagOpen) {
		t.Error("With did not add tag")
	}

	if TagStairsDown.String() != "STAIRS_DOWN" {
		t.Errorf("String = %q", TagStairsDown.String())
	}
}
