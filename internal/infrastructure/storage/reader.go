package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"dungeon-core/internal/area"
	"dungeon-core/internal/core/types/enums"
	"dungeon-core/internal/domain"
)

var ErrBadFile = errors.New("not a level file")

func (s *LevelStore) Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*Snapshot, error) {
	// 1. Читаем заголовок целиком
	var header LevelFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: invalid magic", ErrBadFile)
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrBadFile, header.Version, Version1)
	}
	w, h := int(header.Width), int(header.Height)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty area", ErrBadFile)
	}

	// 2. Местность
	kinds := make([]byte, w*h)
	if _, err := io.ReadFull(r, kinds); err != nil {
		return nil, fmt.Errorf("failed to read tiles: %w", err)
	}

	known := len(enums.AllTerrainKinds())
	a := area.New(w, h)
	for i, k := range kinds {
		if int(k) >= known {
			return nil, fmt.Errorf("%w: unknown terrain %d at cell %d", ErrBadFile, k, i)
		}
		a.SetTile(i%w, i/w, enums.TerrainKind(k))
	}

	return &Snapshot{
		Seed:       header.Seed,
		Depth:      int(header.Depth),
		Area:       a,
		StairsUp:   domain.Position{X: int(header.StairsUp[0]), Y: int(header.StairsUp[1])},
		StairsDown: domain.Position{X: int(header.StairsDown[0]), Y: int(header.StairsDown[1])},
	}, nil
}
