package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeon-core/internal/area"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `CDLV` // 4 байта
	Version1    uint32 = 1
)

// LevelFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут нет слайсов и строк, только массивы и числа.
type LevelFileHeader struct {
	Magic      [4]byte   // 4 байта
	Version    uint32    // 4 байта
	Seed       int64     // 8 байт
	Depth      int32     // 4 байта
	Width      uint16    // 2 байта
	Height     uint16    // 2 байта
	StairsUp   [2]uint16 // 4 байта
	StairsDown [2]uint16 // 4 байта
}

// Snapshot - готовый этаж: местность и лестницы. Сущности не сохраняются,
// их заново расставит генератор по тому же сиду.
type Snapshot struct {
	Seed       int64
	Depth      int
	Area       *area.Area
	StairsUp   domain.Position
	StairsDown domain.Position
}

// LevelStore хранит снимки этажей в каталоге.
type LevelStore struct {
	SaveDir string
	log     *logrus.Entry
}

func NewLevelStore(dir string) (*LevelStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("level store: %w", err)
	}
	return &LevelStore{SaveDir: dir, log: logger.Component("storage")}, nil
}

// Path - имя файла для этажа.
func (s *LevelStore) Path(seed int64, depth int) string {
	return filepath.Join(s.SaveDir, fmt.Sprintf("level_%d_d%d.cdlv", seed, depth))
}

// Save пишет снимок и возвращает путь к файлу.
func (s *LevelStore) Save(snap *Snapshot) (string, error) {
	path := s.Path(snap.Seed, snap.Depth)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeBinary(w, snap); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{"path": path, "depth": snap.Depth}).Info("Level saved")
	return path, nil
}

func writeBinary(w io.Writer, s *Snapshot) error {
	a := s.Area
	if a.Width() > 0xFFFF || a.Height() > 0xFFFF {
		return fmt.Errorf("area %dx%d is too large", a.Width(), a.Height())
	}

	// 1. Заголовок
	header := LevelFileHeader{
		Version:    Version1,
		Seed:       s.Seed,
		Depth:      int32(s.Depth),
		Width:      uint16(a.Width()),
		Height:     uint16(a.Height()),
		StairsUp:   [2]uint16{uint16(s.StairsUp.X), uint16(s.StairsUp.Y)},
		StairsDown: [2]uint16{uint16(s.StairsDown.X), uint16(s.StairsDown.Y)},
	}
	copy(header.Magic[:], MagicHeader)
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Местность: по байту на клетку, построчно
	kinds := make([]byte, 0, a.Width()*a.Height())
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			kinds = append(kinds, byte(a.Tile(x, y).Kind))
		}
	}
	if _, err := w.Write(kinds); err != nil {
		return fmt.Errorf("failed to write tiles: %w", err)
	}
	return nil
}
