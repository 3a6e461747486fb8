package main

import (
	"bufio"

	"dungeon-core/internal/domain"
	"dungeon-core/internal/engine"
)

// render печатает этаж символами: местность, поверх нее путь и сущности.
func render(w *bufio.Writer, l *engine.Level, path []domain.Position) {
	a := l.Area
	overlay := make(map[domain.Position]byte, len(path))
	for _, p := range path {
		overlay[p] = '*'
	}
	for _, occ := range a.Entities() {
		if e, ok := occ.(*domain.Entity); ok {
			overlay[e.Pos] = e.Glyph.Char()
		}
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if ch, ok := overlay[domain.Position{X: x, Y: y}]; ok {
				w.WriteByte(ch)
				continue
			}
			w.WriteByte(a.Tile(x, y).Glyph.Char())
		}
		w.WriteByte('\n')
	}
}
