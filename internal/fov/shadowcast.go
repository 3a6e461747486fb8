package fov

import (
	"dungeon-core/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Target - то, над чем считается поле зрения. Алгоритм не знает ничего,
// кроме размеров, прозрачности клеток и способа пометить клетку видимой.
type Target interface {
	Width() int
	Height() int
	IsOpaque(x, y int) bool
	SetVisible(x, y int)
}

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Compute помечает видимыми клетки вокруг (ox, oy) в радиусе radius.
// Видимая область круглая: клетка попадает в неё только при dx²+dy² < radius².
// Сбрасывать прошлую видимость - забота вызывающего.
func Compute(t Target, ox, oy, radius int) {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component": "fov",
		"origin_x":  ox,
		"origin_y":  oy,
		"radius":    radius,
	})

	if radius <= 0 {
		fovLogger.Debug("FOV skipped for blind observer (radius <= 0).")
		return
	}

	// Центр всегда виден
	if ox >= 0 && oy >= 0 && ox < t.Width() && oy < t.Height() {
		t.SetVisible(ox, oy)
	}

	for i := 0; i < 8; i++ {
		castLight(t, ox, oy, radius, 1, 1.0, 0.0,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i])
	}

	fovLogger.Debug("FOV calculation complete.")
}

// castLight сканирует один октант ряд за рядом. На каждой непрозрачной клетке,
// встреченной после прозрачных, уходит в рекурсию со суженным окном наклонов.
func castLight(t Target, cx, cy, radius, row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := radius * radius
	width, height := t.Width(), t.Height()

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for dx <= 0 {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if X < 0 || Y < 0 || X >= width || Y >= height {
				continue
			}

			if dx*dx+dy*dy < radiusSq {
				t.SetVisible(X, Y)
			}

			opaque := t.IsOpaque(X, Y)
			if blocked {
				// Идем вдоль стены
				if opaque {
					newStart = rSlope
					continue
				}
				// Стена кончилась
				blocked = false
				start = newStart
			} else if opaque && j < radius {
				blocked = true
				castLight(t, cx, cy, radius, j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
