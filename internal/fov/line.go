package fov

// Line - пошаговый Брезенхэм (только целочисленная арифметика).
// Первый Step возвращает клетку сразу после старта, последний - конечную.
type Line struct {
	x, y   int
	x1, y1 int
	dx, dy int
	sx, sy int
	err    int
	done   bool
}

func NewLine(x0, y0, x1, y1 int) *Line {
	l := &Line{x: x0, y: y0, x1: x1, y1: y1, sx: 1, sy: 1}

	l.dx = x1 - x0
	if l.dx < 0 {
		l.dx = -l.dx
		l.sx = -1
	}
	l.dy = y1 - y0
	if l.dy < 0 {
		l.dy = -l.dy
		l.sy = -1
	}
	l.err = l.dx - l.dy
	l.done = x0 == x1 && y0 == y1
	return l
}

// Step сдвигается на одну клетку. ok == false, когда конец уже пройден.
func (l *Line) Step() (x, y int, ok bool) {
	if l.done {
		return l.x, l.y, false
	}

	e2 := l.err * 2
	if e2 > -l.dy {
		l.err -= l.dy
		l.x += l.sx
	}
	if e2 < l.dx {
		l.err += l.dx
		l.y += l.sy
	}

	if l.x == l.x1 && l.y == l.y1 {
		l.done = true
	}
	return l.x, l.y, true
}
