package fov

import "testing"

func collect(x0, y0, x1, y1 int) [][2]int {
	var out [][2]int
	l := NewLine(x0, y0, x1, y1)
	for {
		x, y, ok := l.Step()
		if !ok {
			return out
		}
		out = append(out, [2]int{x, y})
	}
}

func TestLine_Step(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"same point", 3, 3, 3, 3, nil},
		{"horizontal", 0, 0, 3, 0, [][2]int{{1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", 2, 2, 2, 0, [][2]int{{2, 1}, {2, 0}}},
		{"diagonal", 0, 0, 2, 2, [][2]int{{1, 1}, {2, 2}}},
		{"shallow", 0, 0, 4, 2, [][2]int{{1, 0}, {2, 1}, {3, 1}, {4, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("step %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLine_EndsAtTarget(t *testing.T) {
	for _, end := range [][2]int{{-5, 3}, {7, -2}, {-4, -9}, {0, 6}} {
		cells := collect(0, 0, end[0], end[1])
		if len(cells) == 0 || cells[len(cells)-1] != end {
			t.Errorf("line to %v ended at %v", end, cells)
		}
		// Каждый шаг - соседняя клетка
		prev := [2]int{0, 0}
		for _, c := range cells {
			dx, dy := c[0]-prev[0], c[1]-prev[1]
			if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
				t.Errorf("line to %v jumped from %v to %v", end, prev, c)
			}
			prev = c
		}
	}
}
