package levels

import "testing"

func TestGenerateRejectsTinyMazes(t *testing.T) {
	if _, err := Generate(GenerateOptions{Cols: 4, Rows: 4}); err == nil {
		t.Fatalf("expected error for undersized maze")
	}
}

func TestGenerateIsSolvable(t *testing.T) {
	cases := []struct {
		name string
		opts GenerateOptions
	}{
		{"small", GenerateOptions{Cols: 9, Rows: 9, Coins: 3, Chasers: 1, Seed: 1}},
		{"wide", GenerateOptions{Cols: 31, Rows: 11, Coins: 8, Chasers: 3, Seed: 42}},
		{"even_dims_rounded", GenerateOptions{Cols: 10, Rows: 10, Coins: 2, Chasers: 1, Seed: 7}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Generate(c.opts)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if m.Cols()%2 == 0 || m.Rows()%2 == 0 {
				t.Fatalf("dimensions should be odd, got %dx%d", m.Cols(), m.Rows())
			}

			spawn, ok := m.Spawn()
			if !ok {
				t.Fatalf("generated maze has no spawn")
			}
			if got := len(m.Coins()); got != c.opts.Coins {
				t.Fatalf("expected %d coins, got %d", c.opts.Coins, got)
			}
			if got := len(m.Chasers()); got != c.opts.Chasers {
				t.Fatalf("expected %d chasers, got %d", c.opts.Chasers, got)
			}

			// every walkable cell must be reachable from spawn
			reached := floodFill(m, spawn)
			for row := 0; row < m.Rows(); row++ {
				for col := 0; col < m.Cols(); col++ {
					if !m.Walkable(col, row) {
						continue
					}
					if !reached[Cell{Col: col, Row: row}] {
						t.Fatalf("cell (%d,%d) unreachable from spawn", col, row)
					}
				}
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	opts := GenerateOptions{Cols: 15, Rows: 15, Coins: 4, Chasers: 2, Seed: 99}
	a, err := Generate(opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("same seed should produce the same maze")
	}
}

func floodFill(m *Maze, start Cell) map[Cell]bool {
	reached := map[Cell]bool{start: true}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := Cell{Col: cur.Col + d[0], Row: cur.Row + d[1]}
			if reached[next] || !m.Walkable(next.Col, next.Row) {
				continue
			}
			reached[next] = true
			queue = append(queue, next)
		}
	}
	return reached
}
