package levels

import (
	"fmt"
	"math/rand"
)

// GenerateOptions configures the maze generator.
type GenerateOptions struct {
	Cols    int
	Rows    int
	Coins   int
	Chasers int
	Seed    int64
}

// Generate carves a perfect maze with a recursive backtracker, then marks the
// spawn and sprinkles coins and chaser starts on open cells. Dimensions are
// rounded up to odd so walls stay one cell thick.
func Generate(opts GenerateOptions) (*Maze, error) {
	cols, rows := opts.Cols, opts.Rows
	if cols < 5 || rows < 5 {
		return nil, fmt.Errorf("levels: maze must be at least 5x5, got %dx%d", cols, rows)
	}
	if cols%2 == 0 {
		cols++
	}
	if rows%2 == 0 {
		rows++
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = CellWall
		}
	}

	// iterative backtracker over odd cells
	type pt struct{ c, r int }
	start := pt{1, 1}
	grid[start.r][start.c] = CellOpen
	stack := []pt{start}
	dirs := []pt{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		order := rng.Perm(len(dirs))
		carved := false
		for _, i := range order {
			next := pt{cur.c + dirs[i].c, cur.r + dirs[i].r}
			if next.c <= 0 || next.r <= 0 || next.c >= cols-1 || next.r >= rows-1 {
				continue
			}
			if grid[next.r][next.c] != CellWall {
				continue
			}
			grid[cur.r+dirs[i].r/2][cur.c+dirs[i].c/2] = CellOpen
			grid[next.r][next.c] = CellOpen
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	grid[start.r][start.c] = CellSpawn

	open := make([]pt, 0, cols*rows/2)
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == CellOpen {
				open = append(open, pt{c, r})
			}
		}
	}
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })

	place := func(mark rune, count int) {
		for count > 0 && len(open) > 0 {
			p := open[len(open)-1]
			open = open[:len(open)-1]
			grid[p.r][p.c] = mark
			count--
		}
	}
	place(CellCoin, opts.Coins)
	place(CellChaser, opts.Chasers)

	return &Maze{rows: grid}, nil
}
