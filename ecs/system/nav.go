package system

import (
	"github.com/rmendoza/mazebound/levels"
)

// LineOfSight reports whether the straight cell line between a and b crosses
// no solid cell. Endpoints count: a solid endpoint blocks the line.
func LineOfSight(m *levels.Maze, a, b levels.Cell) bool {
	if m == nil {
		return false
	}

	dx := abs(b.Col - a.Col)
	dy := -abs(b.Row - a.Row)
	sx := 1
	if a.Col > b.Col {
		sx = -1
	}
	sy := 1
	if a.Row > b.Row {
		sy = -1
	}

	col, row := a.Col, a.Row
	err := dx + dy
	for {
		if m.Solid(col, row) {
			return false
		}
		if col == b.Col && row == b.Row {
			return true
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			col += sx
		}
		if e2 <= dx {
			err += dx
			row += sy
		}
	}
}

// NextStep returns the first cell of a shortest walkable path from 'from'
// toward 'to', found by breadth-first search over 4-connected cells. Returns
// false when no path exists or from == to.
func NextStep(m *levels.Maze, from, to levels.Cell) (levels.Cell, bool) {
	if m == nil || from == to {
		return levels.Cell{}, false
	}
	if !m.Walkable(to.Col, to.Row) || !m.Walkable(from.Col, from.Row) {
		return levels.Cell{}, false
	}

	prev := map[levels.Cell]levels.Cell{from: from}
	queue := []levels.Cell{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			// Walk back to the cell adjacent to the start.
			step := cur
			for prev[step] != from {
				step = prev[step]
			}
			return step, true
		}
		for _, n := range neighbors(cur) {
			if !m.Walkable(n.Col, n.Row) {
				continue
			}
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = cur
			queue = append(queue, n)
		}
	}
	return levels.Cell{}, false
}

func neighbors(c levels.Cell) [4]levels.Cell {
	return [4]levels.Cell{
		{Col: c.Col + 1, Row: c.Row},
		{Col: c.Col - 1, Row: c.Row},
		{Col: c.Col, Row: c.Row + 1},
		{Col: c.Col, Row: c.Row - 1},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
