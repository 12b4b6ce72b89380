package levels

import (
	"fmt"
	"strings"
)

// Maze cell runes. Anything not listed here renders as a plain wall.
const (
	CellOpen   = ' '
	CellWall   = '#'
	CellPillar = '+'
	CellCoin   = 'g'
	CellChaser = 'R'
	CellSpawn  = 'P'
)

// BlockSize is the world-space width of one maze cell.
const BlockSize = 100.0

// Cell addresses a maze cell by column and row.
type Cell struct {
	Col int
	Row int
}

// Center returns the world-space center of the cell.
func (c Cell) Center() (float64, float64) {
	return (float64(c.Col) + 0.5) * BlockSize, (float64(c.Row) + 0.5) * BlockSize
}

// Maze is a grid of cell runes. Rows may be ragged; anything outside a row is
// treated as wall.
type Maze struct {
	rows [][]rune
}

// ParseMaze reads a maze from its textual form. Trailing blank lines are
// ignored; a maze with no rows is an error.
func ParseMaze(data []byte) (*Maze, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("levels: maze has no rows")
	}

	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []rune(line))
	}
	return &Maze{rows: rows}, nil
}

func (m *Maze) Rows() int {
	if m == nil {
		return 0
	}
	return len(m.rows)
}

// Cols returns the widest row length.
func (m *Maze) Cols() int {
	if m == nil {
		return 0
	}
	cols := 0
	for _, row := range m.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// At returns the rune at (col, row). Out-of-range lookups are walls so rays
// and movement stop at the maze edge.
func (m *Maze) At(col, row int) rune {
	if m == nil || row < 0 || row >= len(m.rows) {
		return CellWall
	}
	r := m.rows[row]
	if col < 0 || col >= len(r) {
		return CellWall
	}
	return r[col]
}

// Walkable reports whether actors may occupy the cell. Coin and chaser
// markers sit on corridor cells; rays pass through them too.
func (m *Maze) Walkable(col, row int) bool {
	switch m.At(col, row) {
	case CellOpen, CellCoin, CellChaser, CellSpawn:
		return true
	}
	return false
}

// Solid reports whether a ray terminates at the cell.
func (m *Maze) Solid(col, row int) bool {
	return !m.Walkable(col, row)
}

// CellAt maps world coordinates to the containing cell.
func (m *Maze) CellAt(x, y float64) Cell {
	return Cell{Col: int(x / BlockSize), Row: int(y / BlockSize)}
}

// CanMoveTo reports whether the world point lies in a walkable cell.
func (m *Maze) CanMoveTo(x, y float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	c := m.CellAt(x, y)
	return m.Walkable(c.Col, c.Row)
}

// Spawn returns the player start cell: the first 'P' cell, else the first
// walkable cell scanning top-left to bottom-right.
func (m *Maze) Spawn() (Cell, bool) {
	if m == nil {
		return Cell{}, false
	}
	var fallback *Cell
	for row := range m.rows {
		for col := range m.rows[row] {
			switch m.rows[row][col] {
			case CellSpawn:
				return Cell{Col: col, Row: row}, true
			case CellOpen:
				if fallback == nil {
					fallback = &Cell{Col: col, Row: row}
				}
			}
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return Cell{}, false
}

// Coins returns every coin cell.
func (m *Maze) Coins() []Cell {
	return m.cellsOf(CellCoin)
}

// Chasers returns every chaser spawn cell.
func (m *Maze) Chasers() []Cell {
	return m.cellsOf(CellChaser)
}

func (m *Maze) cellsOf(want rune) []Cell {
	if m == nil {
		return nil
	}
	var out []Cell
	for row := range m.rows {
		for col, r := range m.rows[row] {
			if r == want {
				out = append(out, Cell{Col: col, Row: row})
			}
		}
	}
	return out
}

// String renders the maze back to its textual form.
func (m *Maze) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	for i, row := range m.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
