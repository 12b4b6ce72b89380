package system

import (
	"testing"

	"github.com/rmendoza/mazebound/levels"
)

// A ring corridor around a solid block with an unreachable pocket at (3,3).
const navMazeText = `#######
#     #
# ### #
# # # #
# ### #
#     #
#######`

func navMaze(t *testing.T) *levels.Maze {
	t.Helper()
	m, err := levels.ParseMaze([]byte(navMazeText))
	if err != nil {
		t.Fatalf("parse maze: %v", err)
	}
	return m
}

func TestLineOfSightStraightCorridor(t *testing.T) {
	m := navMaze(t)
	if !LineOfSight(m, levels.Cell{Col: 1, Row: 1}, levels.Cell{Col: 5, Row: 1}) {
		t.Fatal("open corridor should have line of sight")
	}
}

func TestLineOfSightBlockedByWall(t *testing.T) {
	m := navMaze(t)
	if LineOfSight(m, levels.Cell{Col: 1, Row: 2}, levels.Cell{Col: 5, Row: 2}) {
		t.Fatal("center block should block horizontal line of sight")
	}
	if LineOfSight(m, levels.Cell{Col: 3, Row: 1}, levels.Cell{Col: 3, Row: 5}) {
		t.Fatal("center block should block vertical line of sight")
	}
}

func TestLineOfSightSolidEndpoint(t *testing.T) {
	m := navMaze(t)
	if LineOfSight(m, levels.Cell{Col: 1, Row: 1}, levels.Cell{Col: 2, Row: 2}) {
		t.Fatal("a solid target cell should not be visible")
	}
}

func TestNextStepFollowsShortestPath(t *testing.T) {
	m := navMaze(t)
	from := levels.Cell{Col: 1, Row: 1}
	to := levels.Cell{Col: 5, Row: 5}

	// Walk step by step and make sure the path terminates at the goal.
	cur := from
	for i := 0; i < 64; i++ {
		step, ok := NextStep(m, cur, to)
		if !ok {
			t.Fatalf("no step from %+v toward %+v", cur, to)
		}
		if !m.Walkable(step.Col, step.Row) {
			t.Fatalf("step %+v is not walkable", step)
		}
		if dc, dr := abs(step.Col-cur.Col), abs(step.Row-cur.Row); dc+dr != 1 {
			t.Fatalf("step %+v is not adjacent to %+v", step, cur)
		}
		cur = step
		if cur == to {
			return
		}
	}
	t.Fatalf("path from %+v to %+v did not terminate", from, to)
}

func TestNextStepNoPath(t *testing.T) {
	m := navMaze(t)
	if _, ok := NextStep(m, levels.Cell{Col: 1, Row: 1}, levels.Cell{Col: 2, Row: 2}); ok {
		t.Fatal("expected no path into a wall cell")
	}
	if _, ok := NextStep(m, levels.Cell{Col: 1, Row: 1}, levels.Cell{Col: 3, Row: 3}); ok {
		t.Fatal("expected no path into the enclosed pocket")
	}
	if _, ok := NextStep(m, levels.Cell{Col: 1, Row: 1}, levels.Cell{Col: 1, Row: 1}); ok {
		t.Fatal("expected no step when already at the target")
	}
}
