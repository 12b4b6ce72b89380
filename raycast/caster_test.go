package raycast

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/levels"
)

const casterMaze = `#####
#   #
# + #
#   #
#####`

func testMaze(t *testing.T) *levels.Maze {
	t.Helper()
	m, err := levels.ParseMaze([]byte(casterMaze))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

func TestCastRayAxisAligned(t *testing.T) {
	m := testMaze(t)
	// center of cell (1,1) in world units
	origin := cp.Vector{X: 150, Y: 150}

	cases := []struct {
		name     string
		angle    float64
		distance float64
		cell     rune
		side     int
	}{
		{"east_crosses_room", 0, 250, levels.CellWall, 0},
		{"west_hits_border", math.Pi, 50, levels.CellWall, 0},
		{"south_crosses_room", math.Pi / 2, 250, levels.CellWall, 1},
		{"north_hits_border", -math.Pi / 2, 50, levels.CellWall, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit := CastRay(m, origin, c.angle)
			if math.Abs(hit.Distance-c.distance) > 1e-6 {
				t.Fatalf("distance = %v, want %v", hit.Distance, c.distance)
			}
			if hit.Cell != c.cell {
				t.Fatalf("cell = %q, want %q", hit.Cell, c.cell)
			}
			if hit.Side != c.side {
				t.Fatalf("side = %d, want %d", hit.Side, c.side)
			}
		})
	}
}

func TestCastRayEastFromPillarCellEdge(t *testing.T) {
	m := testMaze(t)
	// cell (1,2), due east: pillar at (2,2) starts at x=200
	hit := CastRay(m, cp.Vector{X: 150, Y: 250}, 0)
	if math.Abs(hit.Distance-50) > 1e-6 {
		t.Fatalf("distance = %v, want 50", hit.Distance)
	}
	if hit.Cell != levels.CellPillar {
		t.Fatalf("cell = %q, want pillar", hit.Cell)
	}
	if math.Abs(hit.X-200) > 1e-6 || math.Abs(hit.Y-250) > 1e-6 {
		t.Fatalf("impact = (%v,%v), want (200,250)", hit.X, hit.Y)
	}
}

func TestCastRayDiagonalPerpendicularDistance(t *testing.T) {
	m := testMaze(t)
	// 45 degrees from the cell center: first solid cell is the pillar at
	// (2,2); the x-side is crossed first, so the perpendicular distance is
	// the distance to x=200 along the ray's x component.
	hit := CastRay(m, cp.Vector{X: 150, Y: 150}, math.Pi/4)
	want := 50 / math.Cos(math.Pi/4)
	if math.Abs(hit.Distance-want) > 1e-6 {
		t.Fatalf("distance = %v, want %v", hit.Distance, want)
	}
}

func TestCastRayEscapesOpenGrid(t *testing.T) {
	m, err := levels.ParseMaze([]byte("   \n   \n   "))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	hit := CastRay(m, cp.Vector{X: 150, Y: 150}, 0)
	if hit.Distance != missDistance {
		t.Fatalf("expected miss distance %v, got %v", missDistance, hit.Distance)
	}
	if hit.Cell != levels.CellOpen {
		t.Fatalf("miss should report an open cell, got %q", hit.Cell)
	}
}

func TestRenderWorldFillsDepthConsistently(t *testing.T) {
	m := testMaze(t)
	fb := NewFramebuffer(40, 30)
	atlas := LoadAtlas("")

	pose := Pose{Pos: cp.Vector{X: 150, Y: 150}, Angle: 0, FOV: math.Pi / 3}
	RenderWorld(fb, m, pose, atlas, nil, 1)

	// every pixel must have been written: sky, wall, or floor
	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			if fb.At(x, y).A == 0 {
				t.Fatalf("pixel (%d,%d) left unwritten", x, y)
			}
		}
	}
}
