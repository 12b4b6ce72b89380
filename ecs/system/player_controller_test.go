package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/levels"
)

const roomMazeText = `#####
#   #
#   #
#   #
#####`

func newLevelWorld(t *testing.T, mazeText string) *ecs.World {
	t.Helper()
	m, err := levels.ParseMaze([]byte(mazeText))
	if err != nil {
		t.Fatalf("parse maze: %v", err)
	}
	w := ecs.NewWorld()
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.LevelStateComponent.Kind(), &component.LevelState{Maze: m}); err != nil {
		t.Fatalf("add level state: %v", err)
	}
	return w
}

func newTestPlayer(t *testing.T, w *ecs.World, pos cp.Vector, angle float64) ecs.Entity {
	t.Helper()
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.PlayerComponent.Kind(), &component.Player{
		FOV:       math.Pi / 3,
		MoveSpeed: 10,
		TurnSpeed: 0.1,
	}); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{Pos: pos, Angle: angle}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, ent, component.InputComponent.Kind(), &component.Input{}); err != nil {
		t.Fatalf("add input: %v", err)
	}
	return ent
}

func TestPlayerMovesForward(t *testing.T) {
	w := newLevelWorld(t, roomMazeText)
	ent := newTestPlayer(t, w, cp.Vector{X: 150, Y: 150}, 0)

	input, _ := ecs.Get(w, ent, component.InputComponent.Kind())
	input.Forward = 1

	NewPlayerControllerSystem().Update(w)

	tr, _ := ecs.Get(w, ent, component.TransformComponent.Kind())
	if math.Abs(tr.Pos.X-160) > 1e-9 || math.Abs(tr.Pos.Y-150) > 1e-9 {
		t.Fatalf("expected (160, 150), got (%v, %v)", tr.Pos.X, tr.Pos.Y)
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	w := newLevelWorld(t, roomMazeText)
	// Facing east, one step away from the x=400 wall face.
	ent := newTestPlayer(t, w, cp.Vector{X: 395, Y: 150}, 0)

	input, _ := ecs.Get(w, ent, component.InputComponent.Kind())
	input.Forward = 1

	NewPlayerControllerSystem().Update(w)

	tr, _ := ecs.Get(w, ent, component.TransformComponent.Kind())
	if tr.Pos.X != 395 {
		t.Fatalf("wall should block x movement, got x=%v", tr.Pos.X)
	}
}

func TestPlayerSlidesAlongWall(t *testing.T) {
	w := newLevelWorld(t, roomMazeText)
	ent := newTestPlayer(t, w, cp.Vector{X: 395, Y: 150}, 0)

	input, _ := ecs.Get(w, ent, component.InputComponent.Kind())
	input.Forward = 1
	input.Strafe = 1

	NewPlayerControllerSystem().Update(w)

	tr, _ := ecs.Get(w, ent, component.TransformComponent.Kind())
	if tr.Pos.X != 395 {
		t.Fatalf("x should stay blocked, got %v", tr.Pos.X)
	}
	want := 150 + 10/math.Sqrt2
	if math.Abs(tr.Pos.Y-want) > 1e-9 {
		t.Fatalf("y should keep the parallel component, got %v want %v", tr.Pos.Y, want)
	}
}

func TestPlayerTurns(t *testing.T) {
	w := newLevelWorld(t, roomMazeText)
	ent := newTestPlayer(t, w, cp.Vector{X: 150, Y: 150}, 0)

	input, _ := ecs.Get(w, ent, component.InputComponent.Kind())
	input.Turn = 1

	NewPlayerControllerSystem().Update(w)

	tr, _ := ecs.Get(w, ent, component.TransformComponent.Kind())
	if math.Abs(tr.Pos.X-150) > 1e-9 || math.Abs(tr.Pos.Y-150) > 1e-9 {
		t.Fatal("turning alone should not move the player")
	}
	if math.Abs(tr.Angle-0.1) > 1e-9 {
		t.Fatalf("expected angle 0.1, got %v", tr.Angle)
	}
}
