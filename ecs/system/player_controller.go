package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/common"
	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/levels"
)

// PlayerControllerSystem applies movement intent to the player transform,
// sliding along walls by resolving each axis independently.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	maze := currentMaze(w)
	if maze == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, player *component.Player, t *component.Transform) {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok || input == nil {
			return
		}

		t.Angle += input.Turn * player.TurnSpeed
		t.Angle += input.MouseTurn * player.MouseSensitivity
		t.Angle = common.WrapAngle(t.Angle)

		dir := cp.Vector{X: math.Cos(t.Angle), Y: math.Sin(t.Angle)}
		side := cp.Vector{X: -dir.Y, Y: dir.X}
		move := dir.Mult(input.Forward).Add(side.Mult(input.Strafe))
		if move.Length() > 1 {
			move = move.Normalize()
		}
		move = move.Mult(player.MoveSpeed)

		t.Pos = slideMove(maze, t.Pos, move)
	})
}

// slideMove advances pos by delta, testing each axis separately so motion
// into a wall keeps its parallel component.
func slideMove(m *levels.Maze, pos, delta cp.Vector) cp.Vector {
	if m.CanMoveTo(pos.X+delta.X, pos.Y) {
		pos.X += delta.X
	}
	if m.CanMoveTo(pos.X, pos.Y+delta.Y) {
		pos.Y += delta.Y
	}
	return pos
}

// currentMaze returns the maze held by the LevelState singleton, if any.
func currentMaze(w *ecs.World) *levels.Maze {
	ent, ok := ecs.First(w, component.LevelStateComponent.Kind())
	if !ok {
		return nil
	}
	state, ok := ecs.Get(w, ent, component.LevelStateComponent.Kind())
	if !ok || state == nil {
		return nil
	}
	return state.Maze
}
