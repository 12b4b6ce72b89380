package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/levels"
)

// BuildLevel populates a fresh world with everything a manifest level names:
// the level state and coin counter singletons, the player at its spawn cell,
// and a coin and chaser entity per maze marker.
func BuildLevel(w *ecs.World, manifest *levels.Manifest, index int) error {
	if w == nil {
		return fmt.Errorf("level: world is nil")
	}
	if manifest == nil || index < 0 || index >= len(manifest.Levels) {
		return fmt.Errorf("level: no manifest entry %d", index)
	}
	entry := manifest.Levels[index]

	maze, err := levels.LoadMaze(entry.Maze)
	if err != nil {
		return fmt.Errorf("level %q: %w", entry.Name, err)
	}

	stateEnt := ecs.CreateEntity(w)
	if err := ecs.Add(w, stateEnt, component.LevelStateComponent.Kind(), &component.LevelState{
		Index: index,
		Name:  entry.Name,
		Music: entry.Music,
		Maze:  maze,
	}); err != nil {
		return fmt.Errorf("level %q: add state: %w", entry.Name, err)
	}

	coins := maze.Coins()
	counterEnt := ecs.CreateEntity(w)
	if err := ecs.Add(w, counterEnt, component.CoinCounterComponent.Kind(), &component.CoinCounter{
		Total: len(coins),
	}); err != nil {
		return fmt.Errorf("level %q: add counter: %w", entry.Name, err)
	}

	spawn, ok := maze.Spawn()
	if !ok {
		return fmt.Errorf("level %q: no walkable spawn cell", entry.Name)
	}
	sx, sy := spawn.Center()
	if _, err := NewPlayerAt(w, cp.Vector{X: sx, Y: sy}, 0); err != nil {
		return fmt.Errorf("level %q: %w", entry.Name, err)
	}

	for _, cell := range coins {
		x, y := cell.Center()
		if _, err := NewCoinAt(w, cp.Vector{X: x, Y: y}); err != nil {
			return fmt.Errorf("level %q: %w", entry.Name, err)
		}
	}

	for _, cell := range maze.Chasers() {
		x, y := cell.Center()
		if _, err := NewChaserAt(w, cp.Vector{X: x, Y: y}); err != nil {
			return fmt.Errorf("level %q: %w", entry.Name, err)
		}
	}

	return nil
}
