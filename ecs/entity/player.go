package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/prefabs"
)

// NewPlayerAt builds the player entity from its prefab at a world position.
func NewPlayerAt(w *ecs.World, pos cp.Vector, angle float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.PlayerSpec]("player.yaml")
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	fov := spec.FOVDegrees * math.Pi / 180
	if fov <= 0 {
		fov = math.Pi / 3
	}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.PlayerComponent.Kind(), &component.Player{
		FOV:              fov,
		MoveSpeed:        spec.MoveSpeed,
		TurnSpeed:        spec.TurnSpeed,
		MouseSensitivity: spec.MouseSensitivity,
	}); err != nil {
		return 0, fmt.Errorf("player: add component: %w", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{Pos: pos, Angle: angle}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, ent, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	audioComp, err := buildAudioComponent(spec.Audio)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if audioComp != nil {
		if err := ecs.Add(w, ent, component.AudioComponent.Kind(), audioComp); err != nil {
			return 0, fmt.Errorf("player: add audio: %w", err)
		}
	}
	return ent, nil
}
