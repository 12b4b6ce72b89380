package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/prefabs"
)

// NewChaserAt builds a chaser entity from its prefab at a world position.
func NewChaserAt(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.ChaserSpec]("chaser.yaml")
	if err != nil {
		return 0, fmt.Errorf("chaser: %w", err)
	}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.ChaserComponent.Kind(), &component.Chaser{
		Speed:  spec.Speed,
		Script: spec.Script,
	}); err != nil {
		return 0, fmt.Errorf("chaser: add component: %w", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{Pos: pos}); err != nil {
		return 0, fmt.Errorf("chaser: add transform: %w", err)
	}
	if err := ecs.Add(w, ent, component.BillboardComponent.Kind(), &component.Billboard{
		Kind:  spec.Billboard.Kind,
		Scale: spec.Billboard.Scale,
	}); err != nil {
		return 0, fmt.Errorf("chaser: add billboard: %w", err)
	}

	audioComp, err := buildAudioComponent(spec.Audio)
	if err != nil {
		return 0, fmt.Errorf("chaser: %w", err)
	}
	if audioComp != nil {
		if err := ecs.Add(w, ent, component.AudioComponent.Kind(), audioComp); err != nil {
			return 0, fmt.Errorf("chaser: add audio: %w", err)
		}
	}
	return ent, nil
}
