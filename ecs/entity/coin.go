package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/prefabs"
)

// NewCoinAt builds a collectible coin entity at a world position.
func NewCoinAt(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.CoinSpec]("coin.yaml")
	if err != nil {
		return 0, fmt.Errorf("coin: %w", err)
	}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.PickupComponent.Kind(), &component.Pickup{
		Kind:   "coin",
		Radius: spec.Radius,
	}); err != nil {
		return 0, fmt.Errorf("coin: add pickup: %w", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{Pos: pos}); err != nil {
		return 0, fmt.Errorf("coin: add transform: %w", err)
	}
	if err := ecs.Add(w, ent, component.BillboardComponent.Kind(), &component.Billboard{
		Kind:  spec.Billboard.Kind,
		Scale: spec.Billboard.Scale,
	}); err != nil {
		return 0, fmt.Errorf("coin: add billboard: %w", err)
	}

	audioComp, err := buildAudioComponent(spec.Audio)
	if err != nil {
		return 0, fmt.Errorf("coin: %w", err)
	}
	if audioComp != nil {
		if err := ecs.Add(w, ent, component.AudioComponent.Kind(), audioComp); err != nil {
			return 0, fmt.Errorf("coin: add audio: %w", err)
		}
	}
	return ent, nil
}
