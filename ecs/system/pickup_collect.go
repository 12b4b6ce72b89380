package system

import (
	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
)

// PickupCollectSystem collects pickups the player walks into and advances
// the coin counter. Clearing the last coin raises EventLevelCleared.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	playerTransform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok || playerTransform == nil {
		return
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		if pickup == nil || t == nil {
			return
		}

		radius := pickup.Radius
		if radius <= 0 {
			radius = 30
		}
		if playerTransform.Pos.Distance(t.Pos) > radius {
			return
		}

		if audioComp, has := ecs.Get(w, e, component.AudioComponent.Kind()); has {
			audioComp.TriggerSound("collect")
		}

		if counterEnt, found := ecs.First(w, component.CoinCounterComponent.Kind()); found {
			if counter, has := ecs.Get(w, counterEnt, component.CoinCounterComponent.Kind()); has && counter != nil {
				counter.Collected++
				if counter.Total > 0 && counter.Collected >= counter.Total {
					w.Events().Push(ecs.Event{Kind: ecs.EventLevelCleared, Entity: e})
				}
			}
		}

		// AudioSystem runs before this system in the scheduler. Destroying
		// immediately would drop the queued collect sound, so strip the
		// pickup behavior and sprite now and let a short TTL reap it.
		_ = ecs.Remove(w, e, component.PickupComponent.Kind())
		_ = ecs.Remove(w, e, component.BillboardComponent.Kind())
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 2})
	})
}
