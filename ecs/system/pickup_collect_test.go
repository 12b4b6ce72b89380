package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
)

func addCoin(t *testing.T, w *ecs.World, pos cp.Vector) ecs.Entity {
	t.Helper()
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.PickupComponent.Kind(), &component.Pickup{Kind: "coin", Radius: 35}); err != nil {
		t.Fatalf("add pickup: %v", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{Pos: pos}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, ent, component.BillboardComponent.Kind(), &component.Billboard{Kind: "coin", Scale: 0.4}); err != nil {
		t.Fatalf("add billboard: %v", err)
	}
	return ent
}

func addCoinCounter(t *testing.T, w *ecs.World, total int) *component.CoinCounter {
	t.Helper()
	ent := ecs.CreateEntity(w)
	counter := &component.CoinCounter{Total: total}
	if err := ecs.Add(w, ent, component.CoinCounterComponent.Kind(), counter); err != nil {
		t.Fatalf("add counter: %v", err)
	}
	return counter
}

func TestCollectCoinInRange(t *testing.T) {
	w := newLevelWorld(t, roomMazeText)
	newTestPlayer(t, w, cp.Vector{X: 150, Y: 150}, 0)
	counter := addCoinCounter(t, w, 2)
	coin := addCoin(t, w, cp.Vector{X: 170, Y: 150})
	far := addCoin(t, w, cp.Vector{X: 350, Y: 350})

	NewPickupCollectSystem().Update(w)

	if counter.Collected != 1 {
		t.Fatalf("expected 1 collected, got %d", counter.Collected)
	}
	if ecs.Has(w, coin, component.PickupComponent.Kind()) {
		t.Fatal("collected coin should lose its pickup component")
	}
	if ecs.Has(w, coin, component.BillboardComponent.Kind()) {
		t.Fatal("collected coin should stop rendering")
	}
	if !ecs.Has(w, coin, component.TTLComponent.Kind()) {
		t.Fatal("collected coin should be scheduled for destruction")
	}
	if !ecs.Has(w, far, component.PickupComponent.Kind()) {
		t.Fatal("out-of-range coin should remain")
	}
	if events := w.Events().Drain(); len(events) != 0 {
		t.Fatalf("no event until the last coin: %v", events)
	}
}

func TestLastCoinRaisesLevelCleared(t *testing.T) {
	w := newLevelWorld(t, roomMazeText)
	newTestPlayer(t, w, cp.Vector{X: 150, Y: 150}, 0)
	counter := addCoinCounter(t, w, 1)
	addCoin(t, w, cp.Vector{X: 160, Y: 150})

	NewPickupCollectSystem().Update(w)

	if counter.Collected != 1 {
		t.Fatalf("expected 1 collected, got %d", counter.Collected)
	}
	events := w.Events().Drain()
	if len(events) != 1 || events[0].Kind != ecs.EventLevelCleared {
		t.Fatalf("expected level cleared event, got %v", events)
	}
}

func TestTTLReapsCollectedCoin(t *testing.T) {
	w := ecs.NewWorld()
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.TTLComponent.Kind(), &component.TTL{Frames: 2}); err != nil {
		t.Fatalf("add ttl: %v", err)
	}

	sys := NewTTLSystem()
	sys.Update(w)
	if !ecs.IsAlive(w, ent) {
		t.Fatal("entity should survive the first frame")
	}
	sys.Update(w)
	if ecs.IsAlive(w, ent) {
		t.Fatal("entity should be destroyed when the TTL expires")
	}
}
