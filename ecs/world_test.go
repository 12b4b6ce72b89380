package ecs

import (
	"testing"

	"github.com/rmendoza/mazebound/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestSlotReuseInvalidatesOldHandle(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	if !DestroyEntity(w, first) {
		t.Fatalf("destroy failed")
	}
	second := CreateEntity(w)
	if first == second {
		t.Fatalf("reused slot must change generation")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle should be dead")
	}
	if !IsAlive(w, second) {
		t.Fatalf("fresh handle should be alive")
	}
}

func intPtr(i int) *int { return &i }

func stringPtr(s string) *string { return &s }

func TestComponentTable(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	if err := Add(w, e1, h1.Kind(), intPtr(10)); err != nil {
		t.Fatalf("add int: %v", err)
	}
	v, ok := Get(w, e1, h1.Kind())
	if !ok || *v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}

	if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
		t.Fatalf("add string e1: %v", err)
	}
	if err := Add(w, e2, h2.Kind(), stringPtr("b")); err != nil {
		t.Fatalf("add string e2: %v", err)
	}
	if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
		t.Fatalf("expected both entities to have string component")
	}

	// replace keeps a single value per entity
	if err := Add(w, e1, h1.Kind(), intPtr(20)); err != nil {
		t.Fatalf("replace int: %v", err)
	}
	v, _ = Get(w, e1, h1.Kind())
	if *v != 20 {
		t.Fatalf("expected replacement to win, got %d", *v)
	}

	if !Remove(w, e1, h1.Kind()) {
		t.Fatalf("remove should report true")
	}
	if Has(w, e1, h1.Kind()) {
		t.Fatalf("component should be gone after remove")
	}

	if err := Add(w, e1, h1.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}

	DestroyEntity(w, e2)
	if err := Add(w, e2, h1.Kind(), intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(7)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, e)

	// the reused slot must not see the old slot's component
	reborn := CreateEntity(w)
	if Has(w, reborn, h.Kind()) {
		t.Fatalf("reused slot leaked a component from its previous life")
	}
}

func TestForEachAndFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	if _, ok := First(w, h.Kind()); ok {
		t.Fatalf("First on empty table should report false")
	}

	ents := make([]Entity, 3)
	for i := range ents {
		ents[i] = CreateEntity(w)
		if err := Add(w, ents[i], h.Kind(), intPtr(i+1)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if _, ok := First(w, h.Kind()); !ok {
		t.Fatalf("First should find an entity")
	}

	sum := 0
	ForEach(w, h.Kind(), func(_ Entity, v *int) {
		sum += *v
	})
	if sum != 6 {
		t.Fatalf("expected visit sum 6, got %d", sum)
	}

	// destroying inside the callback must not break iteration
	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 3 {
		t.Fatalf("expected 3 visits, got %d", visited)
	}
	if n := len(Entities(w)); n != 0 {
		t.Fatalf("expected empty world, got %d entities", n)
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ha := component.NewComponent[int]()
	hb := component.NewComponent[string]()

	both := CreateEntity(w)
	onlyA := CreateEntity(w)

	if err := Add(w, both, ha.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := Add(w, both, hb.Kind(), stringPtr("x")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := Add(w, onlyA, ha.Kind(), intPtr(2)); err != nil {
		t.Fatalf("add: %v", err)
	}

	matches := 0
	ForEach2(w, ha.Kind(), hb.Kind(), func(e Entity, a *int, b *string) {
		matches++
		if e != both || *a != 1 || *b != "x" {
			t.Fatalf("unexpected match e=%v a=%d b=%q", e, *a, *b)
		}
	})
	if matches != 1 {
		t.Fatalf("expected 1 match, got %d", matches)
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Kind: EventPlayerCaught})
	w.Events().Push(Event{Kind: EventLevelCleared})

	events := w.Events().Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != EventPlayerCaught || events[1].Kind != EventLevelCleared {
		t.Fatalf("events out of order: %v", events)
	}
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("drain should clear the queue, got %v", got)
	}
}
