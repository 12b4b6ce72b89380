package ecs

import "github.com/rmendoza/mazebound/ecs/component"

// World owns entities and component tables. All access goes through the
// package-level generic helpers; systems never touch storage directly.
type World struct {
	entities entityStore
	tables   map[component.ComponentID]*sparseSet
	events   EventQueue
}

func NewWorld() *World {
	return &World{
		tables: make(map[component.ComponentID]*sparseSet),
	}
}

func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes the entity and every component attached to it.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, table := range w.tables {
		table.remove(e.id())
	}
	w.entities.destroy(e)
	return true
}

func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity handle.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.alive()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) table(id component.ComponentID) *sparseSet {
	if w == nil || id == 0 {
		return nil
	}
	t, ok := w.tables[id]
	if !ok {
		t = &sparseSet{}
		w.tables[id] = t
	}
	return t
}

func (w *World) lookup(id component.ComponentID) *sparseSet {
	if w == nil {
		return nil
	}
	return w.tables[id]
}

// entityStore tracks slot generations and a free list.
type entityStore struct {
	generations []generation
	free        []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.generations = append(s.generations, 0)
		id = entityID(len(s.generations))
	}
	return makeEntity(id, s.generations[id-1])
}

func (s *entityStore) destroy(e Entity) {
	id := e.id()
	if id == 0 || int(id) > len(s.generations) {
		return
	}
	if s.generations[id-1] != e.generation() {
		return
	}
	s.generations[id-1]++
	s.free = append(s.free, id)
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.generations) {
		return false
	}
	return s.generations[id-1] == e.generation()
}

func (s *entityStore) alive() []Entity {
	free := make(map[entityID]struct{}, len(s.free))
	for _, id := range s.free {
		free[id] = struct{}{}
	}
	out := make([]Entity, 0, len(s.generations)-len(s.free))
	for i, gen := range s.generations {
		id := entityID(i + 1)
		if _, dead := free[id]; dead {
			continue
		}
		out = append(out, makeEntity(id, gen))
	}
	return out
}
