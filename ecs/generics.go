package ecs

import "github.com/rmendoza/mazebound/ecs/component"

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.table(kind.ID()).set(e.id(), value)
	return nil
}

// Get returns the component of the given kind on e, if present.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.lookup(kind.ID()).get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return false
	}
	return w.lookup(kind.ID()).remove(e.id())
}

// First returns any one entity carrying the given kind. Intended for
// singleton components (music player, coin counter, level state).
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !kind.Valid() {
		return 0, false
	}
	t := w.lookup(kind.ID())
	if t.len() == 0 {
		return 0, false
	}
	id := t.denseIDs[0]
	return makeEntity(id, w.entities.generations[id-1]), true
}

// ForEach visits every entity carrying the given kind. The callback may add
// or remove components; iteration works over a snapshot of the dense ids.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || !kind.Valid() || fn == nil {
		return
	}
	t := w.lookup(kind.ID())
	if t.len() == 0 {
		return
	}
	ids := append([]entityID(nil), t.denseIDs...)
	for _, id := range ids {
		ent := makeEntity(id, w.entities.generations[id-1])
		if !w.entities.isAlive(ent) {
			continue
		}
		v, ok := t.get(id).(*T)
		if !ok || v == nil {
			continue
		}
		fn(ent, v)
	}
}

// ForEach2 visits entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}
