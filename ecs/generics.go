package ecs

import "github.com/forgeplay/scenerun/ecs/component"

// Add attaches a component to an entity, replacing any previous value.
func Add[T any](w *World, e Entity, h component.Handle[T], v T) error {
	if w == nil || !h.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(h.ID(), true).Set(e, &v)
	return nil
}

// Get returns a pointer to the entity's component. Mutations through the
// pointer are visible to every later reader this tick.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	v := w.store(h.ID(), false).Get(int(e.id()))
	if v == nil {
		return nil, false
	}
	p, ok := v.(*T)
	return p, ok
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(h.ID(), false).Has(int(e.id()))
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(h.ID(), false).Remove(int(e.id()))
}

// ForEach visits every alive entity carrying the component, in dense
// (registration) order.
func ForEach[T any](w *World, h component.Handle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(h.ID(), false)
	if s == nil {
		return
	}
	for _, e := range append([]Entity(nil), s.Entities()...) {
		if !w.IsAlive(e) {
			continue
		}
		if p, ok := s.Get(int(e.id())).(*T); ok {
			fn(e, p)
		}
	}
}

// ForEach2 visits entities carrying both components.
func ForEach2[A, B any](w *World, ha component.Handle[A], hb component.Handle[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	ForEach(w, ha, func(e Entity, a *A) {
		if b, ok := Get(w, e, hb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits entities carrying all three components.
func ForEach3[A, B, C any](w *World, ha component.Handle[A], hb component.Handle[B], hc component.Handle[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	ForEach2(w, ha, hb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, hc); ok {
			fn(e, a, b, c)
		}
	})
}
