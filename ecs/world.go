package ecs

import "github.com/forgeplay/scenerun/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities and component stores. Component access goes through
// the typed helpers in generics.go.
type World struct {
	entities entityStore
	stores   map[component.ID]*SparseSet

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(int(e.id()))
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

func (w *World) store(id component.ID, create bool) *SparseSet {
	if w == nil || id == 0 {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Query returns all alive entities that carry every listed component.
func (w *World) Query(ids ...component.ID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}

	// iterate the smallest store
	var base *SparseSet
	for _, id := range ids {
		s := w.store(id, false)
		if s == nil {
			return nil
		}
		if base == nil || s.Len() < base.Len() {
			base = s
		}
	}

	out := make([]Entity, 0, base.Len())
outer:
	for _, e := range base.Entities() {
		if !w.IsAlive(e) {
			continue
		}
		for _, id := range ids {
			if !w.store(id, false).Has(int(e.id())) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns the first alive entity carrying the component, in dense
// (registration) order.
func (w *World) First(id component.ID) (Entity, bool) {
	s := w.store(id, false)
	if s == nil {
		return 0, false
	}
	for _, e := range s.Entities() {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
