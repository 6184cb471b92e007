package world

import "reflect"

// EntityID identifies a spawned entity. IDs are never reused.
type EntityID uint64

type entityStore struct {
	nextID  EntityID
	records map[EntityID]map[reflect.Type]any
}

func (s *entityStore) init() {
	if s.records == nil {
		s.records = make(map[EntityID]map[reflect.Type]any)
	}
}

// Spawn creates an empty entity and returns its ID.
func (w *World) Spawn() EntityID {
	w.entities.init()
	w.entities.nextID++
	id := w.entities.nextID
	w.entities.records[id] = make(map[reflect.Type]any)
	return id
}

// Despawn removes an entity and all its components. Reports whether the
// entity existed.
func (w *World) Despawn(id EntityID) bool {
	if _, ok := w.entities.records[id]; !ok {
		return false
	}
	delete(w.entities.records, id)
	return true
}

// Alive reports whether an entity exists.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities.records[id]
	return ok
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.entities.records)
}

// AttachComponent sets the component of its concrete type on an entity.
// Reports whether the entity existed.
func (w *World) AttachComponent(id EntityID, component any) bool {
	rec, ok := w.entities.records[id]
	if !ok {
		return false
	}
	rec[reflect.TypeOf(component)] = component
	return true
}

// ComponentOf returns the component of type T attached to an entity.
func ComponentOf[T any](w *World, id EntityID) (T, bool) {
	var zero T
	rec, ok := w.entities.records[id]
	if !ok {
		return zero, false
	}
	c, ok := rec[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	return c.(T), true
}

// CountWith returns how many live entities carry a component of type T.
func CountWith[T any](w *World) int {
	t := reflect.TypeFor[T]()
	n := 0
	for _, rec := range w.entities.records {
		if _, ok := rec[t]; ok {
			n++
		}
	}
	return n
}
