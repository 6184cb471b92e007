package world

import (
	"fmt"
	"reflect"
)

// World is the shared mutable state container systems read and mutate:
// typed singleton resources with change-version bookkeeping, a flat entity
// store, and a queue of deferred commands. A World is not safe for concurrent
// use; all access goes through one exclusive caller at a time.
type World struct {
	tick      uint64
	resources map[reflect.Type]*resourceSlot
	entities  entityStore
	queue     CommandQueue
}

type resourceSlot struct {
	value any
	// tick of the last mutation; first insertion counts
	changed uint64
	// set while the resource is taken out via ResourceScope
	borrowed bool
}

func New() *World {
	return &World{
		tick:      1,
		resources: make(map[reflect.Type]*resourceSlot),
	}
}

// Tick returns the current change tick.
func (w *World) Tick() uint64 { return w.tick }

// AdvanceTick bumps the change tick. A system calls this after it runs so
// change detection is scoped to "since this system last ran".
func (w *World) AdvanceTick() { w.tick++ }

// Queue returns the world's deferred command queue.
func (w *World) Queue() *CommandQueue { return &w.queue }

func (w *World) slot(t reflect.Type) *resourceSlot {
	s, ok := w.resources[t]
	if !ok {
		s = &resourceSlot{}
		w.resources[t] = s
	}
	return s
}

// InsertResource stores value as the singleton of its type, replacing any
// previous value and marking the resource changed.
func InsertResource[T any](w *World, value T) {
	s := w.slot(reflect.TypeFor[T]())
	if s.borrowed {
		panic(fmt.Sprintf("world: resource %s is borrowed", reflect.TypeFor[T]()))
	}
	s.value = &value
	s.changed = w.tick
}

// InitResource inserts the zero value of T if no T resource exists yet.
func InitResource[T any](w *World) {
	if !HasResource[T](w) {
		var zero T
		InsertResource(w, zero)
	}
}

// HasResource reports whether a T resource is present and not borrowed.
func HasResource[T any](w *World) bool {
	s, ok := w.resources[reflect.TypeFor[T]()]
	return ok && !s.borrowed && s.value != nil
}

// Resource returns the T resource for reading. The second result is false if
// it was never inserted.
func Resource[T any](w *World) (*T, bool) {
	s, ok := w.resources[reflect.TypeFor[T]()]
	if !ok || s.borrowed || s.value == nil {
		return nil, false
	}
	return s.value.(*T), true
}

// ResourceMut returns the T resource for writing and marks it changed at the
// current tick. Panics if the resource is absent; insert it first.
func ResourceMut[T any](w *World) *T {
	t := reflect.TypeFor[T]()
	s, ok := w.resources[t]
	if !ok || s.borrowed || s.value == nil {
		panic(fmt.Sprintf("world: resource %s not found", t))
	}
	s.changed = w.tick
	return s.value.(*T)
}

// SetChanged force-marks the T resource changed at the current tick without
// touching its value.
func SetChanged[T any](w *World) {
	if s, ok := w.resources[reflect.TypeFor[T]()]; ok {
		s.changed = w.tick
	}
}

// ResourceChangedSince reports whether the T resource was mutated after the
// given tick. Absent resources report false.
func ResourceChangedSince[T any](w *World, since uint64) bool {
	s, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return false
	}
	return s.changed > since
}
