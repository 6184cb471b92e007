package world

import (
	"fmt"
	"reflect"
)

// ResourceScope temporarily takes the R resource out of the world and runs fn
// with mutable access to both the extracted resource and the rest of the
// world. The resource is restored on every exit path, including a panic
// inside fn.
//
// While the resource is out, its slot holds a borrow marker. A nested
// ResourceScope over the same type hits that marker and panics: reentrant
// extraction means some system is trying to re-enter the exclusive borrow it
// is already running under, and continuing would alias mutable state.
//
// If no R resource exists yet, a zero value is created first, so resources
// with a usable zero value (like the system registry) need no explicit setup.
func ResourceScope[R any](w *World, fn func(w *World, r *R)) {
	t := reflect.TypeFor[R]()
	s := w.slot(t)
	if s.borrowed {
		panic(fmt.Sprintf("world: resource %s is already borrowed; recursive access is not supported", t))
	}
	if s.value == nil {
		s.value = new(R)
		s.changed = w.tick
	}

	r := s.value.(*R)
	s.value = nil
	s.borrowed = true
	defer func() {
		s.value = r
		s.borrowed = false
	}()

	fn(w, r)
}
