package generic

import "sync"

type Pool[T any] struct {
	pool sync.Pool
}

func NewPool[T any](generate func() T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return generate()
			},
		},
	}
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *Pool[T]) Put(value T) {
	p.pool.Put(value)
}

// SlicePool recycles slices of T, truncating on Put so callers always get an
// empty slice with whatever capacity the previous user grew it to.
type SlicePool[T any] struct {
	pool Pool[[]T]
}

func NewSlicePool[T any](initialCap int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: *NewPool(func() []T {
			return make([]T, 0, initialCap)
		}),
	}
}

func (p *SlicePool[T]) Get() []T {
	return p.pool.Get()
}

func (p *SlicePool[T]) Put(s []T) {
	var zero T
	for i := range s {
		s[i] = zero
	}
	p.pool.Put(s[:0])
}
