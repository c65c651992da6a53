// Package pool provides pooled slices to reduce allocations in hot
// traversal paths (level-order frontiers, zigzag level buffers).
package pool

import "sync"

// Slices is a typed pool of reusable slices.
type Slices[T any] struct {
	pool sync.Pool
	cap  int
}

// NewSlices creates a pool handing out slices with the given initial
// capacity.
func NewSlices[T any](initialCap int) *Slices[T] {
	if initialCap <= 0 {
		initialCap = 16
	}
	return &Slices[T]{
		pool: sync.Pool{
			New: func() any {
				s := make([]T, 0, initialCap)
				return &s
			},
		},
		cap: initialCap,
	}
}

// Acquire gets an empty slice from the pool.
func (p *Slices[T]) Acquire() *[]T {
	s := p.pool.Get().(*[]T)
	*s = (*s)[:0]
	return s
}

// Release returns a slice to the pool. Oversized slices are dropped so a
// single huge tree does not pin memory for every later caller.
func (p *Slices[T]) Release(s *[]T) {
	if s == nil {
		return
	}
	if cap(*s) <= p.cap*64 {
		p.pool.Put(s)
	}
}
