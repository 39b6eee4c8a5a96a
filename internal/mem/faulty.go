package mem

import (
	"errors"
	"sync"
)

// ErrInjected is the default error returned by Faulty.
var ErrInjected = errors.New("mem: injected allocation fault")

// Faulty wraps an allocator and fails allocations on demand.
type Faulty[T any] struct {
	inner Allocator[T]

	mu        sync.Mutex
	failAfter int // successful allocations left before failing; -1 disables
	err       error
	allocs    int
	frees     int
}

// NewFaulty wraps inner (or Heap when nil). Faults are disabled initially.
func NewFaulty[T any](inner Allocator[T]) *Faulty[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Faulty[T]{
		inner:     inner,
		failAfter: -1,
		err:       ErrInjected,
	}
}

// FailAfter lets n more allocations succeed, then fails every following one.
// A negative n disables fault injection.
func (f *Faulty[T]) FailAfter(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAfter = n
}

// SetError overrides the injected error.
func (f *Faulty[T]) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Alloc delegates to the inner allocator unless a fault is due.
func (f *Faulty[T]) Alloc(n int) ([]T, error) {
	f.mu.Lock()
	if f.failAfter == 0 {
		err := f.err
		f.mu.Unlock()
		return nil, err
	}
	if f.failAfter > 0 {
		f.failAfter--
	}
	f.mu.Unlock()

	buf, err := f.inner.Alloc(n)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.allocs++
	f.mu.Unlock()

	return buf, nil
}

// Free delegates to the inner allocator.
func (f *Faulty[T]) Free(buf []T) {
	f.mu.Lock()
	f.frees++
	f.mu.Unlock()
	f.inner.Free(buf)
}

// Outstanding returns successful allocations minus frees.
func (f *Faulty[T]) Outstanding() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allocs - f.frees
}

// Allocs returns the number of successful allocations.
func (f *Faulty[T]) Allocs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allocs
}
