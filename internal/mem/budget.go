package mem

import (
	"fmt"

	"github.com/hupe1980/dynarray/internal/conv"
	"github.com/hupe1980/dynarray/resource"
)

// Budget charges every allocation against a resource.Controller.
//
// The byte size of a request is checked against the allocation rate limit
// and then reserved from the memory budget before the inner allocator runs.
// Free returns the reservation.
type Budget[T any] struct {
	inner Allocator[T]
	ctrl  *resource.Controller
	size  int
}

// NewBudget wraps inner with the limits of ctrl.
func NewBudget[T any](inner Allocator[T], ctrl *resource.Controller) *Budget[T] {
	return &Budget[T]{
		inner: inner,
		ctrl:  ctrl,
		size:  SizeOf[T](),
	}
}

// Alloc reserves the request from the controller, then allocates.
func (b *Budget[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}

	bytes, err := conv.MulInt(n, b.size)
	if err != nil {
		return nil, err
	}

	if !b.ctrl.TryAcquireAlloc(bytes) {
		return nil, fmt.Errorf("%d bytes: %w", bytes, resource.ErrAllocRateExceeded)
	}

	if err := b.ctrl.AcquireMemory(conv.IntToInt64(bytes)); err != nil {
		return nil, fmt.Errorf("%d bytes: %w", bytes, err)
	}

	buf, err := b.inner.Alloc(n)
	if err != nil {
		b.ctrl.ReleaseMemory(conv.IntToInt64(bytes))
		return nil, err
	}

	return buf, nil
}

// Free releases buf and returns its reservation.
func (b *Budget[T]) Free(buf []T) {
	b.ctrl.ReleaseMemory(conv.IntToInt64(len(buf) * b.size))
	b.inner.Free(buf)
}
