package dynarray

import "github.com/hupe1980/dynarray/internal/mem"

// Allocator provides the backing buffers of a Raw container.
//
// Alloc must return a buffer of exactly n bytes or a non-nil error. Free
// receives every buffer the container no longer needs, exactly once.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(buf []byte)
}

// HeapAllocator returns an allocator backed by the Go heap (the default).
func HeapAllocator() Allocator {
	return mem.Heap[byte]{}
}

// AlignedAllocator returns a Go heap allocator whose buffers start on a
// 64-byte boundary, suitable for SIMD access to the raw bytes.
func AlignedAllocator() Allocator {
	return mem.Aligned{}
}

// OffHeapAllocator returns an allocator that places buffers in anonymous
// memory mappings outside the Go heap. Containers using it must be
// destroyed explicitly; a dropped container leaks its mapping.
// The allocator is safe to share between containers.
func OffHeapAllocator() Allocator {
	return mem.NewOffHeap()
}
