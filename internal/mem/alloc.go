package mem

import (
	"errors"
	"fmt"
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

var (
	// ErrInvalidSize is returned for negative allocation requests.
	ErrInvalidSize = errors.New("mem: invalid allocation size")
	// ErrOutOfMemory is returned when the runtime refuses an allocation.
	ErrOutOfMemory = errors.New("mem: out of memory")
)

// Allocator hands out buffers of n elements and takes them back.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(buf []T)
}

// Heap allocates from the Go heap.
type Heap[T any] struct{}

// Alloc returns a zeroed buffer of n elements.
// Requests the runtime cannot satisfy (len out of range) are returned as
// ErrOutOfMemory instead of panicking.
func (Heap[T]) Alloc(n int) (buf []T, err error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()

	return make([]T, n), nil
}

// Free is a no-op; the garbage collector reclaims heap buffers.
func (Heap[T]) Free([]T) {}

// Aligned allocates 64-byte aligned byte buffers from the Go heap.
type Aligned struct{}

// Alloc returns an aligned buffer of n bytes.
func (Aligned) Alloc(n int) (buf []byte, err error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	if n == 0 {
		return []byte{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()

	return AllocAligned(n), nil
}

// Free is a no-op; the garbage collector reclaims heap buffers.
func (Aligned) Free([]byte) {}

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// We need enough space to shift the start pointer up to Alignment-1 bytes
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Cap the slice so appends never run into the padding tail.
	end := offset + uintptr(size)
	return buf[offset:end:end]
}

// SizeOf returns the size in bytes of one T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
