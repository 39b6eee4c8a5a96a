package mem

import (
	"sync"
	"unsafe"

	"github.com/hupe1980/dynarray/internal/mmap"
)

// OffHeap allocates byte buffers from anonymous memory mappings.
//
// Buffers live outside the Go heap and must be returned with Free; a buffer
// that is dropped without Free leaks its mapping. OffHeap is safe for
// concurrent use so one instance can back several containers.
type OffHeap struct {
	mu       sync.Mutex
	mappings map[*byte]*mmap.Mapping
}

// NewOffHeap creates an off-heap allocator.
func NewOffHeap() *OffHeap {
	return &OffHeap{
		mappings: make(map[*byte]*mmap.Mapping),
	}
}

// Alloc maps a zero-filled region of n bytes.
func (o *OffHeap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	if n == 0 {
		return []byte{}, nil
	}

	m, err := mmap.MapAnon(n)
	if err != nil {
		return nil, err
	}

	buf := m.Bytes()[:n:n]

	o.mu.Lock()
	o.mappings[unsafe.SliceData(buf)] = m
	o.mu.Unlock()

	return buf, nil
}

// Free unmaps a buffer returned by Alloc. Unknown or empty buffers are ignored.
func (o *OffHeap) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}

	key := unsafe.SliceData(buf)

	o.mu.Lock()
	m, ok := o.mappings[key]
	delete(o.mappings, key)
	o.mu.Unlock()

	if ok {
		_ = m.Close()
	}
}

// Outstanding returns the number of live mappings.
func (o *OffHeap) Outstanding() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.mappings)
}
