package slots

import (
	"github.com/hupe1980/dynarray/internal/assert"
	"github.com/hupe1980/dynarray/internal/conv"
	"github.com/hupe1980/dynarray/internal/mem"
)

const (
	// MinimumCapacity is the smallest slot count of an initialized buffer.
	MinimumCapacity = 2
	// GrowthFactor scales the size when computing a new capacity.
	GrowthFactor = 2
	// ShrinkDivisor defines the shrink threshold as capacity/ShrinkDivisor.
	ShrinkDivisor = 4
)

// Observer receives buffer events. Implementations must not call back into
// the container.
type Observer interface {
	// OnReallocate is called after every reallocation attempt.
	OnReallocate(from, to, bytes int, err error)
	// OnShift is called after an insert or erase moved elements.
	OnShift(elements int)
}

// Config configures a Slots buffer.
type Config[T any] struct {
	// Allocator provides buffers. Defaults to mem.Heap.
	Allocator mem.Allocator[T]
	// Observer receives reallocation and shift events. May be nil.
	Observer Observer
	// NoShrink disables the shrink check after removals.
	NoShrink bool
}

// Slots is a contiguous buffer of fixed-width slots.
// The zero value is uninitialized.
type Slots[T any] struct {
	data     []T
	size     int
	capacity int
	stride   int
	live     bool
	epoch    uint64
	cfg      Config[T]
}

// Init allocates max(MinimumCapacity, capacity) slots of stride elements.
func (s *Slots[T]) Init(capacity, stride int, cfg Config[T]) error {
	assert.That(!s.live, "init on a live container")
	if s.live {
		return ErrAlreadyInitialized
	}
	if capacity < 0 || stride < 0 {
		return ErrNegativeSize
	}
	if cfg.Allocator == nil {
		cfg.Allocator = mem.Heap[T]{}
	}

	capacity = max(MinimumCapacity, capacity)

	s.cfg = cfg
	s.stride = stride

	buf, err := s.allocate(capacity)
	if err != nil {
		return err
	}

	s.data = buf
	s.size = 0
	s.capacity = capacity
	s.live = true
	s.epoch++

	return nil
}

// Release frees the buffer. It is safe to call on an uninitialized buffer.
func (s *Slots[T]) Release() {
	if !s.live {
		return
	}
	s.cfg.Allocator.Free(s.data)
	s.data = nil
	s.size = 0
	s.capacity = 0
	s.live = false
	s.epoch++
}

// Live reports whether the buffer is initialized.
func (s *Slots[T]) Live() bool { return s.live }

// Len returns the number of logical slots.
func (s *Slots[T]) Len() int { return s.size }

// Cap returns the number of allocated slots.
func (s *Slots[T]) Cap() int { return s.capacity }

// Stride returns the number of T per slot.
func (s *Slots[T]) Stride() int { return s.stride }

// Epoch returns the invalidation counter.
func (s *Slots[T]) Epoch() uint64 { return s.epoch }

// Config returns the buffer configuration.
func (s *Slots[T]) Config() Config[T] { return s.cfg }

// Data returns the live prefix of the buffer (size*stride elements).
func (s *Slots[T]) Data() []T {
	if !s.live {
		return nil
	}
	n := s.size * s.stride
	return s.data[:n:n]
}

// Slot returns the elements of slot index, or nil when the index is not a
// live slot.
func (s *Slots[T]) Slot(index int) []T {
	if !s.live || s.stride == 0 || index < 0 || index >= s.size {
		return nil
	}
	off := index * s.stride
	end := off + s.stride
	return s.data[off:end:end]
}

func (s *Slots[T]) checkElements() error {
	assert.That(s.live, "element operation on an uninitialized container")
	if !s.live {
		return ErrNotInitialized
	}
	assert.That(s.stride != 0, "element operation with zero element size")
	if s.stride == 0 {
		return ErrZeroElementSize
	}
	return nil
}

func (s *Slots[T]) checkElement(elem []T) error {
	if err := s.checkElements(); err != nil {
		return err
	}
	if len(elem) != s.stride {
		return ErrElementSize
	}
	return nil
}

// PushBack appends one slot. Amortized O(1).
func (s *Slots[T]) PushBack(elem []T) error {
	if err := s.checkElement(elem); err != nil {
		return err
	}

	if s.shouldGrow() {
		if err := s.grow(); err != nil {
			return err
		}
	}

	off := s.size * s.stride
	copy(s.data[off:off+s.stride], elem)
	s.size++

	return nil
}

// Insert places elem at index, shifting [index, size) one slot right.
// index may equal size.
func (s *Slots[T]) Insert(index int, elem []T) error {
	if err := s.checkElement(elem); err != nil {
		return err
	}
	assert.That(index >= 0 && index <= s.size, "insert index %d outside [0, %d]", index, s.size)
	if index < 0 || index > s.size {
		return &IndexError{Index: index, Size: s.size}
	}

	if s.shouldGrow() {
		if err := s.grow(); err != nil {
			return err
		}
	}

	off := index * s.stride
	end := s.size * s.stride
	// copy is overlap-safe
	copy(s.data[off+s.stride:end+s.stride], s.data[off:end])
	copy(s.data[off:off+s.stride], elem)
	s.size++
	s.epoch++
	s.notifyShift(s.size - 1 - index)

	return nil
}

// Assign overwrites slot index in place.
func (s *Slots[T]) Assign(index int, elem []T) error {
	if err := s.checkElement(elem); err != nil {
		return err
	}
	assert.That(index >= 0 && index < s.size, "assign index %d outside [0, %d)", index, s.size)
	if index < 0 || index >= s.size {
		return &IndexError{Index: index, Size: s.size}
	}

	off := index * s.stride
	copy(s.data[off:off+s.stride], elem)

	return nil
}

// PopBack drops the last slot. Its bytes are left in place.
func (s *Slots[T]) PopBack() error {
	if err := s.checkElements(); err != nil {
		return err
	}
	assert.That(s.size > 0, "pop from an empty container")
	if s.size == 0 {
		return ErrEmpty
	}

	s.size--
	s.maybeShrink()

	return nil
}

// Erase removes slot index, shifting (index, size) one slot left.
func (s *Slots[T]) Erase(index int) error {
	if err := s.checkElements(); err != nil {
		return err
	}
	assert.That(index >= 0 && index < s.size, "erase index %d outside [0, %d)", index, s.size)
	if index < 0 || index >= s.size {
		return &IndexError{Index: index, Size: s.size}
	}

	off := index * s.stride
	end := s.size * s.stride
	copy(s.data[off:end-s.stride], s.data[off+s.stride:end])
	s.size--
	s.epoch++
	s.notifyShift(s.size - index)
	s.maybeShrink()

	return nil
}

// Resize sets the logical size to n. The buffer is reallocated to
// n*GrowthFactor slots when n exceeds the capacity or drops to a quarter of
// it. Slots exposed by growing keep whatever bytes they held.
func (s *Slots[T]) Resize(n int) error {
	if !s.live {
		return ErrNotInitialized
	}
	if n < 0 {
		return ErrNegativeSize
	}

	if n <= s.capacity/ShrinkDivisor || n > s.capacity {
		target, err := conv.MulInt(n, GrowthFactor)
		if err != nil {
			return &AllocationError{Capacity: n, cause: err}
		}
		if err := s.reallocate(target, min(s.size, n)); err != nil {
			return err
		}
	}

	s.size = n

	return nil
}

// Reserve grows the capacity to exactly n slots if it is smaller.
func (s *Slots[T]) Reserve(n int) error {
	if !s.live {
		return ErrNotInitialized
	}
	if n < 0 {
		return ErrNegativeSize
	}
	if n > s.capacity {
		return s.reallocate(n, s.size)
	}
	return nil
}

// ShrinkToFit reallocates to exactly size slots, subject to the floor.
func (s *Slots[T]) ShrinkToFit() error {
	if !s.live {
		return ErrNotInitialized
	}
	return s.reallocate(s.size, s.size)
}

// Clear empties the buffer and returns the capacity to the floor.
func (s *Slots[T]) Clear() error {
	return s.Resize(0)
}

func (s *Slots[T]) shouldGrow() bool {
	assert.That(s.size <= s.capacity, "size %d exceeds capacity %d", s.size, s.capacity)
	return s.size == s.capacity
}

func (s *Slots[T]) shouldShrink() bool {
	assert.That(s.size <= s.capacity, "size %d exceeds capacity %d", s.size, s.capacity)
	return !s.cfg.NoShrink && s.size == s.capacity/ShrinkDivisor
}

func (s *Slots[T]) grow() error {
	return s.reallocate(s.adjustedCapacity(), s.size)
}

// maybeShrink runs after a removal. The removal has already happened, so a
// failed shrink is reported to the observer only.
func (s *Slots[T]) maybeShrink() {
	if s.shouldShrink() {
		_ = s.reallocate(s.adjustedCapacity(), s.size)
	}
}

func (s *Slots[T]) adjustedCapacity() int {
	return max(1, s.size*GrowthFactor)
}

// reallocate moves the first keep slots into a buffer of capacity slots.
func (s *Slots[T]) reallocate(capacity, keep int) error {
	if capacity < MinimumCapacity {
		if s.capacity > MinimumCapacity {
			capacity = MinimumCapacity
		} else {
			return nil
		}
	}
	if capacity == s.capacity {
		return nil
	}
	assert.That(keep <= capacity, "keeping %d slots in capacity %d", keep, capacity)

	from := s.capacity

	buf, err := s.allocate(capacity)
	if err != nil {
		s.notifyReallocate(from, capacity, 0, err)
		return err
	}

	n := keep * s.stride
	copy(buf[:n], s.data[:n])
	s.cfg.Allocator.Free(s.data)

	s.data = buf
	s.capacity = capacity
	s.epoch++
	s.notifyReallocate(from, capacity, len(buf)*mem.SizeOf[T](), nil)

	return nil
}

func (s *Slots[T]) allocate(capacity int) ([]T, error) {
	n, err := conv.MulInt(capacity, s.stride)
	if err != nil {
		return nil, &AllocationError{Capacity: capacity, cause: err}
	}
	bytes, err := conv.MulInt(n, mem.SizeOf[T]())
	if err != nil {
		return nil, &AllocationError{Capacity: capacity, cause: err}
	}

	buf, err := s.cfg.Allocator.Alloc(n)
	if err != nil {
		return nil, &AllocationError{Capacity: capacity, Bytes: bytes, cause: err}
	}
	if len(buf) != n {
		s.cfg.Allocator.Free(buf)
		return nil, &AllocationError{Capacity: capacity, Bytes: bytes}
	}

	return buf, nil
}

func (s *Slots[T]) notifyReallocate(from, to, bytes int, err error) {
	if s.cfg.Observer != nil {
		s.cfg.Observer.OnReallocate(from, to, bytes, err)
	}
}

func (s *Slots[T]) notifyShift(elements int) {
	if s.cfg.Observer != nil && elements > 0 {
		s.cfg.Observer.OnShift(elements)
	}
}
