package dynarray

import (
	"fmt"
	"iter"

	"github.com/hupe1980/dynarray/internal/assert"
	"github.com/hupe1980/dynarray/internal/slots"
)

const (
	// MinimumCapacity is the smallest capacity of an initialized container.
	MinimumCapacity = slots.MinimumCapacity
	// GrowthFactor scales the size when a container grows or shrinks.
	GrowthFactor = slots.GrowthFactor
	// ShrinkDivisor places the shrink threshold at Cap()/ShrinkDivisor.
	ShrinkDivisor = slots.ShrinkDivisor
)

// Raw is a growable contiguous buffer of fixed-size byte elements.
//
// The element size is chosen at Setup. Elements are copied in and out as
// byte slices of exactly ElementSize bytes; Raw attaches no meaning to them.
//
// The zero value is an uninitialized container: call Setup (or use NewRaw)
// before any element operation, and Destroy when done. A Raw must not be
// copied by value once set up; use CopyFrom or MoveFrom.
//
// Raw is not safe for concurrent use.
type Raw struct {
	s slots.Slots[byte]
}

// NewRaw returns a container set up with the given capacity and element size.
func NewRaw(capacity, elementSize int, opts ...Option) (*Raw, error) {
	r := &Raw{}
	if err := r.Setup(capacity, elementSize, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Raw) engine() (*slots.Slots[byte], error) {
	assert.That(r != nil, "nil container")
	if r == nil {
		return nil, ErrNilContainer
	}
	return &r.s, nil
}

func (r *Raw) other(o *Raw) (*slots.Slots[byte], error) {
	assert.That(o != nil, "nil container")
	if o == nil {
		return nil, ErrNilContainer
	}
	return &o.s, nil
}

// Setup initializes the container with room for max(MinimumCapacity,
// capacity) elements of elementSize bytes.
//
// An element size of 0 is accepted; every element operation on such a
// container fails with ErrZeroElementSize.
func (r *Raw) Setup(capacity, elementSize int, opts ...Option) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	o := applyOptions(opts)
	return s.Init(capacity, elementSize, o.rawConfig())
}

// Destroy releases the buffer and returns the container to the
// uninitialized state. Calling it again is a no-op.
func (r *Raw) Destroy() error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	s.Release()
	return nil
}

// CopyFrom sets up r as an independent copy of src.
//
// r must be uninitialized and src initialized. The copy gets room for twice
// src's size and inherits src's allocator and options.
func (r *Raw) CopyFrom(src *Raw) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	o, err := r.other(src)
	if err != nil {
		return err
	}
	return s.CopyFrom(o)
}

// AssignFrom replaces the contents of r with a copy of src. Both must be
// initialized. If the copy cannot be allocated, r is left unchanged.
func (r *Raw) AssignFrom(src *Raw) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	o, err := r.other(src)
	if err != nil {
		return err
	}
	return s.AssignFrom(o)
}

// MoveFrom transfers src's buffer to r without copying elements. Afterwards
// src is uninitialized. If r was initialized its old buffer is freed first.
func (r *Raw) MoveFrom(src *Raw) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	o, err := r.other(src)
	if err != nil {
		return err
	}
	return s.MoveFrom(o)
}

// MoveAssignFrom gives r the buffer of src and frees r's previous buffer.
// Both must be initialized. Afterwards src is uninitialized.
func (r *Raw) MoveAssignFrom(src *Raw) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	o, err := r.other(src)
	if err != nil {
		return err
	}
	return s.MoveAssignFrom(o)
}

// Swap exchanges the buffers, sizes, element sizes and options of r and
// other without copying elements. Both must be initialized.
func (r *Raw) Swap(other *Raw) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	o, err := r.other(other)
	if err != nil {
		return err
	}
	return s.Swap(o)
}

// PushBack appends a copy of elem. Amortized O(1).
func (r *Raw) PushBack(elem []byte) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	return s.PushBack(elem)
}

// PushFront inserts a copy of elem before the first element. O(n).
func (r *Raw) PushFront(elem []byte) error {
	return r.Insert(0, elem)
}

// Insert places a copy of elem at index, shifting later elements right.
// index may equal Len.
func (r *Raw) Insert(index int, elem []byte) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	return s.Insert(index, elem)
}

// Assign overwrites the element at index with a copy of elem.
func (r *Raw) Assign(index int, elem []byte) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	return s.Assign(index, elem)
}

// PopBack removes the last element.
func (r *Raw) PopBack() error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	return s.PopBack()
}

// PopFront removes the first element. O(n).
func (r *Raw) PopFront() error {
	return r.Erase(0)
}

// Erase removes the element at index, shifting later elements left.
func (r *Raw) Erase(index int) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	return s.Erase(index)
}

// Clear removes every element and returns the capacity to MinimumCapacity.
func (r *Raw) Clear() error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	return s.Clear()
}

// Get returns a writable view of the element at index, or nil if index is
// out of range. The view is invalidated by any operation that reallocates.
func (r *Raw) Get(index int) []byte {
	if r == nil {
		return nil
	}
	return r.s.Slot(index)
}

// ConstGet returns a copy of the element at index, or nil if index is out
// of range.
func (r *Raw) ConstGet(index int) []byte {
	slot := r.Get(index)
	if slot == nil {
		return nil
	}
	out := make([]byte, len(slot))
	copy(out, slot)
	return out
}

// Front returns a view of the first element, or nil if empty.
func (r *Raw) Front() []byte { return r.Get(0) }

// Back returns a view of the last element, or nil if empty.
func (r *Raw) Back() []byte { return r.Get(r.Len() - 1) }

// Bytes returns a view of the live elements, Len()*ElementSize() bytes.
func (r *Raw) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.s.Data()
}

// IsEmpty reports whether the container holds no elements.
func (r *Raw) IsEmpty() bool { return r.Len() == 0 }

// Len returns the number of elements.
func (r *Raw) Len() int {
	if r == nil {
		return 0
	}
	return r.s.Len()
}

// Cap returns the number of elements the buffer can hold without growing.
func (r *Raw) Cap() int {
	if r == nil {
		return 0
	}
	return r.s.Cap()
}

// ElementSize returns the size of one element in bytes.
func (r *Raw) ElementSize() int {
	if r == nil {
		return 0
	}
	return r.s.Stride()
}

// ByteSize returns Len()*ElementSize().
func (r *Raw) ByteSize() int { return r.Len() * r.ElementSize() }

// FreeSpace returns Cap()-Len().
func (r *Raw) FreeSpace() int { return r.Cap() - r.Len() }

// IsInitialized reports whether the container is set up.
func (r *Raw) IsInitialized() bool { return r != nil && r.s.Live() }

// Resize sets the number of elements to n.
//
// When n exceeds the capacity or falls to a quarter of it, the buffer is
// reallocated to n*GrowthFactor elements. Elements exposed by growing are
// not initialized.
func (r *Raw) Resize(n int) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	return s.Resize(n)
}

// Reserve grows the capacity to exactly n if it is smaller.
func (r *Raw) Reserve(n int) error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	return s.Reserve(n)
}

// ShrinkToFit reduces the capacity to max(MinimumCapacity, Len()).
func (r *Raw) ShrinkToFit() error {
	s, err := r.engine()
	if err != nil {
		return err
	}
	return s.ShrinkToFit()
}

// All returns an iterator over the index and a view of each element.
// It reads the container live, so it sees mutations made between steps.
func (r *Raw) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := 0; i < r.Len(); i++ {
			if !yield(i, r.Get(i)) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the container's sizes.
func (r *Raw) Stats() Stats {
	return Stats{
		Initialized: r.IsInitialized(),
		Len:         r.Len(),
		Cap:         r.Cap(),
		ElementSize: r.ElementSize(),
		ByteSize:    r.ByteSize(),
		Reserved:    r.Cap() * r.ElementSize(),
	}
}

func (r *Raw) String() string {
	return r.Stats().String()
}

// Stats describes the sizes of a container.
type Stats struct {
	Initialized bool
	Len         int
	Cap         int
	ElementSize int
	// ByteSize is the number of bytes held by live elements.
	ByteSize int
	// Reserved is the number of bytes in the backing buffer.
	Reserved int
}

func (s Stats) String() string {
	if !s.Initialized {
		return "dynarray{uninitialized}"
	}
	return fmt.Sprintf("dynarray{len=%d cap=%d element_size=%d bytes=%d/%d}",
		s.Len, s.Cap, s.ElementSize, s.ByteSize, s.Reserved)
}
