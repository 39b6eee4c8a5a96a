package dynarray

import (
	"iter"

	"github.com/hupe1980/dynarray/internal/assert"
	"github.com/hupe1980/dynarray/internal/mem"
	"github.com/hupe1980/dynarray/internal/slots"
)

// Vector is the typed form of Raw. It grows, shrinks and invalidates
// cursors exactly like Raw, but stores values of T directly on the Go heap.
//
// The zero value is uninitialized; call Setup or use New.
type Vector[T any] struct {
	s slots.Slots[T]
}

// New returns a Vector set up with room for max(MinimumCapacity, capacity)
// elements.
func New[T any](capacity int, opts ...Option) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.Setup(capacity, opts...); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector[T]) engine() (*slots.Slots[T], error) {
	assert.That(v != nil, "nil container")
	if v == nil {
		return nil, ErrNilContainer
	}
	return &v.s, nil
}

func (v *Vector[T]) other(o *Vector[T]) (*slots.Slots[T], error) {
	assert.That(o != nil, "nil container")
	if o == nil {
		return nil, ErrNilContainer
	}
	return &o.s, nil
}

// Setup initializes the vector. WithAllocator is ignored.
func (v *Vector[T]) Setup(capacity int, opts ...Option) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.Init(capacity, 1, typedConfig[T](applyOptions(opts)))
}

// Destroy releases the buffer. Calling it again is a no-op.
func (v *Vector[T]) Destroy() error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	s.Release()
	return nil
}

// CopyFrom sets up v as an independent copy of src.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	o, err := v.other(src)
	if err != nil {
		return err
	}
	return s.CopyFrom(o)
}

// AssignFrom replaces the contents of v with a copy of src. On failure v is
// unchanged.
func (v *Vector[T]) AssignFrom(src *Vector[T]) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	o, err := v.other(src)
	if err != nil {
		return err
	}
	return s.AssignFrom(o)
}

// MoveFrom transfers src's buffer to v. Afterwards src is uninitialized.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	o, err := v.other(src)
	if err != nil {
		return err
	}
	return s.MoveFrom(o)
}

// MoveAssignFrom gives v the buffer of src and frees v's previous buffer.
func (v *Vector[T]) MoveAssignFrom(src *Vector[T]) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	o, err := v.other(src)
	if err != nil {
		return err
	}
	return s.MoveAssignFrom(o)
}

// Swap exchanges the contents of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	o, err := v.other(other)
	if err != nil {
		return err
	}
	return s.Swap(o)
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.PushBack([]T{value})
}

// PushFront inserts value before the first element.
func (v *Vector[T]) PushFront(value T) error {
	return v.Insert(0, value)
}

// Insert places value at index. index may equal Len.
func (v *Vector[T]) Insert(index int, value T) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.Insert(index, []T{value})
}

// Assign overwrites the element at index.
func (v *Vector[T]) Assign(index int, value T) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.Assign(index, []T{value})
}

// PopBack removes the last element.
func (v *Vector[T]) PopBack() error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.PopBack()
}

// PopFront removes the first element.
func (v *Vector[T]) PopFront() error {
	return v.Erase(0)
}

// Erase removes the element at index.
func (v *Vector[T]) Erase(index int) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.Erase(index)
}

// Clear removes every element and returns the capacity to MinimumCapacity.
func (v *Vector[T]) Clear() error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.Clear()
}

// Get returns a pointer to the element at index, or nil if index is out of
// range. The pointer must not be used after an operation that reallocates.
func (v *Vector[T]) Get(index int) *T {
	if v == nil {
		return nil
	}
	slot := v.s.Slot(index)
	if slot == nil {
		return nil
	}
	return &slot[0]
}

// ConstGet returns the element at index and whether index was in range.
func (v *Vector[T]) ConstGet(index int) (T, bool) {
	p := v.Get(index)
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Front returns a pointer to the first element, or nil if empty.
func (v *Vector[T]) Front() *T { return v.Get(0) }

// Back returns a pointer to the last element, or nil if empty.
func (v *Vector[T]) Back() *T { return v.Get(v.Len() - 1) }

// Slice returns a view of the live elements.
func (v *Vector[T]) Slice() []T {
	if v == nil {
		return nil
	}
	return v.s.Data()
}

func (v *Vector[T]) IsEmpty() bool { return v.Len() == 0 }

func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.s.Len()
}

func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.s.Cap()
}

// ElementSize returns the size of T in bytes.
func (v *Vector[T]) ElementSize() int { return mem.SizeOf[T]() }

func (v *Vector[T]) ByteSize() int { return v.Len() * v.ElementSize() }

func (v *Vector[T]) FreeSpace() int { return v.Cap() - v.Len() }

func (v *Vector[T]) IsInitialized() bool { return v != nil && v.s.Live() }

// Resize sets the number of elements to n. Elements exposed by growing hold
// the zero value or whatever an earlier element left behind.
func (v *Vector[T]) Resize(n int) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.Resize(n)
}

// Reserve grows the capacity to exactly n if it is smaller.
func (v *Vector[T]) Reserve(n int) error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.Reserve(n)
}

// ShrinkToFit reduces the capacity to max(MinimumCapacity, Len()).
func (v *Vector[T]) ShrinkToFit() error {
	s, err := v.engine()
	if err != nil {
		return err
	}
	return s.ShrinkToFit()
}

// All returns an iterator over index/value pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, *v.Get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(*v.Get(i)) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the vector's sizes.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Initialized: v.IsInitialized(),
		Len:         v.Len(),
		Cap:         v.Cap(),
		ElementSize: v.ElementSize(),
		ByteSize:    v.ByteSize(),
		Reserved:    v.Cap() * v.ElementSize(),
	}
}

func (v *Vector[T]) String() string {
	return v.Stats().String()
}
