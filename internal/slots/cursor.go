package slots

import "github.com/hupe1980/dynarray/internal/assert"

// Cursor is a position in a Slots buffer.
// It holds no memory; the slot is looked up again on every Get.
type Cursor[T any] struct {
	owner  *Slots[T]
	index  int
	stride int
	epoch  uint64
}

// CursorAt returns a cursor at index, which may equal Len (one past the
// last slot). It returns the zero Cursor when the index is out of range or
// the buffer has no elements to address.
func (s *Slots[T]) CursorAt(index int) Cursor[T] {
	assert.That(index >= 0 && index <= s.size, "cursor index %d outside [0, %d]", index, s.size)
	if !s.live || s.stride == 0 || index < 0 || index > s.size {
		return Cursor[T]{}
	}
	return Cursor[T]{
		owner:  s,
		index:  index,
		stride: s.stride,
		epoch:  s.epoch,
	}
}

// Begin returns a cursor at the first slot.
func (s *Slots[T]) Begin() Cursor[T] { return s.CursorAt(0) }

// End returns a cursor one past the last slot.
func (s *Slots[T]) End() Cursor[T] { return s.CursorAt(s.size) }

// IndexOf returns the slot index c addresses in s.
func (s *Slots[T]) IndexOf(c Cursor[T]) (int, error) {
	if c.owner != s {
		return 0, ErrForeignCursor
	}
	if c.epoch != s.epoch {
		return 0, ErrStaleCursor
	}
	if c.index < 0 || c.index > s.size {
		return 0, &IndexError{Index: c.index, Size: s.size}
	}
	return c.index, nil
}

// EraseAt erases the slot c addresses and returns a fresh cursor at the
// same index.
func (s *Slots[T]) EraseAt(c Cursor[T]) (Cursor[T], error) {
	index, err := s.IndexOf(c)
	if err != nil {
		return Cursor[T]{}, err
	}
	if err := s.Erase(index); err != nil {
		return Cursor[T]{}, err
	}
	return s.CursorAt(index), nil
}

// Valid reports whether the cursor was derived after the owner's last
// invalidating mutation.
func (c Cursor[T]) Valid() bool {
	return c.owner != nil && c.epoch == c.owner.epoch
}

// Index returns the raw position, without bounds checks.
func (c Cursor[T]) Index() int { return c.index }

// Stride returns the stride captured when the cursor was created.
func (c Cursor[T]) Stride() int { return c.stride }

// Get returns the slot the cursor addresses, or nil when the cursor is
// stale or outside [0, Len).
func (c Cursor[T]) Get() []T {
	if !c.Valid() {
		return nil
	}
	return c.owner.Slot(c.index)
}

// Increment advances by one slot. There is no bounds check.
func (c *Cursor[T]) Increment() { c.index++ }

// Decrement retreats by one slot. There is no bounds check.
func (c *Cursor[T]) Decrement() { c.index-- }

// Next returns the current slot and then advances.
func (c *Cursor[T]) Next() []T {
	cur := c.Get()
	c.Increment()
	return cur
}

// Previous returns the current slot and then retreats.
func (c *Cursor[T]) Previous() []T {
	cur := c.Get()
	c.Decrement()
	return cur
}

func (c Cursor[T]) comparable(o Cursor[T]) bool {
	assert.That(c.stride == o.stride, "comparing cursors with strides %d and %d", c.stride, o.stride)
	return c.stride == o.stride && c.owner == o.owner
}

// Equals reports whether both cursors address the same slot of the same buffer.
func (c Cursor[T]) Equals(o Cursor[T]) bool {
	return c.comparable(o) && c.index == o.index
}

// IsBefore reports whether c addresses an earlier slot than o.
func (c Cursor[T]) IsBefore(o Cursor[T]) bool {
	return c.comparable(o) && c.index < o.index
}

// IsAfter reports whether c addresses a later slot than o.
func (c Cursor[T]) IsAfter(o Cursor[T]) bool {
	return c.comparable(o) && c.index > o.index
}
