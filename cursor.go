package dynarray

import "github.com/hupe1980/dynarray/internal/slots"

// Cursor is a position in a Vector. It has the same invalidation rules as
// RawCursor.
type Cursor[T any] struct {
	c slots.Cursor[T]
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() Cursor[T] {
	if v == nil {
		return Cursor[T]{}
	}
	return Cursor[T]{c: v.s.Begin()}
}

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] {
	if v == nil {
		return Cursor[T]{}
	}
	return Cursor[T]{c: v.s.End()}
}

// CursorAt returns a cursor at index, which may equal Len.
func (v *Vector[T]) CursorAt(index int) Cursor[T] {
	if v == nil {
		return Cursor[T]{}
	}
	return Cursor[T]{c: v.s.CursorAt(index)}
}

// IndexOf returns the index c addresses.
func (v *Vector[T]) IndexOf(c Cursor[T]) (int, error) {
	s, err := v.engine()
	if err != nil {
		return 0, err
	}
	return s.IndexOf(c.c)
}

// EraseAt removes the element c addresses and returns a cursor at the same
// index.
func (v *Vector[T]) EraseAt(c Cursor[T]) (Cursor[T], error) {
	s, err := v.engine()
	if err != nil {
		return Cursor[T]{}, err
	}
	next, err := s.EraseAt(c.c)
	if err != nil {
		return Cursor[T]{}, err
	}
	return Cursor[T]{c: next}, nil
}

func (c Cursor[T]) Valid() bool { return c.c.Valid() }

func (c Cursor[T]) Index() int { return c.c.Index() }

// Get returns a pointer to the element, or nil when the cursor is invalid
// or outside [0, Len).
func (c Cursor[T]) Get() *T {
	return first(c.c.Get())
}

func (c *Cursor[T]) Increment() { c.c.Increment() }

func (c *Cursor[T]) Decrement() { c.c.Decrement() }

// Next returns the current element and advances.
func (c *Cursor[T]) Next() *T { return first(c.c.Next()) }

// Previous returns the current element and moves back.
func (c *Cursor[T]) Previous() *T { return first(c.c.Previous()) }

func (c Cursor[T]) Equals(o Cursor[T]) bool { return c.c.Equals(o.c) }

func (c Cursor[T]) IsBefore(o Cursor[T]) bool { return c.c.IsBefore(o.c) }

func (c Cursor[T]) IsAfter(o Cursor[T]) bool { return c.c.IsAfter(o.c) }

func first[T any](slot []T) *T {
	if len(slot) == 0 {
		return nil
	}
	return &slot[0]
}
