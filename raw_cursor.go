package dynarray

import "github.com/hupe1980/dynarray/internal/slots"

// RawCursor is a position in a Raw container.
//
// A cursor stores an index, not a pointer. Any operation that shifts or
// reallocates elements invalidates it; an invalid cursor returns nil from
// Get instead of reading moved memory. The zero RawCursor is invalid.
type RawCursor struct {
	c slots.Cursor[byte]
}

// Begin returns a cursor at the first element.
func (r *Raw) Begin() RawCursor {
	if r == nil {
		return RawCursor{}
	}
	return RawCursor{c: r.s.Begin()}
}

// End returns a cursor one past the last element.
func (r *Raw) End() RawCursor {
	if r == nil {
		return RawCursor{}
	}
	return RawCursor{c: r.s.End()}
}

// CursorAt returns a cursor at index, which may equal Len. An index outside
// [0, Len] yields an invalid cursor.
func (r *Raw) CursorAt(index int) RawCursor {
	if r == nil {
		return RawCursor{}
	}
	return RawCursor{c: r.s.CursorAt(index)}
}

// IndexOf returns the index c addresses.
//
// It fails with ErrForeignCursor if c belongs to another container,
// ErrStaleCursor if c was invalidated, and an *IndexError if c was moved
// outside [0, Len].
func (r *Raw) IndexOf(c RawCursor) (int, error) {
	s, err := r.engine()
	if err != nil {
		return 0, err
	}
	return s.IndexOf(c.c)
}

// EraseAt removes the element c addresses and returns a cursor at the same
// index, which now holds the following element.
func (r *Raw) EraseAt(c RawCursor) (RawCursor, error) {
	s, err := r.engine()
	if err != nil {
		return RawCursor{}, err
	}
	next, err := s.EraseAt(c.c)
	if err != nil {
		return RawCursor{}, err
	}
	return RawCursor{c: next}, nil
}

// Valid reports whether the cursor still belongs to an unmodified container.
func (c RawCursor) Valid() bool { return c.c.Valid() }

// Index returns the cursor position.
func (c RawCursor) Index() int { return c.c.Index() }

// ElementSize returns the element size captured when the cursor was created.
func (c RawCursor) ElementSize() int { return c.c.Stride() }

// Get returns a writable view of the element, or nil when the cursor is
// invalid or outside [0, Len).
func (c RawCursor) Get() []byte { return c.c.Get() }

// Increment advances the cursor by one element.
func (c *RawCursor) Increment() { c.c.Increment() }

// Decrement moves the cursor back by one element.
func (c *RawCursor) Decrement() { c.c.Decrement() }

// Next returns the current element and advances.
func (c *RawCursor) Next() []byte { return c.c.Next() }

// Previous returns the current element and moves back.
func (c *RawCursor) Previous() []byte { return c.c.Previous() }

// Equals reports whether both cursors address the same element of the same
// container.
func (c RawCursor) Equals(o RawCursor) bool { return c.c.Equals(o.c) }

// IsBefore reports whether c addresses an earlier element than o.
func (c RawCursor) IsBefore(o RawCursor) bool { return c.c.IsBefore(o.c) }

// IsAfter reports whether c addresses a later element than o.
func (c RawCursor) IsAfter(o RawCursor) bool { return c.c.IsAfter(o.c) }
