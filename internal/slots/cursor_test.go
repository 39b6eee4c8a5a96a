package slots

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Walk(t *testing.T) {
	s := filled(t, 10, Config[byte]{})

	var got []uint32
	for c := s.Begin(); !c.Equals(s.End()); {
		slot := c.Next()
		require.NotNil(t, slot)
		got = append(got, uint32(slot[0]))
	}
	tassert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)

	// Restartable.
	n := 0
	for c := s.Begin(); c.IsBefore(s.End()); c.Increment() {
		n++
	}
	tassert.Equal(t, 10, n)

	// Backwards.
	got = got[:0]
	c := s.End()
	c.Decrement()
	for !c.IsBefore(s.Begin()) {
		got = append(got, uint32(c.Previous()[0]))
	}
	tassert.Equal(t, []uint32{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, got)
}

func TestCursor_WritesThrough(t *testing.T) {
	s := filled(t, 4, Config[byte]{})

	for c := s.Begin(); c.IsBefore(s.End()); c.Increment() {
		copy(c.Get(), u32(666))
	}

	for i := 0; i < 4; i++ {
		tassert.Equal(t, u32(666), s.Slot(i))
	}
}

func TestCursor_At(t *testing.T) {
	s := filled(t, 3, Config[byte]{})

	c := s.CursorAt(1)
	tassert.True(t, c.Valid())
	tassert.Equal(t, 1, c.Index())
	tassert.Equal(t, 4, c.Stride())
	tassert.Equal(t, u32(1), c.Get())

	end := s.CursorAt(3)
	tassert.True(t, end.Valid())
	tassert.Nil(t, end.Get())

	idx, err := s.IndexOf(end)
	require.NoError(t, err)
	tassert.Equal(t, 3, idx)

	t.Run("out of range", func(t *testing.T) {
		skipIfAsserting(t)
		tassert.False(t, s.CursorAt(4).Valid())
		tassert.False(t, s.CursorAt(-1).Valid())
		tassert.Nil(t, s.CursorAt(4).Get())
	})
}

func TestCursor_Comparisons(t *testing.T) {
	s := filled(t, 5, Config[byte]{})
	a, b := s.CursorAt(1), s.CursorAt(3)

	tassert.True(t, a.IsBefore(b))
	tassert.False(t, a.IsAfter(b))
	tassert.True(t, b.IsAfter(a))
	tassert.False(t, a.Equals(b))

	a.Increment()
	a.Increment()
	tassert.True(t, a.Equals(b))

	other := filled(t, 5, Config[byte]{})
	tassert.False(t, s.Begin().Equals(other.Begin()))
}

func TestCursor_MismatchedStride(t *testing.T) {
	skipIfAsserting(t)

	s := filled(t, 2, Config[byte]{})
	o := newBytes(t, 0, 8, Config[byte]{})
	require.NoError(t, o.PushBack(make([]byte, 8)))

	tassert.False(t, s.Begin().Equals(o.Begin()))
	tassert.False(t, s.Begin().IsBefore(o.End()))
	tassert.False(t, o.End().IsAfter(s.Begin()))
}

func TestCursor_Invalidation(t *testing.T) {
	s := filled(t, 4, Config[byte]{})
	c := s.CursorAt(2)

	// Assign does not move elements.
	require.NoError(t, s.Assign(0, u32(9)))
	tassert.True(t, c.Valid())

	require.NoError(t, s.Insert(0, u32(5)))
	tassert.False(t, c.Valid())
	tassert.Nil(t, c.Get())

	_, err := s.IndexOf(c)
	tassert.ErrorIs(t, err, ErrStaleCursor)

	c = s.CursorAt(2)
	require.NoError(t, s.Reserve(100))
	tassert.False(t, c.Valid())

	c = s.CursorAt(2)
	require.NoError(t, s.Clear())
	tassert.False(t, c.Valid())

	c = s.Begin()
	s.Release()
	tassert.False(t, c.Valid())
}

func TestCursor_EraseAt(t *testing.T) {
	s := filled(t, 6, Config[byte]{})

	// Erase every even value while walking.
	for c := s.Begin(); c.IsBefore(s.End()); {
		if c.Get()[0]%2 == 0 {
			var err error
			c, err = s.EraseAt(c)
			require.NoError(t, err)
			require.True(t, c.Valid())
			continue
		}
		c.Increment()
	}

	require.Equal(t, 3, s.Len())
	tassert.Equal(t, u32(1), s.Slot(0))
	tassert.Equal(t, u32(3), s.Slot(1))
	tassert.Equal(t, u32(5), s.Slot(2))
}

func TestCursor_EraseAtErrors(t *testing.T) {
	skipIfAsserting(t)

	s := filled(t, 2, Config[byte]{})
	other := filled(t, 2, Config[byte]{})

	_, err := s.EraseAt(other.Begin())
	tassert.ErrorIs(t, err, ErrForeignCursor)

	_, err = s.EraseAt(s.End())
	tassert.ErrorIs(t, err, ErrIndexOutOfRange)

	c := s.Begin()
	c.Decrement()
	_, err = s.IndexOf(c)
	tassert.ErrorIs(t, err, ErrIndexOutOfRange)
}
