package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawCursor(t *testing.T) {
	newRaw := func(t *testing.T, n int) *Raw {
		t.Helper()
		r, err := NewRaw(0, 4)
		require.NoError(t, err)
		for i := range n {
			require.NoError(t, r.PushBack(elem(i)))
		}
		return r
	}

	t.Run("ForwardAndBackward", func(t *testing.T) {
		r := newRaw(t, 5)

		var forward []int
		for c := r.Begin(); c.IsBefore(r.End()); {
			forward = append(forward, value(c.Next()))
		}
		assert.Equal(t, []int{0, 1, 2, 3, 4}, forward)

		var backward []int
		c := r.End()
		c.Decrement()
		for !c.IsBefore(r.Begin()) {
			backward = append(backward, value(c.Previous()))
		}
		assert.Equal(t, []int{4, 3, 2, 1, 0}, backward)
	})

	t.Run("Positions", func(t *testing.T) {
		r := newRaw(t, 3)

		c := r.CursorAt(1)
		assert.True(t, c.Valid())
		assert.Equal(t, 1, c.Index())
		assert.Equal(t, 4, c.ElementSize())
		assert.True(t, c.IsAfter(r.Begin()))
		assert.True(t, c.IsBefore(r.End()))
		assert.False(t, c.Equals(r.Begin()))

		idx, err := r.IndexOf(r.End())
		require.NoError(t, err)
		assert.Equal(t, 3, idx)
		assert.Nil(t, r.End().Get())

		c.Get()[0] = 99
		assert.Equal(t, 99, value(r.Get(1)))
	})

	t.Run("Invalidation", func(t *testing.T) {
		r := newRaw(t, 2)
		require.NoError(t, r.Reserve(8))

		// a push that fits does not move anything
		c := r.Begin()
		require.NoError(t, r.PushBack(elem(2)))
		assert.True(t, c.Valid())

		require.NoError(t, r.Insert(0, elem(9)))
		assert.False(t, c.Valid())
		assert.Nil(t, c.Get())
		_, err := r.IndexOf(c)
		assert.ErrorIs(t, err, ErrStaleCursor)
	})

	t.Run("ForeignCursor", func(t *testing.T) {
		a := newRaw(t, 2)
		b := newRaw(t, 2)

		assert.False(t, a.Begin().Equals(b.Begin()))
		_, err := a.IndexOf(b.Begin())
		assert.ErrorIs(t, err, ErrForeignCursor)
		_, err = a.IndexOf(RawCursor{})
		assert.ErrorIs(t, err, ErrForeignCursor)
	})

	t.Run("EraseWhileIterating", func(t *testing.T) {
		r := newRaw(t, 10)

		for c := r.Begin(); !c.Equals(r.End()); {
			if value(c.Get())%3 == 0 {
				var err error
				c, err = r.EraseAt(c)
				require.NoError(t, err)
			} else {
				c.Increment()
			}
		}
		assert.Equal(t, []int{1, 2, 4, 5, 7, 8}, values(r))
	})

	t.Run("NilContainer", func(t *testing.T) {
		var r *Raw
		assert.False(t, r.Begin().Valid())
		assert.False(t, r.CursorAt(0).Valid())
		assert.Nil(t, r.End().Get())
	})
}

func TestVectorCursor(t *testing.T) {
	v, err := New[string](0)
	require.NoError(t, err)
	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, v.PushBack(s))
	}

	var got []string
	for c := v.Begin(); !c.Equals(v.End()); c.Increment() {
		got = append(got, *c.Get())
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)

	c := v.CursorAt(1)
	*c.Get() = "B"
	assert.Equal(t, "B", *v.Get(1))

	c, err = v.EraseAt(c)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, "c", *c.Next())
	assert.Equal(t, "d", *c.Next())
	assert.Nil(t, c.Next())

	idx, err := v.IndexOf(v.End())
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	p := v.Begin()
	require.NoError(t, v.Clear())
	assert.False(t, p.Valid())
	assert.Nil(t, p.Get())
}
