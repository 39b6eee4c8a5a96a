//go:build unix || windows

package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffHeap(t *testing.T) {
	o := NewOffHeap()

	buf, err := o.Alloc(1000)
	require.NoError(t, err)
	require.Len(t, buf, 1000)
	assert.Equal(t, 1, o.Outstanding())

	for i := range buf {
		buf[i] = byte(i)
	}
	assert.Equal(t, byte(999%256), buf[999])

	other, err := o.Alloc(10)
	require.NoError(t, err)
	assert.Equal(t, 2, o.Outstanding())

	o.Free(buf)
	assert.Equal(t, 1, o.Outstanding())

	// Freeing twice or freeing foreign memory is ignored.
	o.Free(buf)
	o.Free(make([]byte, 10))
	assert.Equal(t, 1, o.Outstanding())

	o.Free(other)
	assert.Equal(t, 0, o.Outstanding())
}

func TestOffHeap_Empty(t *testing.T) {
	o := NewOffHeap()

	buf, err := o.Alloc(0)
	require.NoError(t, err)
	assert.NotNil(t, buf)
	assert.Equal(t, 0, o.Outstanding())

	o.Free(buf)

	_, err = o.Alloc(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
