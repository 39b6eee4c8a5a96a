package dynarray

import (
	"testing"
	"unsafe"

	"github.com/hupe1980/dynarray/internal/mem"
	"github.com/hupe1980/dynarray/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignedAllocator(t *testing.T) {
	r, err := NewRaw(0, 12, WithAllocator(AlignedAllocator()))
	require.NoError(t, err)
	defer func() { _ = r.Destroy() }()

	for i := range 100 {
		require.NoError(t, r.PushBack(make([]byte, 12)))
		addr := uintptr(unsafe.Pointer(&r.Bytes()[0]))
		require.Zero(t, addr%mem.Alignment, "push %d", i)
	}
}

func TestWithAllocatorNil(t *testing.T) {
	r, err := NewRaw(0, 4, WithAllocator(nil))
	require.NoError(t, err)
	require.NoError(t, r.PushBack(elem(1)))
	assert.Equal(t, 1, value(r.Get(0)))
}

func TestMemoryController(t *testing.T) {
	t.Run("LimitRefusesGrowth", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 64})

		r, err := NewRaw(0, 4, WithMemoryController(rc))
		require.NoError(t, err)
		assert.Equal(t, int64(8), rc.MemoryUsage())

		for i := range 8 {
			require.NoError(t, r.PushBack(elem(i)))
		}
		assert.Equal(t, int64(32), rc.MemoryUsage())

		// growing to 16 slots needs 64 more bytes while the old 32 are held
		err = r.PushBack(elem(8))
		require.ErrorIs(t, err, ErrAllocationFailed)
		assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
		assert.Equal(t, 8, r.Len())
		assert.Equal(t, 8, r.Cap())
		assert.Equal(t, int64(32), rc.MemoryUsage())

		require.NoError(t, r.Destroy())
		assert.Equal(t, int64(0), rc.MemoryUsage())
	})

	t.Run("SharedBetweenContainers", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 1024})

		a, err := NewRaw(16, 32, WithMemoryController(rc))
		require.NoError(t, err)
		assert.Equal(t, int64(512), rc.MemoryUsage())

		b, err := New[uint64](32, WithMemoryController(rc))
		require.NoError(t, err)
		assert.Equal(t, int64(768), rc.MemoryUsage())

		_, err = New[uint64](64, WithMemoryController(rc))
		assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)

		require.NoError(t, a.Destroy())
		require.NoError(t, b.Destroy())
		assert.Equal(t, int64(0), rc.MemoryUsage())
	})

	t.Run("RateLimit", func(t *testing.T) {
		rc := resource.NewController(resource.Config{AllocLimitBytesPerSec: 8})

		r, err := NewRaw(0, 4, WithMemoryController(rc))
		require.NoError(t, err)
		require.NoError(t, r.PushBack(elem(0)))
		require.NoError(t, r.PushBack(elem(1)))

		err = r.PushBack(elem(2))
		assert.ErrorIs(t, err, ErrAllocationFailed)
		assert.ErrorIs(t, err, resource.ErrAllocRateExceeded)
		assert.Equal(t, 2, r.Len())
	})

	t.Run("WrapsCustomAllocator", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
		f := mem.NewFaulty[byte](nil)

		r, err := NewRaw(0, 4, WithAllocator(f), WithMemoryController(rc))
		require.NoError(t, err)

		f.FailAfter(0)
		require.NoError(t, r.PushBack(elem(0)))
		require.NoError(t, r.PushBack(elem(1)))
		err = r.PushBack(elem(2))
		assert.ErrorIs(t, err, mem.ErrInjected)
		assert.Equal(t, int64(8), rc.MemoryUsage())
	})
}
