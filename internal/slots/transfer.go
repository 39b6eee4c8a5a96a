package slots

import "github.com/hupe1980/dynarray/internal/assert"

// copyCapacity sizes a copy to fit the source: the floor for an empty
// source, twice its size otherwise.
func copyCapacity(size int) int {
	if size == 0 {
		return MinimumCapacity
	}
	return max(MinimumCapacity, size*GrowthFactor)
}

// CopyFrom makes s an independent copy of src. s must be uninitialized and
// src initialized. The copy shares src's configuration, not its capacity.
func (s *Slots[T]) CopyFrom(src *Slots[T]) error {
	if src == nil {
		return ErrNilContainer
	}
	assert.That(!s.live, "copy into a live container")
	if s.live {
		return ErrAlreadyInitialized
	}
	assert.That(src.live, "copy from an uninitialized container")
	if !src.live {
		return ErrNotInitialized
	}

	capacity := copyCapacity(src.size)

	s.cfg = src.cfg
	s.stride = src.stride

	buf, err := s.allocate(capacity)
	if err != nil {
		return err
	}

	copy(buf, src.Data())

	s.data = buf
	s.size = src.size
	s.capacity = capacity
	s.live = true
	s.epoch++

	return nil
}

// AssignFrom replaces the contents of s with a copy of src. Both must be
// initialized. The new buffer is allocated before the old one is released,
// so on failure s is unchanged.
func (s *Slots[T]) AssignFrom(src *Slots[T]) error {
	if src == nil {
		return ErrNilContainer
	}
	assert.That(s.live && src.live, "copy assign requires two live containers")
	if !s.live || !src.live {
		return ErrNotInitialized
	}

	staged := Slots[T]{}
	if err := staged.CopyFrom(src); err != nil {
		return err
	}

	epoch := s.epoch
	s.Release()
	*s = staged
	s.epoch = epoch + 1

	return nil
}

// MoveFrom transfers all of src's state to s without copying elements.
// Afterwards src owns nothing. A live s releases its own buffer first.
func (s *Slots[T]) MoveFrom(src *Slots[T]) error {
	if src == nil {
		return ErrNilContainer
	}
	if s == src {
		return nil
	}

	s.Release()

	epoch := max(s.epoch, src.epoch) + 1
	*s = *src
	s.epoch = epoch

	src.data = nil
	src.size = 0
	src.capacity = 0
	src.live = false
	src.epoch = epoch

	return nil
}

// Swap exchanges the state of s and other without copying elements.
// Both must be initialized.
func (s *Slots[T]) Swap(other *Slots[T]) error {
	if other == nil {
		return ErrNilContainer
	}
	assert.That(s.live && other.live, "swap requires two live containers")
	if !s.live || !other.live {
		return ErrNotInitialized
	}

	epoch := max(s.epoch, other.epoch) + 1
	*s, *other = *other, *s
	s.epoch = epoch
	other.epoch = epoch

	return nil
}

// MoveAssignFrom gives s the state of src and frees what s held before.
// Both must be initialized.
func (s *Slots[T]) MoveAssignFrom(src *Slots[T]) error {
	if err := s.Swap(src); err != nil {
		return err
	}
	if s != src {
		src.Release()
	}
	return nil
}
