package slots

import (
	"errors"
	"fmt"
)

var (
	// ErrNilContainer is returned when an operation receives a nil container.
	ErrNilContainer = errors.New("nil container")
	// ErrNotInitialized is returned when the container has no buffer.
	ErrNotInitialized = errors.New("container is not initialized")
	// ErrAlreadyInitialized is returned when setting up or copying into a live container.
	ErrAlreadyInitialized = errors.New("container is already initialized")
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrZeroElementSize is returned for element operations on a zero-stride container.
	ErrZeroElementSize = errors.New("element size is zero")
	// ErrElementSize is returned when an element buffer has the wrong length.
	ErrElementSize = errors.New("element buffer length does not match element size")
	// ErrEmpty is returned when removing from an empty container.
	ErrEmpty = errors.New("container is empty")
	// ErrNegativeSize is returned for negative capacities, sizes or element sizes.
	ErrNegativeSize = errors.New("negative size")
	// ErrForeignCursor is returned when a cursor belongs to another container.
	ErrForeignCursor = errors.New("cursor belongs to another container")
	// ErrStaleCursor is returned when a cursor predates an invalidating mutation.
	ErrStaleCursor = errors.New("cursor is stale")
	// ErrAllocationFailed is matched by every *AllocationError.
	ErrAllocationFailed = errors.New("allocation failed")
)

// IndexError reports an index outside the permitted range.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for size %d", e.Index, e.Size)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// AllocationError reports a buffer that could not be obtained.
//
// The allocator's error (if any) can be accessed via errors.Unwrap.
type AllocationError struct {
	Capacity int
	Bytes    int
	cause    error
}

func (e *AllocationError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("allocation of %d slots (%d bytes) failed", e.Capacity, e.Bytes)
	}
	return fmt.Sprintf("allocation of %d slots (%d bytes) failed: %v", e.Capacity, e.Bytes, e.cause)
}

// Is reports whether target is ErrAllocationFailed.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocationFailed }

func (e *AllocationError) Unwrap() error { return e.cause }
