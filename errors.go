package dynarray

import "github.com/hupe1980/dynarray/internal/slots"

var (
	// ErrNilContainer is returned when a method is called on a nil container.
	ErrNilContainer = slots.ErrNilContainer
	// ErrNotInitialized is returned when the container has not been set up
	// (or has been destroyed).
	ErrNotInitialized = slots.ErrNotInitialized
	// ErrAlreadyInitialized is returned by Setup and CopyFrom on a live container.
	ErrAlreadyInitialized = slots.ErrAlreadyInitialized
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = slots.ErrIndexOutOfRange
	// ErrZeroElementSize is returned by element operations on a Raw set up
	// with element size 0.
	ErrZeroElementSize = slots.ErrZeroElementSize
	// ErrElementSize is returned when a Raw element buffer is not exactly
	// ElementSize bytes long.
	ErrElementSize = slots.ErrElementSize
	// ErrEmpty is returned when removing from an empty container.
	ErrEmpty = slots.ErrEmpty
	// ErrNegativeSize is returned for negative capacities, sizes or element sizes.
	ErrNegativeSize = slots.ErrNegativeSize
	// ErrForeignCursor is returned when a cursor belongs to another container.
	ErrForeignCursor = slots.ErrForeignCursor
	// ErrStaleCursor is returned when a cursor was invalidated by a mutation.
	ErrStaleCursor = slots.ErrStaleCursor
	// ErrAllocationFailed is matched by every *AllocationError.
	ErrAllocationFailed = slots.ErrAllocationFailed
)

// IndexError reports an index outside the permitted range.
// It matches ErrIndexOutOfRange with errors.Is.
type IndexError = slots.IndexError

// AllocationError reports a buffer that could not be obtained.
// It matches ErrAllocationFailed with errors.Is; the allocator's error (for
// example resource.ErrMemoryLimitExceeded) can be accessed via errors.Unwrap.
type AllocationError = slots.AllocationError
