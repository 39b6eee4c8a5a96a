// Package slots implements the growable buffer engine behind the public
// containers.
//
// A Slots[T] holds a contiguous buffer of capacity logical slots, each
// stride elements of T wide. The type-erased container uses T = byte with
// stride = element size; the typed container uses stride = 1.
//
// # Capacity Policy
//
// All buffer changes go through a single reallocation routine so that the
// policy lives in one place:
//
//   - Growth: a full buffer grows to max(1, size*GrowthFactor) slots
//   - Shrink: after a removal, size == capacity/ShrinkDivisor triggers a
//     reallocation to max(1, size*GrowthFactor) slots (unless disabled)
//   - Floor: capacity never drops below MinimumCapacity; a smaller target is
//     clamped to the floor when capacity exceeds it and is a no-op otherwise
//
// A failed reallocation leaves size, capacity and the old buffer untouched.
//
// # Cursors
//
// Cursors store an index, not an address. Every mutation that shifts or
// moves elements advances the owner's epoch; a cursor from an older epoch
// is stale and its Get returns nil.
package slots
