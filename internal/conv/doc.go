// Package conv provides checked integer arithmetic and conversions.
//
// Slot counts and strides are plain ints in the container API, but the byte
// size of a buffer is their product and can overflow on large requests. The
// helpers here turn such overflow into an error instead of a wrapped value.
//
// For conversions that are provably safe by domain constraints (loop indices,
// sizes already bounded by an existing buffer), use direct casts instead.
package conv
