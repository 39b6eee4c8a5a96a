// Package dynarray provides growable contiguous buffers with explicit
// capacity control and index-based cursors.
//
// Two containers share one engine:
//
//   - Raw stores fixed-size byte elements whose size is chosen at runtime.
//   - Vector[T] stores values of a compile-time element type.
//
// # Quick Start
//
//	v, _ := dynarray.New[int](0)
//	defer v.Destroy()
//
//	for i := range 10 {
//	    _ = v.PushBack(i)
//	}
//	for x := range v.Values() {
//	    fmt.Println(x)
//	}
//
// Type-erased elements:
//
//	r, _ := dynarray.NewRaw(0, 16)
//	defer r.Destroy()
//
//	_ = r.PushBack(make([]byte, 16))
//	elem := r.Get(0) // writable view, 16 bytes
//
// # Capacity Policy
//
// A container never holds fewer than MinimumCapacity slots. When an append
// or insert finds it full, it grows to GrowthFactor times its size. When a
// removal leaves it holding Cap()/ShrinkDivisor elements, it shrinks to
// GrowthFactor times its size (disable with WithoutShrink). Resize, Reserve
// and ShrinkToFit give explicit control. Every reallocation goes through a
// single routine and leaves the container unchanged if the allocation fails.
//
// # Cursors
//
// A cursor stores an index and the container's modification epoch. Inserts,
// erases, reallocations, Clear, Destroy, Swap and moves advance the epoch;
// a cursor from an earlier epoch is no longer Valid and its Get returns nil.
// EraseAt returns a fresh cursor so a loop can erase while iterating:
//
//	for c := r.Begin(); !c.Equals(r.End()); {
//	    if drop(c.Get()) {
//	        c, _ = r.EraseAt(c)
//	    } else {
//	        c.Increment()
//	    }
//	}
//
// # Memory
//
// Raw buffers come from an Allocator: HeapAllocator (default),
// AlignedAllocator (64-byte aligned) or OffHeapAllocator (anonymous memory
// mappings). WithMemoryController charges every buffer against a shared
// resource.Controller, so a group of containers can be held to a memory
// budget and an allocation rate.
//
// # Errors
//
// Operations return sentinel errors (ErrEmpty, ErrNotInitialized, ...) or
// the typed *IndexError and *AllocationError, all usable with errors.Is.
// Building with -tags dynarray_debug additionally panics on contract
// violations such as out-of-range indexes.
//
// Containers are not safe for concurrent use.
package dynarray
