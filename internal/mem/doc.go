// Package mem provides the allocators that back container buffers.
//
// Every allocator implements Allocator[T]: Alloc returns a buffer of exactly
// n elements or an error, and Free releases a buffer previously returned by
// the same allocator. Allocation failure is always reported as an error,
// never as a nil buffer with a nil error.
//
// # Implementations
//
//   - Heap: Go heap via make; Free is a no-op left to the garbage collector
//   - Aligned: 64-byte aligned byte buffers (AVX-512 friendly)
//   - OffHeap: anonymous mmap regions outside the Go heap; Free unmaps
//   - Budget: charges a resource.Controller before delegating
//   - Faulty: injects failures for tests
package mem
