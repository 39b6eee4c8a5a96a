// Package resource implements a Controller for shared allocation limits.
//
// A Controller governs two resources across any number of containers:
//
//   - Memory: a hard byte budget for live buffers (non-blocking, fail-fast)
//   - Allocation rate: a token bucket on bytes allocated per second
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and an atomic
// counter for usage. AcquireMemory never blocks; it returns
// ErrMemoryLimitExceeded immediately when the budget would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides what to do
//	}
//	defer rc.ReleaseMemory(4096)
//
// # Allocation Rate Limiting
//
// TryAcquireAlloc consults a token bucket without waiting. A refused request
// surfaces as an allocation failure in the container that asked for it, so
// container operations stay synchronous.
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional limiting without nil checks everywhere.
package resource
