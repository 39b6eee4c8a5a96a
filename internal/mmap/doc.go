// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Overview
//
// MapAnon creates a read-write private mapping that lives outside the Go
// heap. The garbage collector never scans or moves it, so large raw element
// buffers stored there add no GC pressure. The trade-off is manual lifetime
// management: every mapping must be closed exactly once.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure
// no goroutine touches Bytes() after Close returns.
package mmap
