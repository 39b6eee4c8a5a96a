// Package testutil provides testing utilities for dynarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating element payloads and
// randomized operation sequences that can be replayed from the seed.
//
// # Random Elements
//
//	rng := testutil.NewRNG(seed)
//	elem := rng.Bytes(16)     // one 16-byte element
//	vals := rng.Ints(100, 1000) // 100 ints in [0, 1000)
//
// # Operation Sequences
//
//	for range 1000 {
//	    switch rng.Op(4) { ... }
//	}
package testutil
