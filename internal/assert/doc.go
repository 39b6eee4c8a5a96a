// Package assert provides development-time contract checks.
//
// Checks are compiled in only with the dynarray_debug build tag:
//
//	go test -tags dynarray_debug ./...
//
// Without the tag Enabled is a false constant and every check is dead code.
// Callers still guard the same conditions at runtime and return errors, so
// a failed check in a debug build only turns a reported error into an
// immediate panic at the point of misuse.
package assert
