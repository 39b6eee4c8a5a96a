//go:build dynarray_debug

package assert

// Enabled reports whether contract checks panic.
const Enabled = true
