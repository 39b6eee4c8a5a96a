package assert

import "fmt"

// That panics with the formatted message when checks are enabled and cond is false.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("dynarray: contract violation: "+format, args...))
	}
}
