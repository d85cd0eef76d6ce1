package blenlib

import "fmt"

// assertf halts on a violated precondition. Range and state violations are
// caller bugs, not runtime conditions to handle, so they abort the same
// way an out-of-range slice index does instead of returning an error.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("blenlib: " + fmt.Sprintf(format, args...))
	}
}
