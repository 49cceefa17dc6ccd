// Package must provides helper functions to assert program invariants.
// The program will panic if an invariant is violated.
package must

import "fmt"

// NotErrorf panics with the given message if the error is not nil.
func NotErrorf(err error, format string, args ...interface{}) {
	if err != nil {
		panic(fmt.Sprintf("unexpected error: %v\n%v", err, fmt.Sprintf(format, args...)))
	}
}
