// Package errdefer helps run cleanup operations inside defer
// statements when those operations may themselves fail.
package errdefer

import (
	"errors"
	"io"
)

// Close calls Close on the given Closer,
// and joins any error returned with the given error.
//
// Use it inside a defer statement with a named return.
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}
