// Package iotest routes log output produced by code under test
// into the test's own log.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

// Writer returns an io.Writer whose writes become t.Logf lines,
// interleaving logger output from the code under test
// with the test's own output.
func Writer(t testing.TB) io.Writer {
	return testWriter{t}
}

type testWriter struct{ t testing.TB }

func (w testWriter) Write(b []byte) (int, error) {
	w.t.Logf("%s", bytes.TrimSuffix(b, []byte("\n")))
	return len(b), nil
}
