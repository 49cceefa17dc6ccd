package iotest

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	w := Writer(t)

	// Reports the full length even though
	// the trailing newline isn't logged.
	n, err := io.WriteString(w, "hello\n")
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = io.WriteString(w, "no newline")
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}
