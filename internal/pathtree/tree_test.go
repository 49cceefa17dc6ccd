package pathtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_empty(t *testing.T) {
	t.Parallel()

	var r Root[int]
	_, ok := r.Lookup("foo")
	assert.False(t, ok)
	assert.Empty(t, r.Snapshot())
}

func TestRoot_valuesCascade(t *testing.T) {
	t.Parallel()

	var r Root[string]
	r.Set("foo/bar", "x")
	r.Set("foo/bar/baz", "y")

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "foo/bar", want: "x", wantOK: true},
		{path: "foo/bar/qux", want: "x", wantOK: true},
		{path: "foo/bar/baz", want: "y", wantOK: true},
		{path: "foo/bar/baz/qux", want: "y", wantOK: true},
		{path: "foo"},
		{path: "unrelated"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, ok := r.Lookup(tt.path)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoot_overwrite(t *testing.T) {
	t.Parallel()

	var r Root[int]
	r.Set("a", 1)
	r.Set("a", 2)

	got, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestRoot_extraSlashes(t *testing.T) {
	t.Parallel()

	var r Root[int]
	r.Set("a//b", 1)

	got, ok := r.Lookup("a/b/c")
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestRoot_snapshotOrder(t *testing.T) {
	t.Parallel()

	var r Root[int]
	r.Set("b", 2)
	r.Set("a/y", 1)
	r.Set("a/x", 3)
	r.Set("c", 4)

	snap := r.Snapshot()
	require.Len(t, snap, 3)

	// Children are sorted by name at every level.
	assert.Equal(t, "a", snap[0].Path)
	assert.Nil(t, snap[0].Value)
	require.Len(t, snap[0].Children, 2)
	assert.Equal(t, "a/x", snap[0].Children[0].Path)
	assert.Equal(t, "a/y", snap[0].Children[1].Path)

	assert.Equal(t, "b", snap[1].Path)
	require.NotNil(t, snap[1].Value)
	assert.Equal(t, 2, *snap[1].Value)

	assert.Equal(t, "c", snap[2].Path)
}
