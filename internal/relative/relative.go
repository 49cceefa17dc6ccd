// Package relative computes relative paths with string manipulation
// exclusively, without consulting the file system.
package relative

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

const (
	_slash       = "/"
	_filepathSep = string(filepath.Separator)
)

// Path returns a path to dst, relative to src.
// Both paths must be relative or both paths must be absolute,
// and they must both be /-separated.
// src is always treated as a directory.
func Path(src, dst string) string {
	return rel(_slash, src, dst)
}

// Filepath returns a path to dst, relative to src.
// Both paths must be relative or both paths must be absolute,
// and they must both be valid file paths for the current system.
func Filepath(src, dst string) string {
	return rel(_filepathSep, src, dst)
}

func rel(delim, src, dst string) string {
	if path.IsAbs(src) != path.IsAbs(dst) {
		panic(fmt.Sprintf("rel(%q, %q): both must be absolute, or both must be relative", src, dst))
	}

	src = strings.TrimSuffix(src, delim)

	var srcParts, dstParts []string
	if len(src) > 0 {
		srcParts = strings.Split(src, delim)
	}
	if len(dst) > 0 {
		dstParts = strings.Split(dst, delim)
	}

	// Skip components shared by both paths.
	for len(srcParts) > 0 && len(dstParts) > 0 && srcParts[0] == dstParts[0] {
		srcParts, dstParts = srcParts[1:], dstParts[1:]
	}

	parts := make([]string, 0, len(srcParts)+len(dstParts))
	for range srcParts {
		parts = append(parts, "..")
	}
	parts = append(parts, dstParts...)
	return strings.Join(parts, delim)
}
