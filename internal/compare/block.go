// Package compare defines the data model for side-by-side code
// comparisons: a titled block that owns an ordered list of
// language-tagged examples of the same concept.
package compare

import (
	"fmt"
	"strings"
)

// Block is one titled group of alternate-language code examples.
//
// Blocks are built by the document parser at generation time
// and are not mutated afterwards.
type Block struct {
	// Title shown above the rendered comparison widget.
	Title string

	// Compare reports whether the examples are alternatives
	// of one another and should be presented behind a selector.
	// When false, examples are presented one after the other.
	Compare bool

	// Examples in display order.
	// A well-formed Block has at least one example.
	Examples []Example
}

// Example is a single code snippet inside a [Block].
type Example struct {
	// Lang is the language identifier from the fence info string.
	// It selects the syntax highlighting lexer.
	Lang string

	// Tag is the comparison-group marker for this example,
	// e.g. "js" or "go". Tags need not be unique within a block:
	// two variants of the same language are permitted.
	Tag string

	// Code is the snippet text without trailing newlines.
	Code string
}

// Markup serializes the block back to its container markup.
// Re-parsing the result yields a block equal to this one.
func (b *Block) Markup() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<UniversalEditor title=%q compare={%v}>\n", b.Title, b.Compare)
	for _, ex := range b.Examples {
		fence := fenceFor(ex.Code)
		fmt.Fprintf(&sb, "%s%s !! %s\n", fence, ex.Lang, ex.Tag)
		if len(ex.Code) > 0 {
			sb.WriteString(ex.Code)
			sb.WriteByte('\n')
		}
		sb.WriteString(fence)
		sb.WriteByte('\n')
	}
	sb.WriteString("</UniversalEditor>")
	return sb.String()
}

// fenceFor returns a backtick fence long enough
// that no line of code can close it early.
func fenceFor(code string) string {
	longest := 0
	for _, line := range strings.Split(code, "\n") {
		run := 0
		for _, r := range line {
			if r != '`' {
				break
			}
			run++
		}
		if run > longest {
			longest = run
		}
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}
