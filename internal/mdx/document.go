// Package mdx parses the MDX-like tutorial documents of a site:
// optional YAML frontmatter, markdown prose, and UniversalEditor
// comparison containers holding language-tagged code fences.
package mdx

import "github.com/cmpsite/mdx2html/internal/compare"

// Meta is the YAML frontmatter of a document.
type Meta struct {
	// Title of the page. Directory indexes list pages by title.
	Title string `yaml:"title"`

	// Description is a short summary shown in directory indexes.
	Description string `yaml:"description"`

	// Lang is the human language of the page, e.g. "en" or "zh-TW".
	// It becomes the lang attribute of the rendered page.
	Lang string `yaml:"lang"`

	// Draft excludes the page from generation
	// unless drafts are explicitly requested.
	Draft bool `yaml:"draft"`
}

// Document is a parsed tutorial page.
type Document struct {
	// Name identifies the document in error messages,
	// typically its file path.
	Name string

	// Meta holds the document's frontmatter, if any.
	Meta Meta

	// Nodes are the document's contents in source order.
	Nodes []Node
}

// Node is a single top-level element of a document:
// either [Prose] or [Comparison].
type Node interface{ node() }

// Prose is a run of markdown text between comparison containers.
type Prose struct {
	// Text is the raw markdown source.
	Text string
}

func (*Prose) node() {}

// Comparison is a comparison container parsed into its block.
type Comparison struct {
	Block *compare.Block
}

func (*Comparison) node() {}
