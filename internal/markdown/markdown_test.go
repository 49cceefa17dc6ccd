package markdown

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{
			desc: "paragraph",
			give: "Hello world.",
			want: "<p>Hello world.</p>\n",
		},
		{
			desc: "paragraph joins lines",
			give: "Hello\nworld.",
			want: "<p>Hello world.</p>\n",
		},
		{
			desc: "two paragraphs",
			give: "One.\n\nTwo.",
			want: "<p>One.</p>\n<p>Two.</p>\n",
		},
		{
			desc: "headings",
			give: "# Title\n## Section",
			want: "<h1>Title</h1>\n<h2>Section</h2>\n",
		},
		{
			desc: "hash without space is prose",
			give: "#hashtag",
			want: "<p>#hashtag</p>\n",
		},
		{
			desc: "unordered list",
			give: "- one\n- two",
			want: "<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n",
		},
		{
			desc: "ordered list",
			give: "1. one\n2. two",
			want: "<ol>\n<li>one</li>\n<li>two</li>\n</ol>\n",
		},
		{
			desc: "blockquote",
			give: "> wise\n> words",
			want: "<blockquote><p>wise words</p></blockquote>\n",
		},
		{
			desc: "horizontal rule",
			give: "above\n\n---\n\nbelow",
			want: "<p>above</p>\n<hr>\n<p>below</p>\n",
		},
		{
			desc: "inline code",
			give: "Use `fmt.Println` here.",
			want: "<p>Use <code>fmt.Println</code> here.</p>\n",
		},
		{
			desc: "emphasis inside code span is literal",
			give: "Run `a * b * c` now.",
			want: "<p>Run <code>a * b * c</code> now.</p>\n",
		},
		{
			desc: "strong and em",
			give: "This is **bold** and *italic*.",
			want: "<p>This is <strong>bold</strong> and <em>italic</em>.</p>\n",
		},
		{
			desc: "link",
			give: "See [the docs](https://example.com/docs).",
			want: `<p>See <a href="https://example.com/docs">the docs</a>.</p>` + "\n",
		},
		{
			desc: "escaping",
			give: "a < b & c > d",
			want: "<p>a &lt; b &amp; c &gt; d</p>\n",
		},
		{
			desc: "fenced code without renderer",
			give: "```go\nx := 5\n```",
			want: "<pre><code>x := 5</code></pre>\n",
		},
		{
			desc: "unclosed fence consumes the rest",
			give: "```go\nx := 5",
			want: "<pre><code>x := 5</code></pre>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got := new(Renderer).Render(tt.give)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_codeFunc(t *testing.T) {
	t.Parallel()

	r := Renderer{
		Code: func(lang, code string) string {
			return fmt.Sprintf("[%s:%s]", lang, code)
		},
	}

	got := r.Render("Before.\n\n```go\nx := 5\n```\n\nAfter.")
	assert.Equal(t, strings.Join([]string{
		"<p>Before.</p>",
		"[go:x := 5]",
		"<p>After.</p>",
		"",
	}, "\n"), got)
}
