package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock_Markup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give Block
		want string
	}{
		{
			desc: "single example",
			give: Block{
				Title:   "Hello World",
				Compare: true,
				Examples: []Example{
					{Lang: "go", Tag: "go", Code: `fmt.Println("hi")`},
				},
			},
			want: strings.Join([]string{
				`<UniversalEditor title="Hello World" compare={true}>`,
				"```go !! go",
				`fmt.Println("hi")`,
				"```",
				`</UniversalEditor>`,
			}, "\n"),
		},
		{
			desc: "two languages",
			give: Block{
				Title:   "Variables",
				Compare: true,
				Examples: []Example{
					{Lang: "javascript", Tag: "js", Code: "let x = 5;"},
					{Lang: "go", Tag: "go", Code: "x := 5"},
				},
			},
			want: strings.Join([]string{
				`<UniversalEditor title="Variables" compare={true}>`,
				"```javascript !! js",
				"let x = 5;",
				"```",
				"```go !! go",
				"x := 5",
				"```",
				`</UniversalEditor>`,
			}, "\n"),
		},
		{
			desc: "quotes in title",
			give: Block{
				Title: `The "defer" keyword`,
				Examples: []Example{
					{Lang: "go", Tag: "go", Code: "defer f()"},
				},
			},
			want: strings.Join([]string{
				`<UniversalEditor title="The \"defer\" keyword" compare={false}>`,
				"```go !! go",
				"defer f()",
				"```",
				`</UniversalEditor>`,
			}, "\n"),
		},
		{
			desc: "empty code",
			give: Block{
				Title:   "Empty",
				Compare: true,
				Examples: []Example{
					{Lang: "go", Tag: "go"},
				},
			},
			want: strings.Join([]string{
				`<UniversalEditor title="Empty" compare={true}>`,
				"```go !! go",
				"```",
				`</UniversalEditor>`,
			}, "\n"),
		},
		{
			desc: "backtick runs widen the fence",
			give: Block{
				Title:   "Markdown",
				Compare: true,
				Examples: []Example{
					{Lang: "markdown", Tag: "md", Code: "```\ncode\n```"},
				},
			},
			want: strings.Join([]string{
				`<UniversalEditor title="Markdown" compare={true}>`,
				"````markdown !! md",
				"```",
				"code",
				"```",
				"````",
				`</UniversalEditor>`,
			}, "\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Markup())
		})
	}
}

func TestFenceFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want string
	}{
		{give: "", want: "```"},
		{give: "plain text", want: "```"},
		{give: "`inline`", want: "```"},
		{give: "```", want: "````"},
		{give: "`````", want: "``````"},
		{give: "foo\n````bar", want: "`````"},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fenceFor(tt.give))
		})
	}
}
