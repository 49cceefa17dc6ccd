// Package markdown renders the small markdown subset used by the
// tutorial corpus: headings, paragraphs, lists, blockquotes,
// horizontal rules, fenced code, and inline code/emphasis/links.
package markdown

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// CodeFunc renders a fenced code block found in prose.
type CodeFunc func(lang, code string) string

// Renderer converts markdown prose to HTML.
type Renderer struct {
	// Code renders fenced code blocks.
	// If nil, fences render as escaped <pre><code> blocks.
	Code CodeFunc
}

// Render converts src to HTML.
// The subset is small enough that there is no failure mode:
// anything the renderer doesn't recognize is a paragraph.
func (r *Renderer) Render(src string) string {
	var (
		out   strings.Builder
		para  []string
		list  string // "ul", "ol", or ""
		quote []string
	)

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		fmt.Fprintf(&out, "<p>%s</p>\n", inline(strings.Join(para, " ")))
		para = para[:0]
	}
	flushList := func() {
		if list == "" {
			return
		}
		fmt.Fprintf(&out, "</%s>\n", list)
		list = ""
	}
	flushQuote := func() {
		if len(quote) == 0 {
			return
		}
		fmt.Fprintf(&out, "<blockquote><p>%s</p></blockquote>\n",
			inline(strings.Join(quote, " ")))
		quote = quote[:0]
	}
	flush := func() {
		flushPara()
		flushList()
		flushQuote()
	}

	lines := strings.Split(src, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flush()

		case strings.HasPrefix(trimmed, "```"):
			flush()
			lang := strings.TrimSpace(trimmed[3:])
			var body []string
			for i++; i < len(lines); i++ {
				if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
					break
				}
				body = append(body, lines[i])
			}
			out.WriteString(r.codeBlock(lang, strings.Join(body, "\n")))
			out.WriteByte('\n')

		case strings.HasPrefix(trimmed, "#"):
			flush()
			level := 0
			for level < len(trimmed) && trimmed[level] == '#' {
				level++
			}
			if level > 6 || level == len(trimmed) || trimmed[level] != ' ' {
				para = append(para, trimmed)
				continue
			}
			text := strings.TrimSpace(trimmed[level:])
			fmt.Fprintf(&out, "<h%d>%s</h%d>\n", level, inline(text), level)

		case trimmed == "---" || trimmed == "***":
			flush()
			out.WriteString("<hr>\n")

		case strings.HasPrefix(trimmed, "> "), trimmed == ">":
			flushPara()
			flushList()
			quote = append(quote, strings.TrimPrefix(strings.TrimPrefix(trimmed, ">"), " "))

		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			flushPara()
			flushQuote()
			if list != "ul" {
				flushList()
				out.WriteString("<ul>\n")
				list = "ul"
			}
			fmt.Fprintf(&out, "<li>%s</li>\n", inline(trimmed[2:]))

		case isOrderedItem(trimmed):
			flushPara()
			flushQuote()
			if list != "ol" {
				flushList()
				out.WriteString("<ol>\n")
				list = "ol"
			}
			item := trimmed[strings.Index(trimmed, ". ")+2:]
			fmt.Fprintf(&out, "<li>%s</li>\n", inline(item))

		default:
			flushList()
			flushQuote()
			para = append(para, trimmed)
		}
	}
	flush()

	return out.String()
}

func (r *Renderer) codeBlock(lang, code string) string {
	if r.Code != nil {
		return r.Code(lang, code)
	}
	return fmt.Sprintf("<pre><code>%s</code></pre>", html.EscapeString(code))
}

func isOrderedItem(line string) bool {
	idx := strings.Index(line, ". ")
	if idx <= 0 {
		return false
	}
	for i := 0; i < idx; i++ {
		if line[i] < '0' || line[i] > '9' {
			return false
		}
	}
	return true
}

var (
	_codeSpan = regexp.MustCompile("`([^`]+)`")
	_link     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	_strong   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	_em       = regexp.MustCompile(`\*([^*]+)\*`)
)

// inline renders the inline span syntax of one block of text.
// Code spans are handled first so that emphasis markers
// inside them are left alone.
func inline(s string) string {
	var sb strings.Builder
	for len(s) > 0 {
		m := _codeSpan.FindStringSubmatchIndex(s)
		if m == nil {
			sb.WriteString(spans(s))
			break
		}
		sb.WriteString(spans(s[:m[0]]))
		sb.WriteString("<code>")
		sb.WriteString(html.EscapeString(s[m[2]:m[3]]))
		sb.WriteString("</code>")
		s = s[m[1]:]
	}
	return sb.String()
}

func spans(s string) string {
	s = html.EscapeString(s)
	s = _link.ReplaceAllString(s, `<a href="$2">$1</a>`)
	s = _strong.ReplaceAllString(s, "<strong>$1</strong>")
	s = _em.ReplaceAllString(s, "<em>$1</em>")
	return s
}
