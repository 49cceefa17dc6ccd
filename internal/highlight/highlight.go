// Package highlight renders code snippets into HTML,
// picking a syntax highlighting lexer from the snippet's
// language identifier.
package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Highlighter turns code snippets into HTML.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	// Logger receives a warning for every unrecognized
	// language identifier. Unrecognized languages are not fatal:
	// the snippet degrades to plain text.
	Logger *log.Logger

	once      sync.Once
	formatter *chromahtml.Formatter

	mu      sync.Mutex
	unknown map[string]struct{} // identifiers already warned about
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return h.formatter.WriteCSS(w, h.Style)
}

// Known reports whether the language identifier
// resolves to a syntax highlighting lexer.
func Known(lang string) bool {
	return lexers.Get(lang) != nil
}

// Highlight renders the given snippet into HTML.
// If lang does not name a known language,
// the snippet is rendered as plain text and a warning is logged.
func (h *Highlighter) Highlight(lang, src string) string {
	h.init()

	lexer := lexers.Get(lang)
	if lexer == nil {
		// A fence without a language is plain text, not a typo.
		if lang != "" {
			h.warnUnknown(lang)
		}
		lexer = lexers.Fallback
	}

	var buf bytes.Buffer
	if h.UseClasses {
		fmt.Fprintf(&buf, "<pre class=%q>", chroma.StandardTypes[chroma.PreWrapper])
	} else {
		style := chromahtml.StyleEntryToCSS(h.Style.Get(chroma.PreWrapper))
		fmt.Fprintf(&buf, "<pre style=%q>", style)
	}

	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, src)
	if err != nil {
		// Tokenizing plain text can't fail, but if a lexer
		// somehow does, the escaped source is always valid output.
		template.HTMLEscape(&buf, []byte(src))
	} else if err := h.formatter.Format(&buf, h.Style, chroma.Literator(tokens...)); err != nil {
		template.HTMLEscape(&buf, []byte(src))
	}

	buf.WriteString("</pre>")
	return buf.String()
}

// warnUnknown logs a warning for the identifier
// the first time it is seen.
func (h *Highlighter) warnUnknown(lang string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.unknown[lang]; ok {
		return
	}
	if h.unknown == nil {
		h.unknown = make(map[string]struct{})
	}
	h.unknown[lang] = struct{}{}

	if h.Logger != nil {
		h.Logger.Printf("warning: unknown language %q: rendering as plain text", lang)
	}
}
