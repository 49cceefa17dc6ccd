package highlight

import (
	"github.com/alecthomas/chroma/v2/lexers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// _labels maps the short comparison tags used by the tutorial corpus
// to display names. Anything else falls back to the lexer's own name.
var _labels = map[string]string{
	"js":   "JavaScript",
	"jsx":  "JSX",
	"ts":   "TypeScript",
	"tsx":  "TSX",
	"go":   "Go",
	"py":   "Python",
	"rb":   "Ruby",
	"rs":   "Rust",
	"sh":   "Shell",
	"yml":  "YAML",
	"yaml": "YAML",
}

var _title = cases.Title(language.English)

// Label returns a human-readable name for a language identifier,
// suitable for labeling a comparison tab.
func Label(tag string) string {
	if name, ok := _labels[tag]; ok {
		return name
	}
	if l := lexers.Get(tag); l != nil {
		return l.Config().Name
	}
	return _title.String(tag)
}
