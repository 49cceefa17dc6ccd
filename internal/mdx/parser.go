package mdx

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/cmpsite/mdx2html/internal/compare"
	"gopkg.in/yaml.v3"
)

const (
	_openTag  = "<UniversalEditor"
	_closeTag = "</UniversalEditor>"
)

// MalformedDocumentError reports a structurally invalid document.
// It fails the build: broken pages must not ship.
type MalformedDocumentError struct {
	// Name of the document, typically its file path.
	Name string

	// Line is the 1-indexed line of the offending construct.
	Line int

	// Msg describes what is wrong.
	Msg string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("%s:%d: malformed document: %s", e.Name, e.Line, e.Msg)
}

// Parser parses tutorial documents.
// The zero value of Parser is a valid parser.
//
// Parsing is a pure transformation:
// the same input always yields the same Document.
type Parser struct{}

// ParseFile reads and parses the document at the given path.
func (p *Parser) ParseFile(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(p.Parse(path, src))
}

// Parse parses a single document.
// name identifies the document in error messages.
func (*Parser) Parse(name string, src []byte) (*Document, error) {
	d := docParser{
		name:  name,
		lines: splitLines(string(src)),
	}
	return errtrace.Wrap2(d.parse())
}

// docParser tracks the position of one parse pass over a document.
type docParser struct {
	name  string
	lines []string
	pos   int // index of the line being inspected
}

func (d *docParser) errf(line int, format string, args ...any) error {
	return &MalformedDocumentError{
		Name: d.name,
		Line: line,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (d *docParser) parse() (*Document, error) {
	doc := Document{Name: d.name}
	if err := d.frontmatter(&doc.Meta); err != nil {
		return nil, err
	}

	var prose []string
	flush := func() {
		text := strings.Join(prose, "\n")
		if strings.TrimSpace(text) != "" {
			doc.Nodes = append(doc.Nodes, &Prose{Text: text})
		}
		prose = prose[:0]
	}

	// Width of the prose code fence we're inside, or 0.
	// Container tags inside a prose fence are literal text.
	var fence int
	for d.pos < len(d.lines) {
		line := d.lines[d.pos]
		switch {
		case fence > 0:
			if isFenceClose(line, fence) {
				fence = 0
			}
		case strings.HasPrefix(line, "```"):
			fence = fenceWidth(line)
		case isContainerOpen(line):
			flush()
			blk, err := d.container()
			if err != nil {
				return nil, err
			}
			doc.Nodes = append(doc.Nodes, &Comparison{Block: blk})
			continue
		}
		prose = append(prose, line)
		d.pos++
	}
	flush()

	return &doc, nil
}

// frontmatter consumes the YAML frontmatter at the top of the
// document, if any, and fills meta from it.
func (d *docParser) frontmatter(meta *Meta) error {
	if len(d.lines) == 0 || strings.TrimRight(d.lines[0], " \t") != "---" {
		return nil
	}
	for i := 1; i < len(d.lines); i++ {
		if strings.TrimRight(d.lines[i], " \t") != "---" {
			continue
		}
		body := strings.Join(d.lines[1:i], "\n")
		if err := yaml.Unmarshal([]byte(body), meta); err != nil {
			return d.errf(1, "invalid frontmatter: %v", err)
		}
		d.pos = i + 1
		return nil
	}
	return d.errf(1, "unterminated frontmatter")
}

// container consumes a comparison container,
// starting at its opening tag.
func (d *docParser) container() (*compare.Block, error) {
	openLine := d.pos + 1
	tag, err := parseContainerTag(d.lines[d.pos])
	if err != nil {
		return nil, d.errf(openLine, "%v", err)
	}
	d.pos++

	if tag.SelfClosing {
		return nil, d.errf(openLine, "comparison container has no code examples")
	}

	blk := compare.Block{Title: tag.Title, Compare: tag.Compare}
	for d.pos < len(d.lines) {
		line := d.lines[d.pos]
		switch {
		case strings.TrimRight(line, " \t") == _closeTag:
			d.pos++
			if len(blk.Examples) == 0 {
				return nil, d.errf(openLine, "comparison container has no code examples")
			}
			return &blk, nil

		case strings.HasPrefix(line, "```"):
			ex, err := d.fence()
			if err != nil {
				return nil, err
			}
			blk.Examples = append(blk.Examples, *ex)

		default:
			if strings.TrimSpace(line) != "" {
				return nil, d.errf(d.pos+1, "unexpected text inside comparison container")
			}
			d.pos++
		}
	}
	return nil, d.errf(openLine, "unclosed comparison container")
}

// fence consumes one fenced code block,
// starting at its opening fence line.
func (d *docParser) fence() (*compare.Example, error) {
	openLine := d.pos + 1
	line := d.lines[d.pos]
	width := fenceWidth(line)

	info := strings.TrimSpace(line[width:])
	if info == "" {
		return nil, d.errf(openLine, "code fence is missing a language annotation")
	}

	// The info string is "lang !! tag". A fence without the
	// comparison-group marker tags the example by its language.
	lang, tag := info, info
	if idx := strings.Index(info, "!!"); idx >= 0 {
		lang = strings.TrimSpace(info[:idx])
		tag = strings.TrimSpace(info[idx+2:])
		if lang == "" {
			return nil, d.errf(openLine, "code fence is missing a language annotation")
		}
		if tag == "" {
			return nil, d.errf(openLine, "code fence is missing a comparison tag")
		}
	}
	d.pos++

	var body []string
	for d.pos < len(d.lines) {
		l := d.lines[d.pos]
		if isFenceClose(l, width) {
			d.pos++
			code := strings.TrimRight(strings.Join(body, "\n"), "\n")
			return &compare.Example{Lang: lang, Tag: tag, Code: code}, nil
		}
		body = append(body, l)
		d.pos++
	}
	return nil, d.errf(openLine, "unclosed code fence")
}

// containerTag holds the attributes of a container's opening tag.
type containerTag struct {
	Title       string
	Compare     bool
	SelfClosing bool
}

func isContainerOpen(line string) bool {
	if !strings.HasPrefix(line, _openTag) {
		return false
	}
	rest := line[len(_openTag):]
	if rest == "" {
		return true // unterminated; reported by parseContainerTag
	}
	switch rest[0] {
	case ' ', '\t', '>', '/':
		return true
	}
	return false
}

func parseContainerTag(line string) (containerTag, error) {
	var tag containerTag
	rest := line[len(_openTag):]
	for {
		rest = strings.TrimLeft(rest, " \t")
		switch {
		case rest == "":
			return tag, errors.New("unterminated container tag")
		case strings.HasPrefix(rest, "/>"):
			tag.SelfClosing = true
			return tag, nil
		case strings.HasPrefix(rest, ">"):
			return tag, nil
		}

		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			return tag, fmt.Errorf("bad container attribute near %q", rest)
		}
		key := strings.TrimSpace(rest[:eq])
		rest = rest[eq+1:]

		var value string
		switch {
		case strings.HasPrefix(rest, `"`):
			v, tail, err := scanQuoted(rest)
			if err != nil {
				return tag, fmt.Errorf("attribute %q: %w", key, err)
			}
			value, rest = v, tail
		case strings.HasPrefix(rest, "{"):
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return tag, fmt.Errorf("attribute %q: unterminated expression", key)
			}
			value, rest = strings.TrimSpace(rest[1:end]), rest[end+1:]
		default:
			return tag, fmt.Errorf("attribute %q: expected a quoted or braced value", key)
		}

		switch key {
		case "title":
			tag.Title = value
		case "compare":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return tag, fmt.Errorf("attribute %q: %v", key, err)
			}
			tag.Compare = b
		default:
			// The authoring component carries props
			// the generator has no use for. Tolerate them.
		}
	}
}

// scanQuoted consumes a double-quoted value from the start of s,
// honoring backslash escapes, and returns it unquoted
// along with the remainder of s.
func scanQuoted(s string) (value, rest string, err error) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			v, err := strconv.Unquote(s[:i+1])
			if err != nil {
				return "", "", fmt.Errorf("bad quoted value: %v", err)
			}
			return v, s[i+1:], nil
		}
	}
	return "", "", errors.New("unterminated quoted value")
}

func fenceWidth(line string) int {
	i := 0
	for i < len(line) && line[i] == '`' {
		i++
	}
	return i
}

// isFenceClose reports whether line closes a fence of the given
// width: backticks only, at least as many as the opening fence.
func isFenceClose(line string, width int) bool {
	line = strings.TrimRight(line, " \t")
	if len(line) < width {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '`' {
			return false
		}
	}
	return true
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
