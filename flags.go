package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"

	"github.com/cmpsite/mdx2html/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for mdx2html.
type params struct {
	version bool
	help    Help

	Config string
	Debug  flagvalue.FileSwitch

	OutputDir string
	Home      string

	Embedded    bool
	Drafts      bool
	Frontmatter string
	Highlight   highlightParams
	Labels      []labelPair

	Pagefind flagvalue.Switch
	Serve    string

	SrcDir string
}

// cliParser parses the command line arguments for mdx2html.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("mdx2html", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Filesystem:
	flag.StringVar(&p.OutputDir, "out", "_site", "")
	flag.StringVar(&p.Config, "config", "", "")

	// HTML output:
	flag.StringVar(&p.Home, "home", "", "")
	flag.BoolVar(&p.Embedded, "embed", false, "")
	flag.BoolVar(&p.Drafts, "drafts", false, "")
	flag.StringVar(&p.Frontmatter, "frontmatter", "", "")
	flag.Var(&p.Highlight, "highlight", "")
	flag.Var(flagvalue.ListOf(&p.Labels), "label", "")

	// Integrations:
	flag.Var(&p.Pagefind, "pagefind", "")
	flag.StringVar(&p.Serve, "serve", "", "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	err := ff.Parse(fset, args,
		ff.WithEnvVarPrefix("MDX2HTML"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "mdx2html", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch len(args) {
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide a source directory.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	case 1:
		p.SrcDir = args[0]
	default:
		fmt.Fprintf(cmd.Stderr, "Too many arguments: %q\n", args[1:])
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// labelPair overrides the display name for a comparison tag.
// It's specified on the command line in the form 'tag=Name'.
type labelPair struct {
	Tag  string
	Name string
}

var _ flag.Getter = (*labelPair)(nil)

func (l *labelPair) Get() any { return l }

func (l *labelPair) String() string {
	return fmt.Sprintf("%s=%s", l.Tag, l.Name)
}

func (l *labelPair) Set(s string) error {
	idx := strings.IndexRune(s, '=')
	if idx < 0 {
		return errtrace.New("expected form 'tag=name'")
	}

	l.Tag = s[:idx]
	l.Name = s[idx+1:]
	if len(l.Tag) == 0 || len(l.Name) == 0 {
		return errtrace.New("tag and name must be non-empty")
	}
	return nil
}

// highlightMode specifies how highlighted code is styled:
// with CSS classes, inline style attributes,
// or picking automatically based on the output mode.
type highlightMode int

const (
	highlightModeAuto highlightMode = iota
	highlightModeClasses
	highlightModeInline
)

func (m highlightMode) String() string {
	switch m {
	case highlightModeAuto:
		return "auto"
	case highlightModeClasses:
		return "classes"
	case highlightModeInline:
		return "inline"
	default:
		return fmt.Sprintf("highlightMode(%d)", int(m))
	}
}

func (m *highlightMode) Set(s string) error {
	switch s {
	case "auto":
		*m = highlightModeAuto
	case "classes":
		*m = highlightModeClasses
	case "inline":
		*m = highlightModeInline
	default:
		return errtrace.Errorf("unrecognized highlight mode %q", s)
	}
	return nil
}

// highlightParams is the value of the -highlight flag,
// specified in the form '[mode:]theme'.
type highlightParams struct {
	Mode  highlightMode
	Theme string
}

var _ flag.Getter = (*highlightParams)(nil)

func (h *highlightParams) Get() any { return h }

func (h *highlightParams) String() string {
	return fmt.Sprintf("%v:%v", h.Mode, h.Theme)
}

func (h *highlightParams) Set(s string) error {
	if idx := strings.IndexRune(s, ':'); idx >= 0 {
		if err := h.Mode.Set(s[:idx]); err != nil {
			return err
		}
		s = s[idx+1:]
	}
	h.Theme = s
	return nil
}
