// mdx2html renders directories of MDX tutorial documents
// into a static HTML website with side-by-side code comparisons.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"text/template"

	"braces.dev/errtrace"

	"github.com/cmpsite/mdx2html/internal/highlight"
	"github.com/cmpsite/mdx2html/internal/html"
	"github.com/cmpsite/mdx2html/internal/mdx"
	"github.com/cmpsite/mdx2html/internal/pagefind"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errInvalidArguments) {
			cmd.log.Printf("mdx2html: %v", err)
		}
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("mdx2html: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()
	debugLog := log.New(debugw, "", 0)

	theme := opts.Highlight.Theme
	if theme == "" {
		theme = "plain"
	}
	style, err := highlight.LookupStyle(theme)
	if err != nil {
		return errtrace.Wrap(err)
	}

	// Embedded pages can't rely on our stylesheet,
	// so they get inline styles unless told otherwise.
	useClasses := !opts.Embedded
	switch opts.Highlight.Mode {
	case highlightModeClasses:
		useClasses = true
	case highlightModeInline:
		useClasses = false
	}

	var frontmatter *template.Template
	if len(opts.Frontmatter) > 0 {
		frontmatter, err = template.New("frontmatter").Parse(opts.Frontmatter)
		if err != nil {
			return errtrace.Errorf("bad frontmatter template: %w", err)
		}
	}

	labels := make(map[string]string, len(opts.Labels))
	for _, l := range opts.Labels {
		labels[l.Tag] = l.Name
	}

	finder := mdx.Finder{DebugLog: debugLog}
	renderer := html.Renderer{
		Home:        opts.Home,
		Embedded:    opts.Embedded,
		FrontMatter: frontmatter,
		Highlighter: &highlight.Highlighter{
			Style:      style,
			UseClasses: useClasses,
			Logger:     cmd.log,
		},
		Labels:     labels,
		LiveReload: opts.Serve != "",
	}

	g := Generator{
		Log:      cmd.log,
		Parser:   new(mdx.Parser),
		Renderer: &renderer,
		OutDir:   opts.OutputDir,
		Drafts:   opts.Drafts,
	}

	generate := func() error {
		refs, err := finder.FindDocuments(opts.SrcDir)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := g.Generate(refs); err != nil {
			return err
		}

		if opts.Pagefind.Bool() {
			pf := pagefind.CLI{
				Pagefind: opts.Pagefind.Value(),
				Log:      cmd.log,
			}
			req := pagefind.IndexRequest{SiteDir: opts.OutputDir}
			if err := pf.Index(context.Background(), req); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	}

	if opts.Serve != "" {
		return cmd.serve(opts, generate)
	}
	return generate()
}
