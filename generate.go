package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"

	"github.com/cmpsite/mdx2html/internal/errdefer"
	"github.com/cmpsite/mdx2html/internal/html"
	"github.com/cmpsite/mdx2html/internal/mdx"
	"github.com/cmpsite/mdx2html/internal/pathtree"
	"github.com/cmpsite/mdx2html/internal/relative"
)

// Finder searches for tutorial documents on-disk.
type Finder interface {
	FindDocuments(root string) ([]*mdx.DocumentRef, error)
}

var _ Finder = (*mdx.Finder)(nil)

// Parser loads a tutorial document from disk
// and parses its contents.
type Parser interface {
	ParseFile(path string) (*mdx.Document, error)
}

var _ Parser = (*mdx.Parser)(nil)

// Renderer renders parsed tutorial documents to HTML.
type Renderer interface {
	WriteStatic(string) error
	RenderPage(io.Writer, *html.PageInfo) error
	RenderIndex(io.Writer, *html.IndexInfo) error
}

var _ Renderer = (*html.Renderer)(nil)

// Generator renders a website from user-specified tutorial documents.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log      *log.Logger
	Parser   Parser
	Renderer Renderer
	OutDir   string

	// Drafts also renders pages marked draft in their frontmatter.
	Drafts bool
}

// Generate runs the generator over the provided documents.
func (g *Generator) Generate(refs []*mdx.DocumentRef) error {
	if err := g.Renderer.WriteStatic(g.OutDir); err != nil {
		return errtrace.Wrap(err)
	}

	_, err := g.renderTree(nil, buildTree(refs))
	return err
}

func (g *Generator) renderTrees(crumbs []html.Breadcrumb, trees []documentTree) ([]*renderedPage, error) {
	var pages []*renderedPage
	for _, t := range trees {
		rpages, err := g.renderTree(crumbs, t)
		if err != nil {
			return nil, err
		}
		pages = append(pages, rpages...)
	}
	return pages, nil
}

func (g *Generator) renderTree(crumbs []html.Breadcrumb, t documentTree) ([]*renderedPage, error) {
	// The root of the site gets no breadcrumb.
	if t.Path != "" {
		var crumbText string
		if n := len(crumbs); n > 0 {
			crumbText = relative.Path(crumbs[n-1].Path, t.Path)
		} else {
			crumbText = t.Path
		}
		crumbs = append(crumbs, html.Breadcrumb{Text: crumbText, Path: t.Path})
	}

	if t.Value == nil {
		return g.renderIndex(crumbs, t)
	}
	return g.renderPage(crumbs, t)
}

func (g *Generator) renderIndex(crumbs []html.Breadcrumb, t documentTree) ([]*renderedPage, error) {
	subpages, err := g.renderTrees(crumbs, t.Children)
	if err != nil {
		return nil, err
	}

	g.Log.Printf("Rendering index %v", t.Path)

	f, err := g.createIndexHTML(t.Path)
	if err != nil {
		return nil, err
	}
	defer errdefer.Close(&err, f)

	idx := html.IndexInfo{
		Path:        t.Path,
		NumChildren: len(t.Children),
		Subpages:    g.subpages(t.Path, subpages),
		Breadcrumbs: crumbs,
	}
	if err := g.Renderer.RenderIndex(f, &idx); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return subpages, nil
}

type renderedPage struct {
	Path        string
	Title       string
	Description string
}

func (g *Generator) renderPage(crumbs []html.Breadcrumb, t documentTree) (_ []*renderedPage, err error) {
	subpages, err := g.renderTrees(crumbs, t.Children)
	if err != nil {
		return nil, err
	}

	ref := *t.Value
	doc, err := g.Parser.ParseFile(ref.File)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	// Drafts don't render or get listed,
	// but their descendants remain reachable
	// from the listings above them.
	if doc.Meta.Draft && !g.Drafts {
		g.Log.Printf("Skipping draft %v", ref.File)
		return subpages, nil
	}

	g.Log.Printf("Rendering page %v", t.Path)

	f, err := g.createIndexHTML(t.Path)
	if err != nil {
		return nil, err
	}
	defer errdefer.Close(&err, f)

	info := html.PageInfo{
		Document:    doc,
		Path:        t.Path,
		NumChildren: len(t.Children),
		Subpages:    g.subpages(t.Path, subpages),
		Breadcrumbs: crumbs,
	}
	if err := g.Renderer.RenderPage(f, &info); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return []*renderedPage{
		{
			Path:        t.Path,
			Title:       info.PageTitle(),
			Description: doc.Meta.Description,
		},
	}, nil
}

func (g *Generator) createIndexHTML(sitePath string) (*os.File, error) {
	dir := filepath.Join(g.OutDir, filepath.FromSlash(sitePath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(os.Create(filepath.Join(dir, "index.html")))
}

func (g *Generator) subpages(from string, rpages []*renderedPage) []html.Subpage {
	subpages := make([]html.Subpage, 0, len(rpages))
	for _, rp := range rpages {
		subpages = append(subpages, html.Subpage{
			RelativePath: relative.Path(from, rp.Path),
			Title:        rp.Title,
			Description:  rp.Description,
		})
	}
	return subpages
}

type documentTree = pathtree.Snapshot[*mdx.DocumentRef]

// buildTree arranges the documents into a tree rooted at the
// site's home page. A document with an empty path, if any,
// becomes the home page itself; otherwise the home page is a
// plain directory listing.
func buildTree(refs []*mdx.DocumentRef) documentTree {
	var (
		root pathtree.Root[*mdx.DocumentRef]
		home *mdx.DocumentRef
	)
	for _, ref := range refs {
		if ref.Path == "" {
			home = ref
			continue
		}
		root.Set(ref.Path, ref)
	}

	t := documentTree{Children: root.Snapshot()}
	if home != nil {
		t.Value = &home
	}
	return t
}
