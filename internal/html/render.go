// Package html renders parsed tutorial documents into web pages.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	ttemplate "text/template"

	"github.com/cmpsite/mdx2html/internal/compare"
	"github.com/cmpsite/mdx2html/internal/highlight"
	"github.com/cmpsite/mdx2html/internal/markdown"
	"github.com/cmpsite/mdx2html/internal/mdx"
	"github.com/cmpsite/mdx2html/internal/must"
	"github.com/cmpsite/mdx2html/internal/relative"
)

const _staticDir = "_"

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	//go:embed static/**
	_staticFS embed.FS

	// Trick borrowed from pkgsite:
	// parse with unusable function references,
	// then Clone and replace the functions at render time.
	// Template validity is still verified at init.
	_pageTmpl = template.Must(
		template.New("page.html").
			Funcs((*render)(nil).FuncMap()).
			ParseFS(_tmplFS,
				"tmpl/page.html", "tmpl/layout.html", "tmpl/subpages.html"),
	)

	_indexTmpl = template.Must(
		template.New("directory.html").
			Funcs((*render)(nil).FuncMap()).
			ParseFS(_tmplFS,
				"tmpl/directory.html", "tmpl/layout.html", "tmpl/subpages.html"),
	)

	_comparisonTmpl = template.Must(
		template.New("comparison.html").ParseFS(_tmplFS, "tmpl/comparison.html"),
	)
)

// Highlighter renders code snippets into HTML.
type Highlighter interface {
	Highlight(lang, src string) string
	WriteCSS(io.Writer) error
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Renderer renders pages and directory indexes into HTML.
type Renderer struct {
	// Home is the path at which the site will be hosted,
	// relative to the root of the web server.
	// It is surfaced to frontmatter templates;
	// generated links are always page-relative.
	Home string

	// Whether we're in embedded mode.
	// In this mode, output will only contain the page body
	// and will not generate complete, stylized HTML pages.
	Embedded bool

	// FrontMatter to include at the top of each file, if any.
	FrontMatter *ttemplate.Template

	// Highlighter renders code snippets into HTML.
	Highlighter Highlighter

	// Labels overrides the display names of comparison tabs,
	// keyed by comparison tag.
	Labels map[string]string

	// LiveReload injects the development-mode reload script
	// into every page.
	LiveReload bool
}

func (r *Renderer) templateName() string {
	if r.Embedded {
		return "Body"
	}
	return "Page"
}

// WriteStatic dumps the site's static assets into the given directory.
//
// This is a no-op if the renderer is running in embedded mode.
func (r *Renderer) WriteStatic(dir string) error {
	if r.Embedded {
		return nil
	}

	dir = filepath.Join(dir, _staticDir)
	static, err := fs.Sub(_staticFS, "static")
	if err != nil {
		return err
	}
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == "." {
			return err
		}

		outPath := filepath.Join(dir, path)
		if d.IsDir() {
			return os.MkdirAll(outPath, 0o1755)
		}

		bs, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}

		// main.css carries the highlighting classes too,
		// so that every page needs only one stylesheet.
		if path == "css/main.css" {
			buff := bytes.NewBuffer(bs)
			buff.WriteString("\n")
			if err := r.Highlighter.WriteCSS(buff); err != nil {
				return err
			}
			bs = buff.Bytes()
		}

		return os.WriteFile(outPath, bs, 0o644)
	})
}

type frontmatterPageData struct {
	Title       string
	Description string
	Lang        string
}

type frontmatterData struct {
	// Home is the path at which the site is hosted,
	// relative to the root of the web server.
	Home string

	Path        string
	Basename    string
	NumChildren int
	Page        frontmatterPageData
}

func (r *Renderer) renderFrontmatter(w io.Writer, d frontmatterData) error {
	if r.FrontMatter == nil {
		return nil
	}

	var buff bytes.Buffer
	if err := r.FrontMatter.Execute(&buff, d); err != nil {
		return err
	}

	bs := bytes.TrimSpace(buff.Bytes())
	if len(bs) == 0 {
		return nil
	}
	bs = append(bs, '\n', '\n')

	_, err := w.Write(bs)
	return err
}

// Breadcrumb holds information about parents of a page
// so that we can leave a trail up for navigation.
type Breadcrumb struct {
	// Text for the crumb.
	Text string

	// Path to the crumb from the root of the output.
	Path string
}

// PageInfo specifies the page that should be rendered.
type PageInfo struct {
	// Parsed document for this page.
	*mdx.Document

	// Path of the page from the root of the site.
	Path string

	NumChildren int
	Subpages    []Subpage
	Breadcrumbs []Breadcrumb
}

// Basename is the last component of this page's path.
func (p *PageInfo) Basename() string {
	return path.Base(p.Path)
}

// PageTitle is the title of the page:
// its frontmatter title if it has one,
// and the last component of its path otherwise.
func (p *PageInfo) PageTitle() string {
	if t := p.Meta.Title; t != "" {
		return t
	}
	if p.Path == "" {
		return "Home"
	}
	return p.Basename()
}

// PageLang is the human language of the page, if declared.
func (p *PageInfo) PageLang() string { return p.Meta.Lang }

// PageDescription is the page's frontmatter description.
func (p *PageInfo) PageDescription() string { return p.Meta.Description }

// RenderPage renders a single tutorial page.
func (r *Renderer) RenderPage(w io.Writer, info *PageInfo) error {
	err := r.renderFrontmatter(w, frontmatterData{
		Home:        r.Home,
		Path:        info.Path,
		Basename:    info.Basename(),
		NumChildren: info.NumChildren,
		Page: frontmatterPageData{
			Title:       info.Meta.Title,
			Description: info.Meta.Description,
			Lang:        info.Meta.Lang,
		},
	})
	if err != nil {
		return err
	}
	render := r.render(info.Path)
	return template.Must(_pageTmpl.Clone()).
		Funcs(render.FuncMap()).
		ExecuteTemplate(w, r.templateName(), info)
}

// IndexInfo holds information about a directory listing.
type IndexInfo struct {
	// Path to this directory from the root of the site.
	Path string

	NumChildren int
	Subpages    []Subpage
	Breadcrumbs []Breadcrumb
}

// Basename is the last component of this directory's path,
// or if it's the top level directory, an empty string.
func (idx *IndexInfo) Basename() string {
	if len(idx.Path) == 0 {
		return ""
	}
	return path.Base(idx.Path)
}

// PageTitle is the heading for the directory listing.
func (idx *IndexInfo) PageTitle() string {
	if idx.Path == "" {
		return "Index"
	}
	return idx.Basename()
}

// PageLang is empty: directory listings declare no language.
func (idx *IndexInfo) PageLang() string { return "" }

// PageDescription is empty for directory listings.
func (idx *IndexInfo) PageDescription() string { return "" }

// Subpage is a descendant of a page or directory.
//
// This is typically a direct descendant,
// but it may be a couple levels deeper
// if there are no intermediate pages.
type Subpage struct {
	// RelativePath is the path to the subpage
	// relative to the page listing it.
	RelativePath string

	// Title of the subpage.
	Title string

	// Description is the subpage's frontmatter description.
	Description string
}

// RenderIndex renders the listing of a directory's pages as HTML.
func (r *Renderer) RenderIndex(w io.Writer, idx *IndexInfo) error {
	fmdata := frontmatterData{
		Home:        r.Home,
		Path:        idx.Path,
		Basename:    idx.Basename(),
		NumChildren: idx.NumChildren,
	}
	if err := r.renderFrontmatter(w, fmdata); err != nil {
		return err
	}
	render := r.render(idx.Path)
	return template.Must(_indexTmpl.Clone()).
		Funcs(render.FuncMap()).
		ExecuteTemplate(w, r.templateName(), idx)
}

func (r *Renderer) render(path string) *render {
	rr := &render{
		Path:        path,
		Highlighter: r.Highlighter,
		Labels:      r.Labels,
		LiveReload:  r.LiveReload,
	}
	rr.markdown = markdown.Renderer{
		Code: r.Highlighter.Highlight,
	}
	return rr
}

// render renders one page.
// It is not reused across pages:
// it tracks per-page widget identifiers.
type render struct {
	Path string

	Highlighter Highlighter
	Labels      map[string]string
	LiveReload  bool

	markdown markdown.Renderer
	widgets  int
}

func (r *render) FuncMap() template.FuncMap {
	return template.FuncMap{
		"node":         r.node,
		"static":       r.static,
		"relativePath": r.relativePath,
		"livereload":   func() bool { return r.LiveReload },
	}
}

func (r *render) relativePath(p string) string {
	rel := relative.Path(r.Path, p)
	if rel == "" {
		rel = "."
	}
	return rel
}

// static resolves a static asset path relative to the current page.
// Assets are always addressed relative to the page,
// so the site works no matter where it is mounted.
func (r *render) static(p string) string {
	return r.relativePath(path.Join(_staticDir, p))
}

// node renders one document node to HTML.
func (r *render) node(n mdx.Node) template.HTML {
	switch n := n.(type) {
	case *mdx.Prose:
		return template.HTML(r.markdown.Render(n.Text))
	case *mdx.Comparison:
		return r.comparison(n.Block)
	default:
		panic(fmt.Sprintf("unrecognized node type %T", n))
	}
}

type comparisonTab struct {
	ID       string
	Tag      string
	Label    string
	Code     template.HTML
	Selected bool
}

type comparisonView struct {
	ID     string
	Title  string
	Tabbed bool
	Tabs   []comparisonTab
}

func (r *render) comparison(b *compare.Block) template.HTML {
	r.widgets++
	id := fmt.Sprintf("cmp-%d", r.widgets)

	view := comparisonView{
		ID:     id,
		Title:  b.Title,
		Tabbed: b.Compare && len(b.Examples) > 1,
	}
	for i, ex := range b.Examples {
		view.Tabs = append(view.Tabs, comparisonTab{
			ID:       fmt.Sprintf("%s-%d", id, i),
			Tag:      ex.Tag,
			Label:    r.label(ex.Tag),
			Code:     template.HTML(r.Highlighter.Highlight(ex.Lang, ex.Code)),
			Selected: i == 0,
		})
	}

	var buf bytes.Buffer
	err := _comparisonTmpl.ExecuteTemplate(&buf, "comparison", &view)
	must.NotErrorf(err, "render comparison %q", b.Title)
	return template.HTML(buf.String())
}

func (r *render) label(tag string) string {
	if name, ok := r.Labels[tag]; ok {
		return name
	}
	return highlight.Label(tag)
}
