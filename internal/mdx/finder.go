package mdx

import (
	"io/fs"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"braces.dev/errtrace"
)

// DocumentRef points at a tutorial document discovered on disk.
type DocumentRef struct {
	// Path is the site path of the page:
	// '/'-separated, relative to the site root, no extension.
	// An index document maps to the path of its directory.
	Path string

	// File is the filesystem path of the source document.
	File string
}

// Finder discovers tutorial documents under a directory tree.
type Finder struct {
	// Exts are the file extensions recognized as documents,
	// including the leading dot. Defaults to .mdx and .md.
	Exts []string

	// DebugLog logs every discovered document, if set.
	DebugLog *log.Logger
}

// FindDocuments walks root and returns a reference
// for every document found under it.
func (f *Finder) FindDocuments(root string) ([]*DocumentRef, error) {
	exts := f.Exts
	if len(exts) == 0 {
		exts = []string{".mdx", ".md"}
	}

	var refs []*DocumentRef
	err := filepath.WalkDir(root, func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if p != root && strings.HasPrefix(de.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(p)
		if !slices.Contains(exts, ext) {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		site := filepath.ToSlash(strings.TrimSuffix(rel, ext))
		if base := "index"; site == base {
			site = ""
		} else {
			site = strings.TrimSuffix(site, "/"+base)
		}

		if f.DebugLog != nil {
			f.DebugLog.Printf("Found document %v", p)
		}
		refs = append(refs, &DocumentRef{Path: site, File: p})
		return nil
	})
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return refs, nil
}
