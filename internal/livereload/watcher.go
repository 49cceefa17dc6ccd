// Package livereload implements the development serve mode:
// it serves the generated site over HTTP, watches the source tree,
// and tells connected browsers to reload after a rebuild.
package livereload

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/fsnotify/fsnotify"
)

const _defaultDebounce = 250 * time.Millisecond

// Watcher watches a source tree for document changes,
// grouping rapid bursts of events into a single notification.
type Watcher struct {
	// Logger for watch events. Required.
	Logger *log.Logger

	// Debounce is how long to wait after the last change
	// before notifying. Defaults to 250ms.
	Debounce time.Duration

	// Exts are the file extensions that trigger a notification,
	// including the leading dot. Defaults to .mdx and .md.
	Exts []string
}

// Watch watches root until ctx is canceled,
// calling fn after every settled burst of changes.
func (w *Watcher) Watch(ctx context.Context, root string, fn func()) error {
	debounce := w.Debounce
	if debounce == 0 {
		debounce = _defaultDebounce
	}
	exts := w.Exts
	if len(exts) == 0 {
		exts = []string{".mdx", ".md"}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer fsw.Close()

	if err := addDirs(fsw, root); err != nil {
		return errtrace.Wrap(err)
	}

	relevant := func(name string) bool {
		ext := filepath.Ext(name)
		for _, want := range exts {
			if ext == want {
				return true
			}
		}
		return false
	}

	var (
		timer *time.Timer
		fire  = make(chan struct{}, 1)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			// New directories must be watched as they appear.
			// addDirs ignores plain files,
			// and a path that vanished before we got here is fine.
			if ev.Has(fsnotify.Create) {
				_ = addDirs(fsw, ev.Name)
			}

			if !relevant(ev.Name) {
				continue
			}

			w.Logger.Printf("Changed: %v", ev.Name)
			if timer == nil {
				timer = time.AfterFunc(debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Printf("Watch error: %v", err)

		case <-fire:
			fn()
		}
	}
}

// addDirs registers path and every directory under it
// with the watcher. Non-directories are ignored.
func addDirs(fsw *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && p != path {
			return fs.SkipDir
		}
		return fsw.Add(p)
	})
}
