package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"braces.dev/errtrace"

	"github.com/cmpsite/mdx2html/internal/livereload"
)

// serve runs the development server until interrupted:
// it builds the site once up-front,
// then rebuilds and reloads connected browsers
// whenever a source document changes.
func (cmd *mainCmd) serve(opts *params, generate func() error) error {
	// The initial build must succeed.
	// Failures after that leave the previous output in place.
	if err := generate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reload := livereload.Server{Logger: cmd.log}
	httpSrv := http.Server{
		Addr:    opts.Serve,
		Handler: reload.Handler(opts.OutputDir),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	watcher := livereload.Watcher{Logger: cmd.log}
	go func() {
		err := watcher.Watch(ctx, opts.SrcDir, func() {
			if err := generate(); err != nil {
				cmd.log.Printf("mdx2html: %v", err)
				return
			}
			reload.Reload(ctx)
		})
		if err != nil {
			cmd.log.Printf("mdx2html: watch: %v", err)
		}
	}()

	cmd.log.Printf("Serving %v at http://%v", opts.OutputDir, opts.Serve)
	err := httpSrv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errtrace.Wrap(err)
	}
	return nil
}
