// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"io"
	"sync"
)

// Writer returns an io.Writer that splits its input on newlines,
// calling fn for each full line -- including the trailing newline.
// The done function flushes any buffered partial line;
// call it when no further writes are expected.
func Writer(fn func([]byte)) (_ io.Writer, done func()) {
	w := writer{writeLine: fn}
	return &w, w.flush
}

type writer struct {
	writeLine func([]byte)

	// Holds text from a partial write
	// until the next newline arrives.
	buff bytes.Buffer
	mu   sync.Mutex // guards buff
}

func (w *writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			// No newline yet. Buffer for a later write.
			w.buff.Write(bs)
			break
		}

		var line []byte
		line, bs = bs[:idx+1], bs[idx+1:]

		if w.buff.Len() == 0 {
			// Nothing buffered from a prior partial write.
			w.writeLine(line)
			continue
		}

		// Join with the prior partial write and flush.
		w.buff.Write(line)
		w.writeLine(w.buff.Bytes())
		w.buff.Reset()
	}
	return total, nil
}

// flush flushes buffered text, even if it doesn't end with a newline.
func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buff.Len() > 0 {
		w.writeLine(w.buff.Bytes())
		w.buff.Reset()
	}
}
