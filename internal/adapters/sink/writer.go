// Package sink provides sink implementations for process output lines.
package sink

import (
	"io"
	"sync"

	"go.trai.ch/piper/internal/core/domain"
	"go.trai.ch/zerr"
)

// errorPrefix is prepended to stderr lines. This matches the output of the
// original tool, so existing consumers of the text stream keep working.
const errorPrefix = "ERROR: "

// Writer emits lines to an io.Writer, one per line. Stderr-tagged lines are
// prefixed so consumers can separate error output without losing content.
// It is safe for concurrent use by both drain tasks.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a Writer sink.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Emit writes one line. Each call produces exactly one complete output line,
// so concurrent emitters never interleave partial lines.
func (w *Writer) Emit(line domain.OutputLine) error {
	text := line.Text
	if line.Source == domain.SourceStderr {
		text = errorPrefix + text
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := io.WriteString(w.out, text+"\n"); err != nil {
		return zerr.Wrap(err, "failed to write output line")
	}
	return nil
}
