// Package progrock provides a progrock-backed sink for process output.
package progrock

import (
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"go.trai.ch/piper/internal/core/domain"
	"go.trai.ch/zerr"
)

// Display records supervised runs as progrock vertices.
type Display struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Display with a default tape.
func New() *Display {
	return NewDisplay(progrock.NewTape())
}

// NewDisplay creates a Display recording to the given writer.
func NewDisplay(w progrock.Writer) *Display {
	return &Display{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Vertex starts a new vertex for one run and returns its sink.
func (d *Display) Vertex(name string) *Sink {
	v := d.rec.Vertex(digest.FromString(name), name)
	return &Sink{vertex: v}
}

// Close flushes and closes the recording session.
func (d *Display) Close() error {
	if c, ok := d.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Sink forwards output lines to a progrock vertex, keeping the two streams
// on the vertex's separate stdout and stderr writers. Vertex writers are
// safe for concurrent use, so both drain tasks may emit at once.
type Sink struct {
	vertex *progrock.VertexRecorder
}

// Emit writes one line to the vertex.
func (s *Sink) Emit(line domain.OutputLine) error {
	w := s.vertex.Stdout()
	if line.Source == domain.SourceStderr {
		w = s.vertex.Stderr()
	}
	if _, err := fmt.Fprintln(w, line.Text); err != nil {
		return zerr.Wrap(err, "failed to record output line")
	}
	return nil
}

// Done marks the vertex as finished, successfully or with an error.
func (s *Sink) Done(err error) {
	s.vertex.Done(err)
}
