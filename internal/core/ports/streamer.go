// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/piper/internal/core/domain"
)

// Streamer supervises a single external process: it launches the
// invocation, drains both output streams concurrently into the sink, and
// reports the final exit status.
//
//go:generate mockgen -source=streamer.go -destination=mocks/mock_streamer.go -package=mocks
type Streamer interface {
	// Run blocks until the process has exited and both streams have been
	// drained to end-of-file. The returned outcome is valid even when err is
	// non-nil, except that a spawn failure reports Spawned=false and
	// guarantees the sink was never called.
	//
	// Cancelling ctx requests early termination: the child is signalled,
	// the streams are still drained to end-of-file, and Run returns through
	// the same join barrier as a normal exit.
	Run(ctx context.Context, inv domain.Invocation, sink Sink) (domain.ExitOutcome, error)
}
