package ports

import "go.trai.ch/piper/internal/core/domain"

// Sink receives the lines produced by a supervised process.
//
// Emit is called concurrently from the stdout and stderr drain tasks, so
// implementations must be safe for concurrent use. Each call carries one
// complete line; partial-line interleaving cannot occur. An Emit error is
// tolerated by the streamer: the drain continues and the failure is counted.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type Sink interface {
	Emit(line domain.OutputLine) error
}
