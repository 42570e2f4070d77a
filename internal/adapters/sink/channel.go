package sink

import (
	"sync"

	"go.trai.ch/piper/internal/core/domain"
)

// Channel delivers lines to a channel for UI-style consumers. After Close,
// Emit fails with domain.ErrSinkClosed instead of panicking; the streamer
// tolerates this and keeps draining. The line channel itself is never
// closed, so a blocked producer can never race a close; consumers select on
// Done to learn that no more lines are coming.
type Channel struct {
	ch        chan domain.OutputLine
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannel creates a Channel sink with the given buffer size.
func NewChannel(buffer int) *Channel {
	return &Channel{
		ch:   make(chan domain.OutputLine, buffer),
		done: make(chan struct{}),
	}
}

// Lines returns the receive side of the sink.
func (c *Channel) Lines() <-chan domain.OutputLine {
	return c.ch
}

// Done is closed when the sink stops accepting lines.
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

// Emit delivers one line. It blocks while the buffer is full until the
// consumer catches up or the sink is closed.
func (c *Channel) Emit(line domain.OutputLine) error {
	select {
	case <-c.done:
		return domain.ErrSinkClosed
	default:
	}

	select {
	case c.ch <- line:
		return nil
	case <-c.done:
		return domain.ErrSinkClosed
	}
}

// Close stops accepting lines. Safe to call more than once.
func (c *Channel) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
