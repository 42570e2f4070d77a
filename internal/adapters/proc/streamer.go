// Package proc implements the process streamer adapter on top of os/exec.
package proc

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"syscall"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/piper/internal/core/domain"
	"go.trai.ch/piper/internal/core/ports"
	"go.trai.ch/zerr"
)

// Phase is the lifecycle state of the most recent run.
type Phase int32

const (
	// PhaseNotStarted means Run has not been called yet.
	PhaseNotStarted Phase = iota
	// PhaseSpawned means the process has started but draining has not begun.
	PhaseSpawned
	// PhaseDraining means both drain tasks are reading the output streams.
	PhaseDraining
	// PhaseCompleted means both drains finished and the exit status was collected.
	PhaseCompleted
	// PhaseSpawnFailed means the process could not be started at all.
	PhaseSpawnFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawned:
		return "spawned"
	case PhaseDraining:
		return "draining"
	case PhaseCompleted:
		return "completed"
	case PhaseSpawnFailed:
		return "spawn_failed"
	default:
		return "not_started"
	}
}

// defaultWaitDelay is how long a cancelled child gets to react to SIGTERM
// before it is killed.
const defaultWaitDelay = 5 * time.Second

// Streamer implements ports.Streamer. It owns the process handle and both
// pipe ends for the lifetime of a run; Run does not return until the child
// has been waited on and both streams have hit end-of-file.
type Streamer struct {
	logger    ports.Logger
	waitDelay time.Duration
	phase     atomic.Int32
}

// NewStreamer creates a new Streamer.
func NewStreamer(logger ports.Logger) *Streamer {
	return &Streamer{
		logger:    logger,
		waitDelay: defaultWaitDelay,
	}
}

// Phase returns the lifecycle state of the most recent run. A Streamer
// supervises one run at a time.
func (s *Streamer) Phase() Phase {
	return Phase(s.phase.Load())
}

func (s *Streamer) setPhase(p Phase) {
	s.phase.Store(int32(p))
}

// Run launches the invocation and streams its output lines to the sink.
// See ports.Streamer for the full contract.
func (s *Streamer) Run(ctx context.Context, inv domain.Invocation, sink ports.Sink) (domain.ExitOutcome, error) {
	cmd := exec.CommandContext(ctx, inv.Path(), inv.Args()...) //nolint:gosec // user provided command
	cmd.Env = resolveEnvironment(os.Environ(), inv.Environment())

	// The child gets its own process group so cancellation reaches the whole
	// tree: a forked grandchild inherits the pipes and would otherwise hold
	// the drains open after the direct child is gone.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	// On cancellation, ask the group to stop and let the drains run to EOF.
	// WaitDelay escalates to SIGKILL if the child ignores the request.
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	}
	cmd.WaitDelay = s.waitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.setPhase(PhaseSpawnFailed)
		return domain.ExitOutcome{}, zerr.Wrap(domain.ErrSpawnFailed, err.Error())
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		s.setPhase(PhaseSpawnFailed)
		return domain.ExitOutcome{}, zerr.Wrap(domain.ErrSpawnFailed, err.Error())
	}

	if err := cmd.Start(); err != nil {
		s.setPhase(PhaseSpawnFailed)
		return domain.ExitOutcome{}, zerr.With(
			zerr.Wrap(domain.ErrSpawnFailed, err.Error()),
			"path", inv.Path(),
		)
	}
	s.setPhase(PhaseSpawned)

	// One drain task per stream. Results are read only after g.Wait, which
	// is the join barrier: cmd.Wait closes the pipes, so it must not run
	// while the drains are still reading.
	var outRes, errRes drainResult
	g := new(errgroup.Group)
	g.Go(func() error {
		outRes = s.drain(domain.SourceStdout, stdout, sink)
		return nil
	})
	g.Go(func() error {
		errRes = s.drain(domain.SourceStderr, stderr, sink)
		return nil
	})
	s.setPhase(PhaseDraining)

	_ = g.Wait()
	waitErr := cmd.Wait()
	s.setPhase(PhaseCompleted)

	outcome := domain.ExitOutcome{
		Spawned: true,
		Stats: domain.DrainStats{
			StdoutLines: outRes.lines,
			StderrLines: errRes.lines,
			ReadErrors:  outRes.readErrors + errRes.readErrors,
			SinkErrors:  outRes.sinkErrors + errRes.sinkErrors,
		},
	}

	if waitErr == nil {
		return outcome, nil
	}

	// A child that exits cleanly after a cancellation signal makes Wait
	// report the context error instead of an exit status.
	if errors.Is(waitErr, context.Canceled) || errors.Is(waitErr, context.DeadlineExceeded) {
		outcome.Code = -1
		return outcome, waitErr
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		outcome.Code = exitErr.ExitCode()
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			outcome.Code = -1
			outcome.Signal = status.Signal().String()
		}
		return outcome, nil
	}

	// Wait failed for a reason other than the child exiting unsuccessfully.
	outcome.Code = -1
	return outcome, zerr.Wrap(domain.ErrExitWait, waitErr.Error())
}

type drainResult struct {
	lines      int
	readErrors int
	sinkErrors int
}

// drain reads one stream to end-of-file, emitting one OutputLine per
// newline-terminated sequence. A read error is treated as end-of-stream for
// this stream only; sink failures are counted and never stop the drain.
func (s *Streamer) drain(src domain.StreamSource, r io.Reader, sink ports.Sink) drainResult {
	var res drainResult
	var sinkFailureLogged bool

	br := bufio.NewReader(r)
	for {
		text, err := br.ReadString('\n')

		if err == nil || text != "" {
			line := makeLine(src, text)
			res.lines++
			if emitErr := sink.Emit(line); emitErr != nil {
				res.sinkErrors++
				if !sinkFailureLogged {
					sinkFailureLogged = true
					s.logger.Warn("sink delivery failed on " + string(src) + ": " + emitErr.Error())
				}
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				res.readErrors++
				s.logger.Warn("read error on " + string(src) + ", treating as end-of-stream: " + err.Error())
			}
			return res
		}
	}
}

// makeLine strips the line terminator and flags non-decodable content
// instead of dropping it.
func makeLine(src domain.StreamSource, text string) domain.OutputLine {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	line := domain.OutputLine{Source: src, Text: text}
	if !utf8.ValidString(text) {
		line.Text = strings.ToValidUTF8(text, string(utf8.RuneError))
		line.Malformed = true
	}
	return line
}

// resolveEnvironment merges the extra invocation environment over the
// system environment.
func resolveEnvironment(sysEnv []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(extra))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}
	for k, v := range extra {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
