// Package app implements the application layer for piper.
package app

import (
	"context"
	"io"
	"os"
	"time"

	"go.trai.ch/piper/internal/adapters/sink" //nolint:depguard // Default sink wired in app layer
	"go.trai.ch/piper/internal/core/domain"
	"go.trai.ch/piper/internal/core/ports"
	"go.trai.ch/zerr"
)

// RunOptions carries the per-run overrides from the CLI.
type RunOptions struct {
	// Quality overrides the configured default when QualitySet is true.
	Quality    int
	QualitySet bool
	// Lossless overrides the configured default when LosslessSet is true.
	Lossless    bool
	LosslessSet bool
	// Sink overrides the default writer sink when non-nil.
	Sink ports.Sink
	// Out is where the default writer sink sends lines. Defaults to stdout.
	Out io.Writer
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	streamer     ports.Streamer
	store        ports.RunStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, streamer ports.Streamer, store ports.RunStore, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		streamer:     streamer,
		store:        store,
		logger:       logger,
	}
}

// Run supervises one script invocation for the given target path.
//
// The invocation follows the fixed argument contract: the configured script
// receives the target followed by "--lossless" or "--quality <n>", with CLI
// overrides winning over configured defaults. Run returns an error for
// spawn failures, exit-status collection failures, and unsuccessful exits;
// stream-level trouble is reported through the logger only.
func (a *App) Run(ctx context.Context, target string, opts RunOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	quality := cfg.DefaultQuality
	if opts.QualitySet {
		quality = opts.Quality
	}
	lossless := cfg.DefaultLossless
	if opts.LosslessSet {
		lossless = opts.Lossless
	}

	inv, err := domain.NewScriptInvocation(cfg.Script, target, quality, lossless)
	if err != nil {
		return err
	}
	if len(cfg.Environment) > 0 {
		inv = inv.WithEnvironment(cfg.Environment)
	}

	snk := opts.Sink
	if snk == nil {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		snk = sink.NewWriter(out)
	}

	started := time.Now()
	outcome, runErr := a.streamer.Run(ctx, inv, snk)

	a.record(domain.RunRecord{
		Target:    target,
		Args:      inv.Args(),
		Outcome:   outcome,
		StartedAt: started,
		Duration:  time.Since(started),
	})

	if runErr != nil {
		return zerr.With(zerr.Wrap(runErr, "run failed"), "target", target)
	}
	if !outcome.Success() {
		return zerr.With(
			zerr.With(
				zerr.Wrap(domain.ErrRunFailed, "process exited unsuccessfully"),
				"exit_code", outcome.Code,
			),
			"signal", outcome.Signal,
		)
	}
	return nil
}

// record appends to the run history. History failures must not turn a
// finished run into an error.
func (a *App) record(rec domain.RunRecord) {
	if err := a.store.Append(rec); err != nil {
		a.logger.Warn("failed to record run history: " + err.Error())
	}
}
