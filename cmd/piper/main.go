// Package main is the entry point for the piper CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/piper/cmd/piper/commands"
	"go.trai.ch/piper/internal/app"
	"go.trai.ch/piper/internal/core/domain"
	_ "go.trai.ch/piper/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	// Cancellation on interrupt: the streamer signals the child and still
	// drains both streams before the run completes.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)
	if components.ConfigLoader != nil {
		cli.SetConfigHook(func(path string) {
			components.ConfigLoader.Filename = path
		})
	}

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrRunFailed) {
			// The failure detail was already streamed; zerr metadata carries
			// the exit code for the log.
			components.Logger.Error(err)
			return 1
		}
		// zerr prints a full report with stack trace and metadata via %+v.
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}
