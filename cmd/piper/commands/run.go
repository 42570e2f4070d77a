package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/piper/internal/adapters/sink"
	"go.trai.ch/piper/internal/adapters/sink/progrock"
	"go.trai.ch/piper/internal/app"
	"go.trai.ch/piper/internal/core/ports"
)

// defaultChannelBuffer smooths bursts from the drain tasks without letting
// the producer run unboundedly ahead of the recording session.
const defaultChannelBuffer = 64

// forwardLines consumes the channel sink until it is closed, draining any
// buffered lines before signaling completion.
func forwardLines(ch *sink.Channel, out ports.Sink, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case line := <-ch.Lines():
			_ = out.Emit(line)
		case <-ch.Done():
			for {
				select {
				case line := <-ch.Lines():
					_ = out.Emit(line)
				default:
					return
				}
			}
		}
	}
}

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <path>",
		Short: "Run the processing script for a target path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			quality, err := cmd.Flags().GetInt("quality")
			if err != nil {
				return err
			}
			lossless, err := cmd.Flags().GetBool("lossless")
			if err != nil {
				return err
			}
			progress, err := cmd.Flags().GetBool("progress")
			if err != nil {
				return err
			}

			opts := app.RunOptions{
				Quality:     quality,
				QualitySet:  cmd.Flags().Changed("quality"),
				Lossless:    lossless,
				LosslessSet: cmd.Flags().Changed("lossless"),
				Out:         cmd.OutOrStdout(),
			}

			if progress {
				display := progrock.New()
				defer func() { _ = display.Close() }()

				vertex := display.Vertex("run " + target)

				// The drain tasks produce into the channel sink; a single
				// consumer forwards to the vertex, decoupling the streamer
				// from the recording session.
				ch := sink.NewChannel(defaultChannelBuffer)
				opts.Sink = ch
				consumed := make(chan struct{})
				go forwardLines(ch, vertex, consumed)

				runErr := c.app.Run(cmd.Context(), target, opts)
				ch.Close()
				<-consumed
				vertex.Done(runErr)
				return runErr
			}

			return c.app.Run(cmd.Context(), target, opts)
		},
	}

	cmd.Flags().Int("quality", 0, "Quality level passed to the script (1-100, defaults to the configured value)")
	cmd.Flags().Bool("lossless", false, "Use lossless conversion instead of a quality level")
	cmd.Flags().Bool("progress", false, "Record the run as a progress vertex")

	return cmd
}
