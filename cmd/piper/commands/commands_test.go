package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/piper/cmd/piper/commands"
	"go.trai.ch/piper/internal/adapters/sink"
	"go.trai.ch/piper/internal/app"
	"go.trai.ch/piper/internal/build"
	"go.trai.ch/piper/internal/core/domain"
)

// fakeApp records the last Run call and optionally emits lines to the sink.
type fakeApp struct {
	target string
	opts   app.RunOptions
	emit   []domain.OutputLine
	err    error
	calls  int
}

func (f *fakeApp) Run(_ context.Context, target string, opts app.RunOptions) error {
	f.calls++
	f.target = target
	f.opts = opts
	for _, line := range f.emit {
		if err := opts.Sink.Emit(line); err != nil {
			return err
		}
	}
	return f.err
}

func TestRunCommand(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)

	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs([]string{"run", "photo.jpg"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, fake.calls)
	require.Equal(t, "photo.jpg", fake.target)
	require.False(t, fake.opts.QualitySet)
	require.False(t, fake.opts.LosslessSet)
	require.Nil(t, fake.opts.Sink)
}

func TestRunCommand_QualityFlag(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)

	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs([]string{"run", "photo.jpg", "--quality", "55"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	require.True(t, fake.opts.QualitySet)
	require.Equal(t, 55, fake.opts.Quality)
}

func TestRunCommand_LosslessFlag(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)

	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs([]string{"run", "photo.jpg", "--lossless"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	require.True(t, fake.opts.LosslessSet)
	require.True(t, fake.opts.Lossless)
}

func TestRunCommand_RequiresTarget(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)

	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs([]string{"run"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	require.Equal(t, 0, fake.calls)
}

func TestRunCommand_ProgressSink(t *testing.T) {
	fake := &fakeApp{
		emit: []domain.OutputLine{
			{Source: domain.SourceStdout, Text: "converting"},
			{Source: domain.SourceStderr, Text: "slow disk"},
		},
	}
	cli := commands.New(fake)

	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs([]string{"run", "photo.jpg", "--progress"})

	// Lines emitted during the run flow through the channel sink into the
	// recording session; the command must drain them all before returning.
	err := cli.Execute(context.Background())
	require.NoError(t, err)
	require.IsType(t, &sink.Channel{}, fake.opts.Sink)
}

func TestVersionCommand(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)

	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	require.Contains(t, out.String(), build.Version)
}

func TestConfigHook(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)

	var seen string
	cli.SetConfigHook(func(path string) { seen = path })

	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs([]string{"run", "photo.jpg", "--config", "custom.yaml"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, "custom.yaml", seen)
}

func TestConfigHook_DefaultPath(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)

	var seen string
	cli.SetConfigHook(func(path string) { seen = path })

	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs([]string{"run", "photo.jpg"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, "piper.yaml", seen)
}
