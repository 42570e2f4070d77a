package progrock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piper/internal/adapters/sink/progrock"
	"go.trai.ch/piper/internal/core/domain"
)

func TestNew(t *testing.T) {
	d := progrock.New()
	assert.NotNil(t, d)
	assert.NoError(t, d.Close())
}

func TestSink_EmitAndDone(t *testing.T) {
	d := progrock.New()
	defer func() { _ = d.Close() }()

	s := d.Vertex("run testdata/cat.jpg")
	require.NoError(t, s.Emit(domain.OutputLine{Source: domain.SourceStdout, Text: "processing"}))
	require.NoError(t, s.Emit(domain.OutputLine{Source: domain.SourceStderr, Text: "low disk space"}))
	s.Done(nil)
}
