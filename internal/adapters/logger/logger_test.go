package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/piper/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	log := logger.New()
	concrete, ok := log.(*logger.Logger)
	if !ok {
		t.Fatalf("expected *logger.Logger, got %T", log)
	}

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	log.Info("hello world")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level in output, got %q", out)
	}
	if !strings.Contains(out, "hello world") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	log := logger.New()
	concrete := log.(*logger.Logger)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	log.Warn("stream read failed")

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("expected WARN level in output, got %q", out)
	}
	if !strings.Contains(out, "stream read failed") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestLogger_Error(t *testing.T) {
	log := logger.New()
	concrete := log.(*logger.Logger)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	log.Error(errors.New("pipe broken"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level in output, got %q", out)
	}
	if !strings.Contains(out, "pipe broken") {
		t.Errorf("expected wrapped error in output, got %q", out)
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	log := logger.New()
	concrete := log.(*logger.Logger)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			log.Info("from goroutine")
		}
	}()
	for i := 0; i < 50; i++ {
		log.Warn("from main")
	}
	<-done

	lines := strings.Count(buf.String(), "\n")
	if lines != 100 {
		t.Errorf("expected 100 log lines, got %d", lines)
	}
}
