package networking

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	adapter := NewSlogAdapter(logger)
	adapter.Debug("sending request", "method", "GET")
	adapter.Info("hello")
	adapter.Warn("careful")
	adapter.Error("boom", "kind", "SERVER_ERROR")

	out := buf.String()
	for _, want := range []string{"sending request", "method=GET", "hello", "careful", "boom", "kind=SERVER_ERROR"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSlogAdapterNilLogger(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	// Must not panic with the fallback default logger.
	adapter.Debug("ok")
}

func TestZapAdapter(t *testing.T) {
	adapter := NewZapAdapter(zap.NewNop().Sugar())
	adapter.Debug("sending request", "method", "GET")
	adapter.Info("hello")
	adapter.Warn("careful")
	adapter.Error("boom", "kind", "SERVER_ERROR")
}

func TestNopLogger(t *testing.T) {
	var l StructuredLogger = nopLogger{}
	l.Debug("ignored")
	l.Info("ignored")
	l.Warn("ignored")
	l.Error("ignored")
}
