package networking

import (
	"log/slog"

	"go.uber.org/zap"
)

// StructuredLogger is the logging interface used by the client. It matches
// log/slog's method set, so a slog.Logger adapts directly; args are
// alternating key-value pairs.
type StructuredLogger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}

// slogAdapter adapts *slog.Logger to StructuredLogger.
type slogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps a slog.Logger as a StructuredLogger. A nil logger uses
// slog.Default().
//
// Example:
//
//	client, _ := networking.New(
//	    networking.WithLogger(networking.NewSlogAdapter(slog.Default())),
//	)
func NewSlogAdapter(logger *slog.Logger) StructuredLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogAdapter{logger: logger}
}

func (a *slogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }
func (a *slogAdapter) Info(msg string, args ...any)  { a.logger.Info(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.logger.Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }

// zapAdapter adapts *zap.SugaredLogger to StructuredLogger. Sugared
// loosely-typed key-value pairs line up with slog-style args.
type zapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter wraps a zap.SugaredLogger as a StructuredLogger. A nil logger
// builds a production zap logger.
//
// Example:
//
//	zl, _ := zap.NewProduction()
//	client, _ := networking.New(
//	    networking.WithLogger(networking.NewZapAdapter(zl.Sugar())),
//	)
func NewZapAdapter(logger *zap.SugaredLogger) StructuredLogger {
	if logger == nil {
		zl, err := zap.NewProduction()
		if err != nil {
			zl = zap.NewNop()
		}
		logger = zl.Sugar()
	}
	return &zapAdapter{logger: logger}
}

func (a *zapAdapter) Debug(msg string, args ...any) { a.logger.Debugw(msg, args...) }
func (a *zapAdapter) Info(msg string, args ...any)  { a.logger.Infow(msg, args...) }
func (a *zapAdapter) Warn(msg string, args ...any)  { a.logger.Warnw(msg, args...) }
func (a *zapAdapter) Error(msg string, args ...any) { a.logger.Errorw(msg, args...) }

// nopLogger discards all logs. It is the default when no logger is
// configured.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
