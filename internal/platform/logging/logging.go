// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "creating invoice")
//
// Services log failures with the operation, the record ids involved and the
// full error chain:
//
//	logger.ErrorContext(ctx, "failed to fetch mentee",
//	    slog.String("operation", "GetMentee"),
//	    slog.Int64("id", id),
//	    slog.Any("error", err),
//	)
//
// Credentials are masked by the handler (see redact_handler.go), so callers
// never scrub values themselves.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level accepts anything
// slog.Level.UnmarshalText does ("debug", "WARN", "info+2"); other values
// mean info. format "text" selects the text handler, anything else JSON.
// Debug loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
