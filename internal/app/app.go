// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Services validate records against the catalog registry, call repositories
// and blob stores, and log failures with the operation name and the ids
// involved. They contain no persistence or transport logic.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
)

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// logFailure logs err with the operation name. Errors the caller caused
// (not found, conflict, validation) are logged at WARN, everything else at ERROR.
func logFailure(ctx context.Context, logger *slog.Logger, msg, operation string, err error, attrs ...any) {
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("operation", operation))
	args = append(args, attrs...)
	args = append(args, slog.Any("error", err))

	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrUnauthorized) {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, msg, args...)
}
