package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/logging"
)

type planned struct {
	action domain.Action
	step   int
}

// AddAction appends action to the write plan. Safe for concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.plan = append(rc.plan, planned{action: action, step: len(rc.plan) + 1})
	return nil
}

// Commit runs the plan in order. When a step fails, the steps before it are
// rolled back newest first and the step's error is returned wrapped.
// Rollback failures are logged only. Rollback ignores cancellation of ctx.
// Commit may run once.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	plan := rc.plan
	rc.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, p := range plan {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", p.step),
			slog.Int("total", len(plan)),
			slog.String("action", p.action.Description()),
		)

		if err := p.action.Execute(ctx); err != nil {
			logger.WarnContext(ctx, "action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", p.step),
				slog.String("action", p.action.Description()),
				slog.Any("error", err),
			)
			unwind(ctx, logger, plan[:i])
			return fmt.Errorf("executing %s: %w", p.action.Description(), err)
		}
	}

	return nil
}

// unwind rolls back done newest first; it keeps going past failures.
// Rollback still runs after the request is cancelled or times out.
func unwind(ctx context.Context, logger *slog.Logger, done []planned) {
	ctx = context.WithoutCancel(ctx)
	for i := len(done) - 1; i >= 0; i-- {
		p := done[i]
		if err := p.action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", p.step),
				slog.String("action", p.action.Description()),
				slog.Any("error", err),
			)
		}
	}
}
