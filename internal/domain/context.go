package domain

import "context"

// Action is one reversible write, such as storing a blob or inserting a
// document row. Rollback is called only after a successful Execute and may
// receive a different context.
type Action interface {
	Execute(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Description names the action in logs, e.g. "store blob documents/7f3a".
	Description() string
}
