// Package appctx carries per-request state for application services: a
// memo of lookups already made during the request and an ordered plan of
// writes that either all land or are unwound.
//
// The document upload is the main user: the blob write and the metadata
// insert are planned together, and a failed insert deletes the blob again.
//
//	rc := appctx.New(ctx)
//	_ = rc.AddAction(putBlob)
//	_ = rc.AddAction(insertRow)
//	err := rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrAlreadyCommitted is returned when the plan is changed or committed
	// after Commit ran.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned by AddAction for a nil action.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch means one memo key was used with two result types.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext is one request's memo and write plan. Create one per
// request; never share it across requests.
type RequestContext struct {
	context.Context

	mu        sync.Mutex
	memo      map[string]memoEntry
	plan      []planned
	committed bool
}

// memoEntry keeps failures too, so a missing record is looked up once.
type memoEntry struct {
	value any
	err   error
}

// New returns an empty RequestContext over ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: map[string]memoEntry{}}
}

type requestContextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx. Outside a request
// (seeding, tests) it returns a fresh one, so callers never check for nil.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok && rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the memoized result for key, calling fetch on the first
// lookup. fetch runs without the lock held.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	rc.mu.Lock()
	entry, ok := rc.memo[key]
	rc.mu.Unlock()

	if ok {
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	v, err := fetch(rc.Context)

	rc.mu.Lock()
	rc.memo[key] = memoEntry{value: v, err: err}
	rc.mu.Unlock()

	return v, err
}
