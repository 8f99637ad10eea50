package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
)

// recorder collects execute/rollback events from concurrent actions.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type stubAction struct {
	desc        string
	rec         *recorder
	executeErr  error
	rollbackErr error
	executeFn   func(ctx context.Context) error
	rolledBack  atomic.Bool
}

func (a *stubAction) Execute(ctx context.Context) error {
	if a.executeFn != nil {
		return a.executeFn(ctx)
	}
	if a.executeErr != nil {
		return a.executeErr
	}
	if a.rec != nil {
		a.rec.add("execute:" + a.desc)
	}
	return nil
}

func (a *stubAction) Rollback(_ context.Context) error {
	a.rolledBack.Store(true)
	if a.rec != nil {
		a.rec.add("rollback:" + a.desc)
	}
	return a.rollbackErr
}

func (a *stubAction) Description() string { return a.desc }

func TestGetOrFetch_Memoizes(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0
	fetch := func(_ context.Context) (string, error) {
		calls++
		return "Ada Lovelace", nil
	}

	first, err := GetOrFetch(rc, "staff:1", fetch)
	require.NoError(t, err)
	second, err := GetOrFetch(rc, "staff:1", fetch)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0
	fetch := func(_ context.Context) (int, error) {
		calls++
		return 0, domain.ErrNotFound
	}

	_, err := GetOrFetch(rc, "staff:404", fetch)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = GetOrFetch(rc, "staff:404", fetch)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, err := GetOrFetch(rc, "k", func(_ context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	_, err = GetOrFetch(rc, "k", func(_ context.Context) (string, error) { return "x", nil })
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestCommit_RunsInOrder(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	rec := &recorder{}

	require.NoError(t, rc.AddAction(&stubAction{desc: "put-blob", rec: rec}))
	require.NoError(t, rc.AddAction(&stubAction{desc: "insert-row", rec: rec}))
	require.NoError(t, rc.Commit(context.Background()))

	assert.Equal(t, []string{"execute:put-blob", "execute:insert-row"}, rec.list())
}

func TestCommit_FailureRollsBackPriorSteps(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	rec := &recorder{}
	boom := errors.New("insert failed")

	first := &stubAction{desc: "put-blob", rec: rec}
	second := &stubAction{desc: "put-thumb", rec: rec, rollbackErr: errors.New("ignored")}
	failing := &stubAction{desc: "insert-row", executeErr: boom}
	never := &stubAction{desc: "notify", rec: rec}

	for _, a := range []domain.Action{first, second, failing, never} {
		require.NoError(t, rc.AddAction(a))
	}

	err := rc.Commit(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "executing insert-row")
	assert.Equal(t, []string{
		"execute:put-blob",
		"execute:put-thumb",
		"rollback:put-thumb",
		"rollback:put-blob",
	}, rec.list())
	assert.False(t, failing.rolledBack.Load())
	assert.False(t, never.rolledBack.Load())
}

func TestCommit_OnlyOnce(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	require.NoError(t, rc.Commit(context.Background()))
	assert.ErrorIs(t, rc.Commit(context.Background()), ErrAlreadyCommitted)
	assert.ErrorIs(t, rc.AddAction(&stubAction{desc: "late"}), ErrAlreadyCommitted)
	assert.ErrorIs(t, rc.AddAction(nil), ErrNilAction)
}

func TestAddAction_Concurrent(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var count atomic.Int32

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			_ = rc.AddAction(&stubAction{desc: "n", executeFn: func(context.Context) error {
				count.Add(1)
				return nil
			}})
		})
	}
	wg.Wait()

	require.NoError(t, rc.Commit(context.Background()))
	assert.Equal(t, int32(20), count.Load())
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	ctx := WithRequestContext(context.Background(), rc)
	assert.Same(t, rc, FromContext(ctx))

	fresh := FromContext(context.Background())
	require.NotNil(t, fresh)
	assert.NotSame(t, rc, fresh)
}

func TestGetOrFetch_ConcurrentKeys(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Go(func() {
			key := fmt.Sprintf("staff:%d", i)
			v, err := GetOrFetch(rc, key, func(context.Context) (int, error) { return i, nil })
			assert.NoError(t, err)
			assert.Equal(t, i, v)
		})
	}
	wg.Wait()
}

// ctxAction records the context error seen during rollback.
type ctxAction struct {
	rollbackErr error
	rollbackVal any
}

type ctxKey struct{}

func (a *ctxAction) Execute(context.Context) error { return nil }

func (a *ctxAction) Rollback(ctx context.Context) error {
	a.rollbackErr = ctx.Err()
	a.rollbackVal = ctx.Value(ctxKey{})
	return nil
}

func (a *ctxAction) Description() string { return "put-blob" }

func TestCommit_RollbackSurvivesCancelledRequest(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))
	rc := New(ctx)

	stored := &ctxAction{}
	require.NoError(t, rc.AddAction(stored))
	require.NoError(t, rc.AddAction(&stubAction{desc: "insert-row", executeFn: func(context.Context) error {
		cancel()
		return context.Canceled
	}}))

	err := rc.Commit(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Error(t, ctx.Err())
	assert.NoError(t, stored.rollbackErr)
	assert.Equal(t, "req-1", stored.rollbackVal)
}
