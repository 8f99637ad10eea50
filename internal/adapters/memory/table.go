// Package memory provides in-process repositories for local runs and tests.
// Every repository guards its rows with a sync.RWMutex and hands out copies,
// so callers never share state with the store.
package memory

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
)

// table is a generic auto-incrementing row set.
type table[T any] struct {
	name string
	hook rowHook[T]
	now  func() time.Time

	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

// rowHook adapts a record type to the table.
type rowHook[T any] struct {
	// stamp sets ID and timestamps.
	stamp func(row *T, id int64, created, updated time.Time)
	// createdAt reads the creation time.
	createdAt func(row *T) time.Time
	// unique returns the row's unique key, or "" when the type has none.
	unique func(row *T) string
	// clone deep-copies a row. Nil means a plain value copy is enough.
	clone func(row T) T
}

func newTable[T any](name string, hook rowHook[T]) *table[T] {
	return &table[T]{name: name, hook: hook, now: time.Now, rows: make(map[int64]T)}
}

func (t *table[T]) copyOf(row T) T {
	if t.hook.clone != nil {
		return t.hook.clone(row)
	}
	return row
}

func (t *table[T]) notFound(id int64) error {
	return fmt.Errorf("%s %d: %w", t.name, id, domain.ErrNotFound)
}

// conflictLocked reports a unique key clash with any row other than exceptID.
func (t *table[T]) conflictLocked(row *T, exceptID int64) error {
	if t.hook.unique == nil {
		return nil
	}
	key := t.hook.unique(row)
	if key == "" {
		return nil
	}
	for id, existing := range t.rows {
		if id != exceptID && t.hook.unique(&existing) == key {
			return fmt.Errorf("%s %q already exists: %w", t.name, key, domain.ErrConflict)
		}
	}
	return nil
}

func (t *table[T]) list(match func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		row := t.rows[id]
		if match == nil || match(&row) {
			out = append(out, t.copyOf(row))
		}
	}
	return out
}

func (t *table[T]) find(match func(*T) bool) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		row := t.rows[id]
		if match(&row) {
			out := t.copyOf(row)
			return &out, true
		}
	}
	return nil, false
}

func (t *table[T]) get(id int64) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, t.notFound(id)
	}
	out := t.copyOf(row)
	return &out, nil
}

func (t *table[T]) create(in *T) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.conflictLocked(in, 0); err != nil {
		return nil, err
	}
	t.nextID++
	now := t.now().UTC()
	row := t.copyOf(*in)
	t.hook.stamp(&row, t.nextID, now, now)
	t.rows[t.nextID] = row

	out := t.copyOf(row)
	return &out, nil
}

func (t *table[T]) update(id int64, in *T) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.rows[id]
	if !ok {
		return nil, t.notFound(id)
	}
	if err := t.conflictLocked(in, id); err != nil {
		return nil, err
	}
	row := t.copyOf(*in)
	t.hook.stamp(&row, id, t.hook.createdAt(&existing), t.now().UTC())
	t.rows[id] = row

	out := t.copyOf(row)
	return &out, nil
}

func (t *table[T]) delete(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return t.notFound(id)
	}
	delete(t.rows, id)
	return nil
}

// detach runs clear on every row that match accepts, leaving timestamps
// alone like a foreign key's ON DELETE SET NULL.
func (t *table[T]) detach(match func(*T) bool, clear func(*T)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, row := range t.rows {
		if match(&row) {
			clear(&row)
			t.rows[id] = row
		}
	}
}
