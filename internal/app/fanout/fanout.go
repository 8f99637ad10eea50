// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results. The dashboard uses it
// to query every record store at once.
package fanout

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines. Results are returned in input order. One item failing does not
// stop the others.
//
// Items that have not started when ctx is canceled record ctx.Err() without
// calling fn. Run blocks until every started call returns. A maxWorkers
// below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Values unpacks results, joining every error.
func Values[R any](results []Result[R]) ([]R, error) {
	values := make([]R, len(results))
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values[i] = r.Value
	}
	return values, errors.Join(errs...)
}
