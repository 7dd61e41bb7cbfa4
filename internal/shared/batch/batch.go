// Package batch runs one upstream fetch per key and concatenates the results in key order.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"market_relay/internal/shared/apperr"
)

// DefaultParallelism bounds the number of concurrent fetches of one batch.
const DefaultParallelism = 4

// Failure records why one key of a batch produced no records.
type Failure struct {
	Key string
	Err error
}

// Error implements the error interface.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Key, f.Err)
}

// Unwrap exposes the underlying error kind.
func (f Failure) Unwrap() error { return f.Err }

// FetchFunc fetches the records of one key.
type FetchFunc[T any] func(ctx context.Context, key string) ([]T, error)

// Collect calls fetch once per key with at most parallelism calls in flight.
// A failing key never aborts the others: its error is reported in the failure
// list and its records are omitted. Records are concatenated in key order
// regardless of completion order.
func Collect[T any](ctx context.Context, keys []string, parallelism int, fetch FetchFunc[T]) ([]T, []Failure) {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	results := make([][]T, len(keys))
	errs := make([]error, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, key := range keys {
		g.Go(func() error {
			// per-key errors are kept out of the group so one failure does not cancel gctx
			results[i], errs[i] = fetch(gctx, key)
			return nil
		})
	}
	_ = g.Wait()

	var (
		out      []T
		failures []Failure
	)
	for i, key := range keys {
		if errs[i] != nil {
			failures = append(failures, Failure{Key: key, Err: errs[i]})
			continue
		}
		out = append(out, results[i]...)
	}
	if out == nil {
		out = []T{}
	}
	return out, failures
}

// Outcome decides whether a batch is still a successful response.
// It fails only when every key failed.
func Outcome(keys []string, failures []Failure) error {
	if len(keys) > 0 && len(failures) == len(keys) {
		return fmt.Errorf("%w: %d of %d failed, first: %v", apperr.ErrNoData, len(failures), len(keys), failures[0].Err)
	}
	return nil
}
