package flow

import (
	"context"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/gather"
)

// Collect drains the stream into a slice, in arrival order. It reads until
// the channel closes; with cancel-draining lines upstream this terminates
// promptly after a cancellation too.
func Collect[T any](_ context.Context, in <-chan rail.Result[T]) []rail.Result[T] {
	res := make([]rail.Result[T], 0)
	for r := range in {
		res = append(res, r)
	}
	return res
}

// Fold drains the stream and merges everything into one Result, values in
// arrival order, failures merged with the gather rules.
func Fold[T any](ctx context.Context, in <-chan rail.Result[T]) rail.Result[[]T] {
	return gather.All(Collect(ctx, in)...)
}
