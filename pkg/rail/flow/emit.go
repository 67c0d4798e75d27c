package flow

import (
	"context"

	"github.com/ib-77/railkit/pkg/rail"
)

// Emit turns values into a stream of successes. A fired context stops the
// emission; values not yet sent never enter the stream.
func Emit[T any](ctx context.Context, values ...T) <-chan rail.Result[T] {
	out := make(chan rail.Result[T])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- rail.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// EmitResults turns existing results into a stream.
func EmitResults[T any](ctx context.Context, results ...rail.Result[T]) <-chan rail.Result[T] {
	out := make(chan rail.Result[T])

	go func() {
		defer close(out)

		for _, r := range results {
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
