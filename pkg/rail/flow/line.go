package flow

import (
	"context"
	"sync"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/fault"
)

// maxLines caps the worker fan-out of a single stage.
const maxLines = 64

func clampLines(lines int) int {
	if lines < 1 {
		return 1
	}
	if lines > maxLines {
		return maxLines
	}
	return lines
}

// line is one worker of a stage pool. It applies stage to each input until
// the input closes. Once ctx fires it stops processing and instead marks
// the remaining elements, so the stream stays complete.
func line[In, Out any](ctx context.Context, in <-chan rail.Result[In], out chan<- rail.Result[Out],
	stage func(ctx context.Context, r rail.Result[In]) rail.Result[Out], wg *sync.WaitGroup) {

	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			cancelRemaining(ctx, in, out)
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				out <- cancelMark[In, Out](ctx, r)
				cancelRemaining(ctx, in, out)
				return
			}
			out <- stage(ctx, r)
		}
	}
}

// cancelRemaining drains in and emits a marked result per element.
func cancelRemaining[In, Out any](ctx context.Context, in <-chan rail.Result[In], out chan<- rail.Result[Out]) {
	for r := range in {
		out <- cancelMark[In, Out](ctx, r)
	}
}

// cancelMark converts an unprocessed element: failures keep their error,
// successes become cancellation failures.
func cancelMark[In, Out any](ctx context.Context, r rail.Result[In]) rail.Result[Out] {
	if r.IsFailure() {
		return rail.FailureFrom[In, Out](r)
	}
	return rail.Failure[Out](fault.Canceled(ctx.Err()))
}
