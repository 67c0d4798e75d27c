package flow

import (
	"context"
	"sync"

	"github.com/ib-77/railkit/pkg/rail"
)

// Pipe fans stage out over a pool of worker lines reading in, and closes
// the returned channel once every line finished. lines clamps to [1, 64].
// Output order across lines follows completion, not input order; use one
// line when order matters.
func Pipe[In, Out any](ctx context.Context, in <-chan rail.Result[In], lines int,
	stage func(ctx context.Context, r rail.Result[In]) rail.Result[Out]) <-chan rail.Result[Out] {

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	for range clampLines(lines) {
		wg.Add(1)
		go line(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run is Pipe for stages that keep their element type.
func Run[T any](ctx context.Context, in <-chan rail.Result[T], lines int,
	stage func(ctx context.Context, r rail.Result[T]) rail.Result[T]) <-chan rail.Result[T] {

	return Pipe(ctx, in, lines, stage)
}
