package mass

import (
	"context"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/solo"
)

// Go launches step on its own goroutine and returns its deferred result.
// A context that is already done short-circuits to a cancellation failure
// without invoking step.
func Go[T any](ctx context.Context, step func(ctx context.Context) rail.Result[T]) <-chan rail.Result[T] {
	out := make(chan rail.Result[T], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			out <- solo.Canceled[T](ctx.Err())
			return
		}
		out <- step(ctx)
	}()

	return out
}

// Resolve wraps an already-known result as a deferred one. A context that
// is already done wins over the given result.
func Resolve[T any](ctx context.Context, r rail.Result[T]) <-chan rail.Result[T] {
	out := make(chan rail.Result[T], 1)

	if ctx.Err() != nil {
		out <- solo.Canceled[T](ctx.Err())
	} else {
		out <- r
	}
	close(out)

	return out
}

// Await blocks for the single deferred result. A context firing first, or
// an upstream closed without delivering, yields a cancellation failure.
func Await[T any](ctx context.Context, in <-chan rail.Result[T]) rail.Result[T] {
	select {
	case r, ok := <-in:
		if !ok {
			return solo.Canceled[T](ctx.Err())
		}
		return r
	case <-ctx.Done():
		return solo.Canceled[T](ctx.Err())
	}
}

// Bind awaits the upstream result and applies solo.Bind to it.
func Bind[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	onSuccess func(ctx context.Context, in In) rail.Result[Out]) <-chan rail.Result[Out] {

	out := make(chan rail.Result[Out], 1)

	go func() {
		defer close(out)
		out <- solo.Bind(ctx, Await(ctx, in), onSuccess)
	}()

	return out
}

// Map awaits the upstream result and applies solo.Map to it.
func Map[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	onSuccess func(ctx context.Context, in In) Out) <-chan rail.Result[Out] {

	out := make(chan rail.Result[Out], 1)

	go func() {
		defer close(out)
		out <- solo.Map(ctx, Await(ctx, in), onSuccess)
	}()

	return out
}

// Try awaits the upstream result and applies solo.Try to it.
func Try[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	onTry func(ctx context.Context, in In) (Out, error)) <-chan rail.Result[Out] {

	out := make(chan rail.Result[Out], 1)

	go func() {
		defer close(out)
		out <- solo.Try(ctx, Await(ctx, in), onTry)
	}()

	return out
}

// Ensure awaits the upstream result and applies solo.Ensure to it.
func Ensure[T any](ctx context.Context, in <-chan rail.Result[T],
	pred func(ctx context.Context, value T) bool, errIfFalse error) <-chan rail.Result[T] {

	out := make(chan rail.Result[T], 1)

	go func() {
		defer close(out)
		out <- solo.Ensure(ctx, Await(ctx, in), pred, errIfFalse)
	}()

	return out
}

// Tap awaits the upstream result and applies solo.Tap to it.
func Tap[T any](ctx context.Context, in <-chan rail.Result[T],
	onSuccess func(ctx context.Context, value T)) <-chan rail.Result[T] {

	out := make(chan rail.Result[T], 1)

	go func() {
		defer close(out)
		out <- solo.Tap(ctx, Await(ctx, in), onSuccess)
	}()

	return out
}

// TapFault awaits the upstream result and applies solo.TapFault to it.
func TapFault[T any](ctx context.Context, in <-chan rail.Result[T],
	onFailure func(ctx context.Context, err error)) <-chan rail.Result[T] {

	out := make(chan rail.Result[T], 1)

	go func() {
		defer close(out)
		out <- solo.TapFault(ctx, Await(ctx, in), onFailure)
	}()

	return out
}

// MapFault awaits the upstream result and applies solo.MapFault to it.
func MapFault[T any](ctx context.Context, in <-chan rail.Result[T],
	transform func(ctx context.Context, err error) error) <-chan rail.Result[T] {

	out := make(chan rail.Result[T], 1)

	go func() {
		defer close(out)
		out <- solo.MapFault(ctx, Await(ctx, in), transform)
	}()

	return out
}

// Recover awaits the upstream result and applies solo.Recover to it.
func Recover[T any](ctx context.Context, in <-chan rail.Result[T],
	when func(ctx context.Context, err error) bool,
	fallback func(ctx context.Context) rail.Result[T]) <-chan rail.Result[T] {

	out := make(chan rail.Result[T], 1)

	go func() {
		defer close(out)
		out <- solo.Recover(ctx, Await(ctx, in), when, fallback)
	}()

	return out
}

// Match awaits the upstream result and reduces it with solo.Match. The
// returned channel delivers the single reduced value and is then closed.
func Match[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	onSuccess func(ctx context.Context, value In) Out,
	onFailure func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out, 1)

	go func() {
		defer close(out)
		out <- solo.Match(ctx, Await(ctx, in), onSuccess, onFailure)
	}()

	return out
}

// Finally awaits the upstream result and reduces it with solo.Finally.
func Finally[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	handler func(ctx context.Context, input rail.Result[In]) Out) <-chan Out {

	out := make(chan Out, 1)

	go func() {
		defer close(out)
		out <- solo.Finally(ctx, Await(ctx, in), handler)
	}()

	return out
}
