package flow

import (
	"context"
	"time"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/solo"
	"github.com/ib-77/railkit/pkg/rail/watch"
)

// Bind lifts a result-returning step into a stage.
func Bind[In, Out any](onSuccess func(ctx context.Context, in In) rail.Result[Out]) func(
	ctx context.Context, r rail.Result[In]) rail.Result[Out] {

	return func(ctx context.Context, r rail.Result[In]) rail.Result[Out] {
		return solo.Bind(ctx, r, onSuccess)
	}
}

// Map lifts a pure transformation into a stage.
func Map[In, Out any](onSuccess func(ctx context.Context, in In) Out) func(
	ctx context.Context, r rail.Result[In]) rail.Result[Out] {

	return func(ctx context.Context, r rail.Result[In]) rail.Result[Out] {
		return solo.Map(ctx, r, onSuccess)
	}
}

// Check lifts a predicate into a stage failing with errIfFalse.
func Check[T any](pred func(ctx context.Context, value T) bool, errIfFalse error) func(
	ctx context.Context, r rail.Result[T]) rail.Result[T] {

	return func(ctx context.Context, r rail.Result[T]) rail.Result[T] {
		return solo.Ensure(ctx, r, pred, errIfFalse)
	}
}

// Tap lifts a success side effect into a stage.
func Tap[T any](onSuccess func(ctx context.Context, value T)) func(
	ctx context.Context, r rail.Result[T]) rail.Result[T] {

	return func(ctx context.Context, r rail.Result[T]) rail.Result[T] {
		return solo.Tap(ctx, r, onSuccess)
	}
}

// Observe wraps a stage so each processed element reports to sink under
// the given name.
func Observe[In, Out any](name string, sink watch.Sink,
	stage func(ctx context.Context, r rail.Result[In]) rail.Result[Out]) func(
	ctx context.Context, r rail.Result[In]) rail.Result[Out] {

	return func(ctx context.Context, r rail.Result[In]) rail.Result[Out] {
		start := time.Now()
		out := stage(ctx, r)
		sink.Step(ctx, watch.EventOf(name, out, time.Since(start)))
		return out
	}
}
