package chain

import (
	"context"
	"time"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/solo"
	"github.com/ib-77/railkit/pkg/rail/watch"
)

// Chain wraps a rail.Result with its context and activity sink to enable
// fluent chaining. The zero value is not usable; open chains with Start or
// Value.
type Chain[T any] struct {
	ctx  context.Context
	res  rail.Result[T]
	sink watch.Sink
}

// Option configures a chain at open time.
type Option func(*config)

type config struct {
	sink watch.Sink
}

// WithSink routes every step event of the chain to s.
func WithSink(s watch.Sink) Option {
	return func(c *config) {
		c.sink = s
	}
}

func newConfig(opts []Option) config {
	cfg := config{sink: watch.Nop{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Start opens a chain over an existing result.
func Start[T any](ctx context.Context, in rail.Result[T], opts ...Option) Chain[T] {
	cfg := newConfig(opts)
	return Chain[T]{ctx: ctx, res: in, sink: cfg.sink}
}

// Value opens a chain over a successful value.
func Value[T any](ctx context.Context, v T, opts ...Option) Chain[T] {
	return Start(ctx, rail.Success(v), opts...)
}

// next runs one named step and reports its outcome to the sink. Skipped
// steps report too, so a captured trace shows the whole pipeline.
func next[In, Out any](c Chain[In], name string, apply func() rail.Result[Out]) Chain[Out] {
	start := time.Now()
	res := apply()
	c.sink.Step(c.ctx, watch.EventOf(name, res, time.Since(start)))
	return Chain[Out]{ctx: c.ctx, res: res, sink: c.sink}
}

// Then chains a result-returning step under the given name.
func (c Chain[T]) Then(name string, onSuccess func(ctx context.Context, value T) rail.Result[T]) Chain[T] {
	return next(c, name, func() rail.Result[T] {
		return solo.Bind(c.ctx, c.res, onSuccess)
	})
}

// Try chains a (T, error) step under the given name.
func (c Chain[T]) Try(name string, onTry func(ctx context.Context, value T) (T, error)) Chain[T] {
	return next(c, name, func() rail.Result[T] {
		return solo.Try(c.ctx, c.res, onTry)
	})
}

// Check fails the chain with errIfFalse when pred rejects the value.
func (c Chain[T]) Check(name string, pred func(ctx context.Context, value T) bool, errIfFalse error) Chain[T] {
	return next(c, name, func() rail.Result[T] {
		return solo.Ensure(c.ctx, c.res, pred, errIfFalse)
	})
}

// Tap runs a success side effect without changing the result.
func (c Chain[T]) Tap(name string, onSuccess func(ctx context.Context, value T)) Chain[T] {
	return next(c, name, func() rail.Result[T] {
		return solo.Tap(c.ctx, c.res, onSuccess)
	})
}

// TapFault runs a failure side effect without changing the result.
func (c Chain[T]) TapFault(name string, onFailure func(ctx context.Context, err error)) Chain[T] {
	return next(c, name, func() rail.Result[T] {
		return solo.TapFault(c.ctx, c.res, onFailure)
	})
}

// MapFault rewrites the carried error on the failure track.
func (c Chain[T]) MapFault(name string, transform func(ctx context.Context, err error) error) Chain[T] {
	return next(c, name, func() rail.Result[T] {
		return solo.MapFault(c.ctx, c.res, transform)
	})
}

// Recover swaps a matching failure for the fallback result.
func (c Chain[T]) Recover(name string, when func(ctx context.Context, err error) bool,
	fallback func(ctx context.Context) rail.Result[T]) Chain[T] {

	return next(c, name, func() rail.Result[T] {
		return solo.Recover(c.ctx, c.res, when, fallback)
	})
}

// Result returns the underlying rail.Result.
func (c Chain[T]) Result() rail.Result[T] {
	return c.res
}

// Unwrap leaves the fluent layer as a plain (value, error) pair.
func (c Chain[T]) Unwrap() (T, error) {
	return c.res.Get()
}

// Match reduces the chain to a value of its own type.
func (c Chain[T]) Match(onSuccess func(ctx context.Context, value T) T,
	onFailure func(ctx context.Context, err error) T) T {

	return solo.Match(c.ctx, c.res, onSuccess, onFailure)
}

// Finally hands the whole result to a single handler.
func (c Chain[T]) Finally(handler func(ctx context.Context, input rail.Result[T]) T) T {
	return solo.Finally(c.ctx, c.res, handler)
}

// Then chains a type-changing, result-returning step.
func Then[In, Out any](c Chain[In], name string,
	onSuccess func(ctx context.Context, in In) rail.Result[Out]) Chain[Out] {

	return next(c, name, func() rail.Result[Out] {
		return solo.Bind(c.ctx, c.res, onSuccess)
	})
}

// Map chains a type-changing pure transformation.
func Map[In, Out any](c Chain[In], name string,
	onSuccess func(ctx context.Context, in In) Out) Chain[Out] {

	return next(c, name, func() rail.Result[Out] {
		return solo.Map(c.ctx, c.res, onSuccess)
	})
}
