package solo

import (
	"context"

	"github.com/ib-77/railkit/pkg/rail"
)

// Optional lifts a possibly-absent raw value into Result[Maybe[T]].
// An absent input is a success carrying None without invoking create.
// A present input runs create; its success is wrapped in Some and its
// failure passes through.
func Optional[Raw, T any](ctx context.Context, raw rail.Maybe[Raw],
	create func(ctx context.Context, in Raw) rail.Result[T]) rail.Result[rail.Maybe[T]] {

	in, ok := raw.TryGet()
	if !ok {
		return rail.Success(rail.None[T]())
	}

	res := create(ctx, in)
	if res.IsFailure() {
		return rail.FailureFrom[T, rail.Maybe[T]](res)
	}
	return rail.Success(rail.Some(res.Value()))
}

// OptionalPtr is Optional for raw pointer inputs; nil means absent.
func OptionalPtr[Raw, T any](ctx context.Context, raw *Raw,
	create func(ctx context.Context, in Raw) rail.Result[T]) rail.Result[rail.Maybe[T]] {

	return Optional(ctx, rail.FromPtr(raw), create)
}
