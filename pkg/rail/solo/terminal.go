package solo

import (
	"context"

	"github.com/ib-77/railkit/pkg/rail"
)

// Match reduces a Result to a single value by invoking exactly one of the
// two handlers: onSuccess with the value, or onFailure with the error.
func Match[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, value In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}

// Finally hands the whole Result to a single handler, for callers that
// want to inspect both tracks at once.
func Finally[In, Out any](ctx context.Context, input rail.Result[In],
	handler func(ctx context.Context, input rail.Result[In]) Out) Out {

	return handler(ctx, input)
}
