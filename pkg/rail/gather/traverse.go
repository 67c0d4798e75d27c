package gather

import (
	"context"

	"github.com/ib-77/railkit/pkg/rail"
)

// Traverse applies step to every element of items in order and merges the
// outcomes into one Result. Elements after a failed one are still visited,
// and failures are merged in element index order.
func Traverse[In, Out any](ctx context.Context, items []In,
	step func(ctx context.Context, in In) rail.Result[Out]) rail.Result[[]Out] {

	results := make([]rail.Result[Out], len(items))
	for i, item := range items {
		results[i] = step(ctx, item)
	}
	return All(results...)
}
