package gather

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/railkit/pkg/rail"
)

// TraverseParallel is Traverse on a bounded worker group. Each element is
// handed to step on its own goroutine, at most limit at a time (limit <= 0
// means unbounded). All elements run to completion regardless of failures,
// and the merge order is element index order, not completion order.
func TraverseParallel[In, Out any](ctx context.Context, items []In, limit int,
	step func(ctx context.Context, in In) rail.Result[Out]) rail.Result[[]Out] {

	results := make([]rail.Result[Out], len(items))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			results[i] = step(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return All(results...)
}

// Parallel2 runs both steps concurrently and gathers their results into a
// tuple. Both steps always run to completion; failures merge in declaration
// order.
func Parallel2[A, B any](ctx context.Context,
	fa func(ctx context.Context) rail.Result[A],
	fb func(ctx context.Context) rail.Result[B]) rail.Result[Tuple2[A, B]] {

	var ra rail.Result[A]
	var rb rail.Result[B]

	var g errgroup.Group
	g.Go(func() error { ra = fa(ctx); return nil })
	g.Go(func() error { rb = fb(ctx); return nil })
	_ = g.Wait()

	return Combine2(ra, rb)
}

// Parallel3 runs three steps concurrently; see Parallel2.
func Parallel3[A, B, C any](ctx context.Context,
	fa func(ctx context.Context) rail.Result[A],
	fb func(ctx context.Context) rail.Result[B],
	fc func(ctx context.Context) rail.Result[C]) rail.Result[Tuple3[A, B, C]] {

	var ra rail.Result[A]
	var rb rail.Result[B]
	var rc rail.Result[C]

	var g errgroup.Group
	g.Go(func() error { ra = fa(ctx); return nil })
	g.Go(func() error { rb = fb(ctx); return nil })
	g.Go(func() error { rc = fc(ctx); return nil })
	_ = g.Wait()

	return Combine3(ra, rb, rc)
}

// Parallel4 runs four steps concurrently; see Parallel2.
func Parallel4[A, B, C, D any](ctx context.Context,
	fa func(ctx context.Context) rail.Result[A],
	fb func(ctx context.Context) rail.Result[B],
	fc func(ctx context.Context) rail.Result[C],
	fd func(ctx context.Context) rail.Result[D]) rail.Result[Tuple4[A, B, C, D]] {

	var ra rail.Result[A]
	var rb rail.Result[B]
	var rc rail.Result[C]
	var rd rail.Result[D]

	var g errgroup.Group
	g.Go(func() error { ra = fa(ctx); return nil })
	g.Go(func() error { rb = fb(ctx); return nil })
	g.Go(func() error { rc = fc(ctx); return nil })
	g.Go(func() error { rd = fd(ctx); return nil })
	_ = g.Wait()

	return Combine4(ra, rb, rc, rd)
}

// Parallel5 runs five steps concurrently; see Parallel2.
func Parallel5[A, B, C, D, E any](ctx context.Context,
	fa func(ctx context.Context) rail.Result[A],
	fb func(ctx context.Context) rail.Result[B],
	fc func(ctx context.Context) rail.Result[C],
	fd func(ctx context.Context) rail.Result[D],
	fe func(ctx context.Context) rail.Result[E]) rail.Result[Tuple5[A, B, C, D, E]] {

	var ra rail.Result[A]
	var rb rail.Result[B]
	var rc rail.Result[C]
	var rd rail.Result[D]
	var re rail.Result[E]

	var g errgroup.Group
	g.Go(func() error { ra = fa(ctx); return nil })
	g.Go(func() error { rb = fb(ctx); return nil })
	g.Go(func() error { rc = fc(ctx); return nil })
	g.Go(func() error { rd = fd(ctx); return nil })
	g.Go(func() error { re = fe(ctx); return nil })
	_ = g.Wait()

	return Combine5(ra, rb, rc, rd, re)
}
