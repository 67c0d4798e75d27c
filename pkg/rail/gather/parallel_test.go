package gather

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/fault"
)

func TestParallel2GathersTuple(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Parallel2(ctx,
		func(_ context.Context) rail.Result[int] {
			time.Sleep(20 * time.Millisecond)
			return rail.Success(7)
		},
		func(_ context.Context) rail.Result[string] {
			return rail.Success("fast")
		})

	require.True(t, out.IsSuccess())
	assert.Equal(t, Tuple2[int, string]{First: 7, Second: "fast"}, out.Value())
}

func TestParallel2MergesInDeclarationOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slow := fault.Validation("slow operand broke", "first")
	fast := fault.Validation("fast operand broke", "second")

	out := Parallel2(ctx,
		func(_ context.Context) rail.Result[int] {
			time.Sleep(30 * time.Millisecond)
			return rail.Failure[int](slow)
		},
		func(_ context.Context) rail.Result[string] {
			return rail.Failure[string](fast)
		})

	require.True(t, out.IsFailure())

	vf, ok := fault.AsValidation(out.Err())
	require.True(t, ok)

	fields := vf.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "first", fields[0].Field, "declaration order must win over completion order")
	assert.Equal(t, "second", fields[1].Field)
}

func TestParallel3RunsEveryStep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls atomic.Int32
	step := func(v int) func(context.Context) rail.Result[int] {
		return func(_ context.Context) rail.Result[int] {
			calls.Add(1)
			if v == 2 {
				return rail.Failure[int](fault.Domain("middle step broke"))
			}
			return rail.Success(v)
		}
	}

	out := Parallel3(ctx, step(1), step(2), step(3))

	assert.Equal(t, int32(3), calls.Load(), "every step must run despite failures")
	require.True(t, out.IsFailure())
	assert.Equal(t, fault.KindDomain, fault.KindOf(out.Err()))
}

func TestTraverseParallelKeepsIndexOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	items := []int{5, 4, 3, 2, 1}
	out := TraverseParallel(ctx, items, 0, func(_ context.Context, in int) rail.Result[int] {
		time.Sleep(time.Duration(in) * 10 * time.Millisecond)
		return rail.Success(in * 100)
	})

	require.True(t, out.IsSuccess())
	assert.Equal(t, []int{500, 400, 300, 200, 100}, out.Value(),
		"slots must follow element index order, not completion order")
}

func TestTraverseParallelHonorsLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var inFlight, peak atomic.Int32
	items := make([]int, 8)

	out := TraverseParallel(ctx, items, 2, func(_ context.Context, _ int) rail.Result[int] {
		now := inFlight.Add(1)
		for {
			seen := peak.Load()
			if now <= seen || peak.CompareAndSwap(seen, now) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return rail.Success(0)
	})

	require.True(t, out.IsSuccess())
	assert.LessOrEqual(t, peak.Load(), int32(2), "no more than limit steps may run at once")
}

func TestTraverseParallelMergesFailuresInIndexOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := TraverseParallel(ctx, []string{"z", "ok", "a"}, 3,
		func(_ context.Context, in string) rail.Result[string] {
			if in == "ok" {
				return rail.Success(in)
			}
			if in == "z" {
				time.Sleep(25 * time.Millisecond)
			}
			return rail.Failure[string](fault.Validation("rejected", in))
		})

	require.True(t, out.IsFailure())

	vf, ok := fault.AsValidation(out.Err())
	require.True(t, ok)

	fields := vf.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "z", fields[0].Field)
	assert.Equal(t, "a", fields[1].Field)
}
