package flow

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/fault"
	"github.com/ib-77/railkit/pkg/rail/solo"
	"github.com/ib-77/railkit/pkg/rail/watch"
)

func TestRunSingleLineKeepsOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Run(ctx, Emit(ctx, 1, 2, 3), 1, Map(func(_ context.Context, v int) int {
		return v * 10
	}))

	collected := Collect(ctx, out)
	if len(collected) != 3 {
		t.Fatalf("expected 3 results, got %d", len(collected))
	}
	for i, want := range []int{10, 20, 30} {
		if !collected[i].IsSuccess() || collected[i].Value() != want {
			t.Errorf("expected element %d to be success %d, got %v", i, want, collected[i])
		}
	}
}

func TestPipeManyLinesProcessEverything(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	values := make([]int, 20)
	for i := range values {
		values[i] = i
	}

	out := Pipe(ctx, Emit(ctx, values...), 4, Bind(func(_ context.Context, v int) rail.Result[string] {
		return solo.Succeed(strconv.Itoa(v))
	}))

	collected := Collect(ctx, out)
	if len(collected) != len(values) {
		t.Fatalf("expected %d results, got %d", len(values), len(collected))
	}

	got := make([]string, 0, len(collected))
	for _, r := range collected {
		if !r.IsSuccess() {
			t.Fatalf("expected all successes, got %v", r)
		}
		got = append(got, r.Value())
	}
	sort.Strings(got)

	want := make([]string, 0, len(values))
	for _, v := range values {
		want = append(want, strconv.Itoa(v))
	}
	sort.Strings(want)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected processed set %v, got %v", want, got)
		}
	}
}

func TestFailuresPassStagesUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	invalid := fault.Validation("broken element", "payload")
	in := EmitResults(ctx,
		solo.Succeed(1),
		solo.Fail[int](invalid),
		solo.Succeed(3),
	)

	stageCalls := 0
	var mu sync.Mutex
	out := Run(ctx, in, 1, Bind(func(_ context.Context, v int) rail.Result[int] {
		mu.Lock()
		stageCalls++
		mu.Unlock()
		return solo.Succeed(v + 1)
	}))

	collected := Collect(ctx, out)
	if len(collected) != 3 {
		t.Fatalf("expected 3 results, got %d", len(collected))
	}
	if stageCalls != 2 {
		t.Errorf("expected stage to run for 2 successes, got %d", stageCalls)
	}
	if !collected[1].IsFailure() || !fault.IsValidation(collected[1].Err()) {
		t.Errorf("expected middle element to keep its validation failure, got %v", collected[1])
	}
}

func TestCancellationMarksRemainingElements(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan rail.Result[int], 3)
	in <- solo.Succeed(1)
	in <- solo.Succeed(2)
	in <- solo.Succeed(3)
	close(in)

	out := Run(ctx, in, 1, func(_ context.Context, r rail.Result[int]) rail.Result[int] {
		cancel()
		return r
	})

	collected := Collect(ctx, out)
	if len(collected) != 3 {
		t.Fatalf("expected element counts preserved, got %d of 3", len(collected))
	}

	processed, canceled := 0, 0
	for _, r := range collected {
		if r.IsCanceled() {
			canceled++
			continue
		}
		processed++
	}
	if processed != 1 {
		t.Errorf("expected exactly the first element processed, got %d", processed)
	}
	if canceled != 2 {
		t.Errorf("expected 2 canceled elements, got %d", canceled)
	}
}

func TestCancelMarkKeepsFailures(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	boom := fault.Conflict("already stored", "")
	in := make(chan rail.Result[int], 2)
	in <- solo.Fail[int](boom)
	in <- solo.Succeed(2)
	close(in)

	collected := Collect(ctx, Run(ctx, in, 1, func(_ context.Context, r rail.Result[int]) rail.Result[int] {
		t.Error("stage must not run after cancellation")
		return r
	}))

	if len(collected) != 2 {
		t.Fatalf("expected 2 results, got %d", len(collected))
	}

	var conflicts, canceled int
	for _, r := range collected {
		switch {
		case r.IsCanceled():
			canceled++
		case fault.KindOf(r.Err()) == fault.KindConflict:
			conflicts++
		}
	}
	if conflicts != 1 {
		t.Errorf("expected the failed element to keep its conflict fault, got %d", conflicts)
	}
	if canceled != 1 {
		t.Errorf("expected the pending success to become canceled, got %d", canceled)
	}
}

func TestFoldMergesStream(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Fold(ctx, Run(ctx, Emit(ctx, 1, 2, 3), 1, Check(
		func(_ context.Context, v int) bool { return v > 0 },
		fault.Validation("must be positive", "element"))))

	if !ok.IsSuccess() {
		t.Fatalf("expected success, got %v", ok)
	}
	if len(ok.Value()) != 3 {
		t.Errorf("expected 3 values, got %v", ok.Value())
	}

	mixed := Fold(ctx, Run(ctx, Emit(ctx, 1, -2, 3), 1, Check(
		func(_ context.Context, v int) bool { return v > 0 },
		fault.Validation("must be positive", "element"))))

	if !mixed.IsFailure() {
		t.Fatalf("expected failure, got %v", mixed)
	}
	if !fault.IsValidation(mixed.Err()) {
		t.Errorf("expected validation fault, got %v", mixed.Err())
	}
}

func TestLineClampAcceptsAnyCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, lines := range []int{-5, 0, 1, 100} {
		out := Collect(ctx, Run(ctx, Emit(ctx, 1, 2), lines, Tap(
			func(_ context.Context, _ int) {})))
		if len(out) != 2 {
			t.Errorf("lines=%d: expected 2 results, got %d", lines, len(out))
		}
	}
}

func TestObserveReportsPerElement(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sink := watch.NewCapture()
	stage := Observe("enrich", sink, Map(func(_ context.Context, v int) int {
		return v + 1
	}))

	Collect(ctx, Run(ctx, Emit(ctx, 1, 2, 3), 1, stage))

	events := sink.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for _, e := range events {
		if e.Op != "enrich" || !e.Success {
			t.Errorf("expected successful enrich event, got %+v", e)
		}
	}
}
