package solo

import (
	"context"
	"fmt"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/fault"
)

// Succeed wraps value in a successful Result.
func Succeed[T any](value T) rail.Result[T] {
	return rail.Success(value)
}

// Fail wraps err in a failed Result.
func Fail[T any](err error) rail.Result[T] {
	return rail.Failure[T](err)
}

// Canceled wraps err in a failed Result carrying a cancellation fault.
func Canceled[T any](err error) rail.Result[T] {
	return rail.Failure[T](fault.Canceled(err))
}

// Bind applies onSuccess to a successful input and returns its Result.
// A failed input passes through with its error and identity preserved;
// onSuccess is not invoked.
func Bind[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, in In) rail.Result[Out]) rail.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rail.FailureFrom[In, Out](input)
}

// Map applies onSuccess to a successful input and wraps the returned
// value in a success. A failed input passes through untouched.
func Map[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, in In) Out) rail.Result[Out] {

	if input.IsSuccess() {
		return rail.Success(onSuccess(ctx, input.Value()))
	}
	return rail.FailureFrom[In, Out](input)
}

// Try applies onTry to a successful input. A nil error produces a
// success with the returned value; a non-nil error produces a failure.
func Try[In, Out any](ctx context.Context, input rail.Result[In],
	onTry func(ctx context.Context, in In) (Out, error)) rail.Result[Out] {

	if input.IsFailure() {
		return rail.FailureFrom[In, Out](input)
	}

	out, err := onTry(ctx, input.Value())
	if err != nil {
		return rail.Failure[Out](err)
	}
	return rail.Success(out)
}

// Protect behaves like Bind but converts a panic inside onSuccess into a
// failure carrying an unexpected fault instead of unwinding the caller.
func Protect[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, in In) rail.Result[Out]) (res rail.Result[Out]) {

	if input.IsFailure() {
		return rail.FailureFrom[In, Out](input)
	}

	defer func() {
		if r := recover(); r != nil {
			res = rail.Failure[Out](fault.Unexpected(fmt.Errorf("recovered panic: %v", r)))
		}
	}()

	return onSuccess(ctx, input.Value())
}

// Ensure keeps a successful input only while pred holds; otherwise the
// input is replaced by a failure carrying errIfFalse. Failed inputs pass
// through and pred is not invoked. errIfFalse must be non-nil.
func Ensure[T any](ctx context.Context, input rail.Result[T],
	pred func(ctx context.Context, value T) bool, errIfFalse error) rail.Result[T] {

	if input.IsFailure() {
		return input
	}
	if pred(ctx, input.Value()) {
		return input
	}
	return rail.Failure[T](errIfFalse)
}

// Guard runs check against a successful input and converts a non-nil
// error into a failure. Failed inputs pass through unchecked.
func Guard[T any](ctx context.Context, input rail.Result[T],
	check func(ctx context.Context, value T) error) rail.Result[T] {

	if input.IsFailure() {
		return input
	}
	if err := check(ctx, input.Value()); err != nil {
		return rail.Failure[T](err)
	}
	return input
}

// Tap invokes onSuccess for its side effects and returns the input
// unchanged. Failed inputs skip the call.
func Tap[T any](ctx context.Context, input rail.Result[T],
	onSuccess func(ctx context.Context, value T)) rail.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

// TapIf invokes onSuccess only when the input is successful and condition
// holds for its value. The input is always returned unchanged.
func TapIf[T any](ctx context.Context, input rail.Result[T],
	condition func(ctx context.Context, value T) bool,
	onSuccess func(ctx context.Context, value T)) rail.Result[T] {

	if input.IsSuccess() && condition(ctx, input.Value()) {
		onSuccess(ctx, input.Value())
	}
	return input
}

// TapFault invokes onFailure for its side effects and returns the input
// unchanged. Successful inputs skip the call.
func TapFault[T any](ctx context.Context, input rail.Result[T],
	onFailure func(ctx context.Context, err error)) rail.Result[T] {

	if input.IsFailure() {
		onFailure(ctx, input.Err())
	}
	return input
}

// MapFault rewrites the error of a failed input. transform must return a
// non-nil error. Successful inputs pass through untouched.
func MapFault[T any](ctx context.Context, input rail.Result[T],
	transform func(ctx context.Context, err error) error) rail.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return rail.Failure[T](transform(ctx, input.Err()))
}

// Recover replaces a failed input with the result of fallback when the
// predicate holds for its error. Successful inputs and failures rejected
// by the predicate pass through; fallback is not invoked for them.
func Recover[T any](ctx context.Context, input rail.Result[T],
	when func(ctx context.Context, err error) bool,
	fallback func(ctx context.Context) rail.Result[T]) rail.Result[T] {

	if input.IsSuccess() || !when(ctx, input.Err()) {
		return input
	}
	return fallback(ctx)
}
