package rail

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of a success value or a failure error and never
// both. Every Result is stamped with an id and a creation time at
// construction so sinks can correlate pipeline steps. Results are immutable;
// combinators always build fresh ones.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

var _ WithError[struct{}] = Result[struct{}]{}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure panics on a nil error: a failed Result must carry its cause.
func Failure[T any](err error) Result[T] {
	if IsNil(err) {
		panic("rail: Failure called with a nil error")
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom rebuilds a failed Result under a new value type, keeping the
// original id, error and creation time. It panics on a success input.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("rail: FailureFrom called on a Success")
	}
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value. It panics on a Failure; branch on
// IsSuccess first or use Get.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(fmt.Sprintf("rail: Value called on a Failure: %v", r.err))
	}
	return r.value
}

// Err returns the failure error. It panics on a Success; branch on
// IsFailure first or use Get.
func (r Result[T]) Err() error {
	if r.isSuccess {
		panic("rail: Err called on a Success")
	}
	return r.err
}

// Get returns the value and a nil error on a Success, or the zero value and
// the error on a Failure.
func (r Result[T]) Get() (T, error) {
	if r.isSuccess {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// IsCanceled reports whether the Result failed due to context cancellation
// or a deadline. Cancellation faults wrap their context error, so the check
// sees through wrapping.
func (r Result[T]) IsCanceled() bool {
	return !r.isSuccess && IsCancellation(r.err)
}

// IsEmpty reports whether r is the zero Result, which belongs to neither
// track. Only uninitialized values are empty; factories never produce one.
func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && r.err == nil
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}
