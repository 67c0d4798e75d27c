package gather

import (
	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/fault"
)

// Combine2 merges two results into a Result of their tuple. Both operands
// are always inspected; failures are merged in operand order, validation
// faults field-by-field.
func Combine2[A, B any](ra rail.Result[A], rb rail.Result[B]) rail.Result[Tuple2[A, B]] {
	if err := fault.Join(errOf(ra), errOf(rb)); err != nil {
		return rail.Failure[Tuple2[A, B]](err)
	}
	return rail.Success(Tuple2[A, B]{First: ra.Value(), Second: rb.Value()})
}

// Combine3 merges three results; see Combine2 for the merge rules.
func Combine3[A, B, C any](ra rail.Result[A], rb rail.Result[B],
	rc rail.Result[C]) rail.Result[Tuple3[A, B, C]] {

	if err := fault.Join(errOf(ra), errOf(rb), errOf(rc)); err != nil {
		return rail.Failure[Tuple3[A, B, C]](err)
	}
	return rail.Success(Tuple3[A, B, C]{
		First:  ra.Value(),
		Second: rb.Value(),
		Third:  rc.Value(),
	})
}

// Combine4 merges four results; see Combine2 for the merge rules.
func Combine4[A, B, C, D any](ra rail.Result[A], rb rail.Result[B],
	rc rail.Result[C], rd rail.Result[D]) rail.Result[Tuple4[A, B, C, D]] {

	if err := fault.Join(errOf(ra), errOf(rb), errOf(rc), errOf(rd)); err != nil {
		return rail.Failure[Tuple4[A, B, C, D]](err)
	}
	return rail.Success(Tuple4[A, B, C, D]{
		First:  ra.Value(),
		Second: rb.Value(),
		Third:  rc.Value(),
		Fourth: rd.Value(),
	})
}

// Combine5 merges five results; see Combine2 for the merge rules.
func Combine5[A, B, C, D, E any](ra rail.Result[A], rb rail.Result[B],
	rc rail.Result[C], rd rail.Result[D], re rail.Result[E]) rail.Result[Tuple5[A, B, C, D, E]] {

	if err := fault.Join(errOf(ra), errOf(rb), errOf(rc), errOf(rd), errOf(re)); err != nil {
		return rail.Failure[Tuple5[A, B, C, D, E]](err)
	}
	return rail.Success(Tuple5[A, B, C, D, E]{
		First:  ra.Value(),
		Second: rb.Value(),
		Third:  rc.Value(),
		Fourth: rd.Value(),
		Fifth:  re.Value(),
	})
}

// All merges homogeneous results into a Result of their values, in operand
// order. Failures from every failed operand are merged; values of successful
// operands are never silently kept alongside a failure.
func All[T any](results ...rail.Result[T]) rail.Result[[]T] {
	errs := make([]error, 0, len(results))
	for _, r := range results {
		errs = append(errs, errOf(r))
	}
	if err := fault.Join(errs...); err != nil {
		return rail.Failure[[]T](err)
	}

	values := make([]T, 0, len(results))
	for _, r := range results {
		values = append(values, r.Value())
	}
	return rail.Success(values)
}

// errOf reads the error without tripping the strict accessor on successes.
func errOf[T any](r rail.Result[T]) error {
	if r.IsFailure() {
		return r.Err()
	}
	return nil
}
