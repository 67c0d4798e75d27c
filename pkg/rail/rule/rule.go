package rule

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ib-77/railkit/pkg/rail"
	"github.com/ib-77/railkit/pkg/rail/fault"
)

// Rule inspects one value; nil means it passes.
type Rule[T any] func(ctx context.Context, value T) error

// Check builds a rule from a predicate. A rejected value produces a
// validation fault with detail scoped to field.
func Check[T any](field string, pred func(value T) bool, detail string) Rule[T] {
	return func(_ context.Context, value T) error {
		if pred(value) {
			return nil
		}
		return fault.Validation(detail, field)
	}
}

// NotZero rejects the type's zero value.
func NotZero[T comparable](field string) Rule[T] {
	return func(_ context.Context, value T) error {
		var zero T
		if value != zero {
			return nil
		}
		return fault.Validation("must not be empty", field)
	}
}

// tagValidator backs every Tag rule; validator instances cache compiled
// tag expressions and are safe for concurrent use.
var tagValidator = validator.New(validator.WithRequiredStructEnabled())

// Tag builds a rule from a validator tag expression, such as
// "required,email" or "min=2,max=64". Every violated tag becomes one
// detail on the field entry.
func Tag[T any](field, tag string) Rule[T] {
	return func(ctx context.Context, value T) error {
		err := tagValidator.VarCtx(ctx, value, tag)
		if err == nil {
			return nil
		}

		var violations validator.ValidationErrors
		if !errors.As(err, &violations) {
			return fault.Unexpected(err)
		}

		vf := fault.Validation(fmt.Sprintf("%s failed %q", field, tag), "")
		for _, violated := range violations {
			detail := fmt.Sprintf("violates %q", violated.Tag())
			if violated.Param() != "" {
				detail = fmt.Sprintf("violates %q", violated.Tag()+"="+violated.Param())
			}
			vf = vf.WithField(field, detail)
		}
		return vf
	}
}

// Apply evaluates every rule against value and merges all violations.
// Rules after a failed one still run; a value passing every rule comes
// back as a success.
func Apply[T any](ctx context.Context, value T, rules ...Rule[T]) rail.Result[T] {
	errs := make([]error, 0, len(rules))
	for _, r := range rules {
		errs = append(errs, r(ctx, value))
	}
	if err := fault.Join(errs...); err != nil {
		return rail.Failure[T](err)
	}
	return rail.Success(value)
}

// Factory builds a validated constructor: the raw input runs through every
// rule, and construct is invoked only when all of them pass.
func Factory[Raw, T any](construct func(raw Raw) T, rules ...Rule[Raw]) func(
	ctx context.Context, raw Raw) rail.Result[T] {

	return func(ctx context.Context, raw Raw) rail.Result[T] {
		checked := Apply(ctx, raw, rules...)
		if checked.IsFailure() {
			return rail.FailureFrom[Raw, T](checked)
		}
		return rail.Success(construct(checked.Value()))
	}
}
