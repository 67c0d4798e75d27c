package fault

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/railkit/pkg/rail"
)

// Fault is the structured error carried by failed Results. Implementations
// are immutable values; WithCode and WithInstance return modified copies.
type Fault interface {
	error
	Kind() Kind
	// Code is the stable machine-readable identifier. Fault equality under
	// errors.Is compares codes and nothing else.
	Code() string
	// Detail is the human-readable message. It never participates in
	// equality.
	Detail() string
	// Instance is an optional correlation token, e.g. a resource id.
	Instance() string
	WithCode(code string) Fault
	WithInstance(instance string) Fault
	// Payload returns the serializer-agnostic wire shape.
	Payload() Payload
}

type base struct {
	kind     Kind
	code     string
	detail   string
	instance string
	cause    error
}

func (f base) Error() string {
	if f.detail == "" {
		return f.code
	}
	return f.code + ": " + f.detail
}

func (f base) Kind() Kind {
	return f.kind
}

func (f base) Code() string {
	return f.code
}

func (f base) Detail() string {
	return f.detail
}

func (f base) Instance() string {
	return f.instance
}

func (f base) WithCode(code string) Fault {
	f.code = code
	return f
}

func (f base) WithInstance(instance string) Fault {
	f.instance = instance
	return f
}

// Unwrap exposes the wrapped cause, if any, so errors.Is and errors.As see
// through classification wrappers like Unexpected and Canceled.
func (f base) Unwrap() error {
	return f.cause
}

// Is implements the code-only equality rule: two faults are equal iff their
// codes match. Non-fault targets never match here and fall through to the
// cause chain.
func (f base) Is(target error) bool {
	t, ok := target.(Fault)
	if !ok {
		return false
	}
	return f.code == t.Code()
}

func (f base) Payload() Payload {
	return Payload{Code: f.code, Detail: f.detail, Instance: f.instance}
}

// New constructs a fault of the given kind with its default code.
func New(kind Kind, detail string) Fault {
	return base{kind: kind, code: kind.DefaultCode(), detail: detail}
}

// Newf is New with fmt-style detail formatting.
func Newf(kind Kind, format string, args ...any) Fault {
	return New(kind, fmt.Sprintf(format, args...))
}

func BadRequest(detail string) Fault {
	return New(KindBadRequest, detail)
}

func Conflict(detail, instance string) Fault {
	return base{kind: KindConflict, code: CodeConflict, detail: detail, instance: instance}
}

func NotFound(detail, instance string) Fault {
	return base{kind: KindNotFound, code: CodeNotFound, detail: detail, instance: instance}
}

func Unauthorized(detail string) Fault {
	return New(KindUnauthorized, detail)
}

func Forbidden(detail string) Fault {
	return New(KindForbidden, detail)
}

func Domain(detail string) Fault {
	return New(KindDomain, detail)
}

func RateLimit(detail string) Fault {
	return New(KindRateLimit, detail)
}

func Unavailable(detail string) Fault {
	return New(KindUnavailable, detail)
}

// Unexpected wraps an unanticipated error as the catch-all kind. The cause
// stays reachable through errors.Is and errors.As.
func Unexpected(err error) Fault {
	if rail.IsNil(err) {
		return base{kind: KindUnexpected, code: CodeUnexpected, detail: "unexpected failure"}
	}
	return base{kind: KindUnexpected, code: CodeUnexpected, detail: err.Error(), cause: err}
}

// Canceled wraps a context error as the cancellation kind. A nil err
// defaults to context.Canceled so the fault always unwraps to a context
// error and rail.IsCancellation keeps working.
func Canceled(err error) Fault {
	if rail.IsNil(err) {
		err = context.Canceled
	}
	detail := "operation canceled"
	if errors.Is(err, context.DeadlineExceeded) {
		detail = "operation timed out"
	}
	return base{kind: KindCanceled, code: CodeCanceled, detail: detail, cause: err}
}
