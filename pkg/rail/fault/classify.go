package fault

import (
	"errors"

	"github.com/ib-77/railkit/pkg/rail"
)

// From classifies an arbitrary error into the taxonomy. Faults anywhere in
// the chain come back as they are; context cancellation and deadlines
// become Canceled; everything else becomes Unexpected with the original as
// cause. From(nil) returns nil.
func From(err error) Fault {
	if rail.IsNil(err) {
		return nil
	}

	var f Fault
	if errors.As(err, &f) {
		return f
	}

	if rail.IsCancellation(err) {
		return Canceled(err)
	}

	return Unexpected(err)
}

// KindOf reports the taxonomy kind of any error; nil classifies as
// Unexpected.
func KindOf(err error) Kind {
	f := From(err)
	if f == nil {
		return KindUnexpected
	}
	return f.Kind()
}

func IsKind(err error, kind Kind) bool {
	return !rail.IsNil(err) && KindOf(err) == kind
}

func IsValidation(err error) bool {
	return IsKind(err, KindValidation)
}

// AsValidation extracts the validation fault from anywhere in err's chain,
// including aggregate members.
func AsValidation(err error) (ValidationFault, bool) {
	var vf ValidationFault
	ok := errors.As(err, &vf)
	return vf, ok
}

// IsCanceled reports whether err represents cancellation, either as a
// Canceled-kind fault or as a raw context error.
func IsCanceled(err error) bool {
	if rail.IsNil(err) {
		return false
	}
	return IsKind(err, KindCanceled) || rail.IsCancellation(err)
}
