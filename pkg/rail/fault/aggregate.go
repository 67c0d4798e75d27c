package fault

import (
	"strings"

	"github.com/ib-77/railkit/pkg/rail"
)

// Aggregate is an ordered list of faults produced by combining errors of
// different kinds. Member order follows combine order, left to right. An
// aggregate holds at most one validation entry, since validation faults
// fold into each other on combine.
type Aggregate struct {
	faults   []Fault
	code     string
	instance string
}

var _ Fault = Aggregate{}

func (a Aggregate) Error() string {
	if d := a.Detail(); d != "" {
		return a.Code() + ": " + d
	}
	return a.Code()
}

// Kind derives from the first member. Adapters that need finer treatment
// walk Faults instead.
func (a Aggregate) Kind() Kind {
	if len(a.faults) > 0 {
		return a.faults[0].Kind()
	}
	return KindUnexpected
}

func (a Aggregate) Code() string {
	if a.code != "" {
		return a.code
	}
	if len(a.faults) > 0 {
		return a.faults[0].Code()
	}
	return CodeUnexpected
}

func (a Aggregate) Detail() string {
	parts := make([]string, 0, len(a.faults))
	for _, f := range a.faults {
		if d := f.Detail(); d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, "; ")
}

func (a Aggregate) Instance() string {
	if a.instance != "" {
		return a.instance
	}
	for _, f := range a.faults {
		if in := f.Instance(); in != "" {
			return in
		}
	}
	return ""
}

func (a Aggregate) WithCode(code string) Fault {
	a.code = code
	return a
}

func (a Aggregate) WithInstance(instance string) Fault {
	a.instance = instance
	return a
}

// Faults returns a copy of the ordered members.
func (a Aggregate) Faults() []Fault {
	return append([]Fault(nil), a.faults...)
}

// Unwrap exposes the members so errors.Is and errors.As search all of them.
func (a Aggregate) Unwrap() []error {
	errs := make([]error, len(a.faults))
	for i, f := range a.faults {
		errs[i] = f
	}
	return errs
}

func (a Aggregate) Is(target error) bool {
	t, ok := target.(Fault)
	if !ok {
		return false
	}
	return a.Code() == t.Code()
}

func (a Aggregate) Payload() Payload {
	p := Payload{Code: a.Code(), Detail: a.Detail(), Instance: a.Instance()}
	for _, f := range a.faults {
		if vf, ok := f.(ValidationFault); ok {
			p.FieldErrors = append(p.FieldErrors, fieldPayloads(vf.fields)...)
		}
	}
	return p
}

// Combine merges two errors without losing either. Both validation faults:
// one merged validation fault. Otherwise the operands line up in an
// Aggregate, left to right, with nested aggregates flattened and any
// validation entries folded into the first one. Non-taxonomy errors are
// classified through From first; their cause stays reachable. A nil operand
// yields the other unchanged.
func Combine(a, b error) error {
	if rail.IsNil(a) {
		return b
	}
	if rail.IsNil(b) {
		return a
	}

	entries := mergeEntries(entriesOf(a), entriesOf(b))
	if len(entries) == 1 {
		return entries[0]
	}
	return Aggregate{faults: entries}
}

// Join folds Combine over errs in order, skipping nils. It returns nil when
// nothing remains.
func Join(errs ...error) error {
	var acc error
	for _, err := range errs {
		if rail.IsNil(err) {
			continue
		}
		acc = Combine(acc, err)
	}
	return acc
}

func entriesOf(err error) []Fault {
	if agg, ok := err.(Aggregate); ok {
		return agg.faults
	}
	return []Fault{From(err)}
}

func mergeEntries(dst, src []Fault) []Fault {
	out := append([]Fault(nil), dst...)
	for _, f := range src {
		if vf, ok := f.(ValidationFault); ok {
			if at := firstValidation(out); at >= 0 {
				out[at] = out[at].(ValidationFault).Merge(vf)
				continue
			}
		}
		out = append(out, f)
	}
	return out
}

func firstValidation(entries []Fault) int {
	for i, f := range entries {
		if _, ok := f.(ValidationFault); ok {
			return i
		}
	}
	return -1
}
