package rail

import "fmt"

// Maybe models an optional value: Some(value) or None. Absence is always
// represented as None; Some never wraps a nil pointer, map, slice, chan,
// func or interface.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

// Some panics on an absent value; lift uncertain inputs with From or
// FromPtr instead.
func Some[T any](v T) Maybe[T] {
	if IsNil(v) {
		panic("rail: Some called with an absent value, use From or None")
	}
	return Maybe[T]{value: v, hasValue: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// From lifts a possibly-absent value: nil-like inputs become None.
func From[T any](v T) Maybe[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Maybe[T]{value: v, hasValue: true}
}

// FromPtr lifts a pointer: nil becomes None, anything else Some of the
// pointed-to value.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Maybe[T]{value: *p, hasValue: true}
}

func (m Maybe[T]) HasValue() bool {
	return m.hasValue
}

func (m Maybe[T]) IsNone() bool {
	return !m.hasValue
}

// MustGet returns the value or panics with msg on None.
func (m Maybe[T]) MustGet(msg string) T {
	if !m.hasValue {
		panic(fmt.Sprintf("rail: MustGet on None: %s", msg))
	}
	return m.value
}

func (m Maybe[T]) OrElse(def T) T {
	if m.hasValue {
		return m.value
	}
	return def
}

func (m Maybe[T]) TryGet() (T, bool) {
	return m.value, m.hasValue
}

// Ptr returns a pointer to a copy of the value, or nil on None.
func (m Maybe[T]) Ptr() *T {
	if !m.hasValue {
		return nil
	}
	v := m.value
	return &v
}
