package rail

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that yield either a value or an
// error. Accessors keep Result semantics: Value and Err are strict, so
// callers branch on IsSuccess first.
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess reports whether the operation succeeded
	IsSuccess() bool
}
