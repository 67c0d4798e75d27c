// Package rail provides the core Railway-Oriented Programming containers:
// an immutable Result[T] holding exactly one of a success value or a
// failure error, and an optional-value Maybe[T] that keeps "field omitted"
// distinct from "field present but invalid".
//
// Key operations:
// - Success/Failure: construct Result[T]
// - Value/Err: strict accessors, Get: tuple-style accessor
// - Some/None/From/FromPtr: construct Maybe[T]
// - IsNil/Errors/IsCancellation: shared helpers used across subpackages
//
// Combinators live in the subpackages: solo (synchronous, single value),
// chain (fluent wrapper), gather (accumulating), mass (deferred) and flow
// (many-value streams). The fault subpackage defines the failure taxonomy
// carried on the error side, rule lifts field validation onto the railway,
// watch carries step events to pluggable sinks, and web adapts results to
// gin handlers.
package rail
