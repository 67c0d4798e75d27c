// Package solo contains single-value, synchronous railway primitives that
// operate on rail.Result[T]. These functions form the core building blocks
// for error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail/Canceled: construct Result[T]
// - Bind: move from Result[In] to Result[Out] via a result-returning step
// - Map: transform successful values
// - Try: call a function (Out, error) and convert the error to a failure
// - Protect: like Bind, but a panic in the step becomes an unexpected fault
// - Ensure/Guard: convert successes to failures on violated conditions
// - Tap/TapIf/TapFault: side-effect helpers that pass the result through
// - MapFault/Recover: failure-track transforms and conditional fallbacks
// - Match/Finally: reduce a Result to a caller-chosen value
// - Optional/OptionalPtr: lift possibly-absent inputs into Result[Maybe[T]]
//
// Once a failure enters a pipeline every success-track operator skips, and
// every failure-track operator skips while the pipeline carries a success.
// No operator ever drops an error.
package solo
