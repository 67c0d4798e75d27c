// Package fault defines the failure taxonomy carried on the error side of
// rail Results: a closed set of kinds, each with a stable machine-readable
// code, a human-readable detail and an optional correlation instance.
//
// Key operations:
// - New and the per-kind factories: construct faults
// - Validation/WithField: field-scoped validation faults with ordered merge
// - Combine/Join: merge any two errors without losing either
// - From/KindOf: classify arbitrary errors into the taxonomy
// - PayloadOf: serializer-agnostic wire shape for transport adapters
//
// Equality is deliberately code-only: errors.Is reports two faults equal
// whenever their codes match, whatever their details say. Two validation
// faults about different fields still compare equal under the default code.
// Callers that need to tell same-kind faults apart must set distinct codes
// via WithCode. This mirrors the behavior of the systems this package
// models and is kept on purpose.
package fault
