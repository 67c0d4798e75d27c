// Package chain offers a fluent wrapper over rail.Result for same-type
// pipelines, with free functions for the type-changing steps (methods
// cannot introduce type parameters). A Chain carries its context and an
// activity sink; every named step reports its outcome and timing to the
// sink, watch.Nop by default.
//
// Highlights:
// - Start/Value: open a chain, optionally WithSink
// - Then/Try/Check/Tap/TapFault/MapFault/Recover: named same-type steps
// - Then/Map (free): named type-changing steps
// - Result/Unwrap: leave the fluent layer
// - Match/Finally: reduce to a plain value
package chain
