// Package watch carries pipeline activity to pluggable sinks. The algebra
// itself never logs; chains and flows hand each step outcome to a Sink and
// the host process decides what observation means.
//
// Highlights:
// - Event: one step outcome with result identity and timing
// - Nop: the default sink, discards everything
// - Capture: in-memory recorder for tests
// - Log: zerolog-backed sink
// - Span: OpenTelemetry sink annotating the span already in ctx
package watch
