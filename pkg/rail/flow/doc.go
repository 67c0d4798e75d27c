// Package flow runs railway stages over streams of results. A stage is a
// plain function from Result[In] to Result[Out]; Run and Pipe fan a stage
// out over 1..64 worker lines reading the same input channel.
//
// Highlights:
// - Emit/EmitResults: turn values or results into a stream
// - Run: same-type stage pool
// - Pipe: type-changing stage pool
// - Bind/Map/Check/Tap: lift solo steps into stages
// - Observe: report each element of a stage to a watch.Sink
// - Collect/Fold: drain a stream back into a slice or one merged Result
//
// Cancellation never drops elements that already entered the stream: when
// ctx fires, the lines drain their input and emit a cancellation failure
// for every unprocessed element, then the output closes. Consumers must
// drain the output until it closes; Collect and Fold do.
package flow
