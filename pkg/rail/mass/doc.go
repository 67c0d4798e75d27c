// Package mass lifts the solo combinators onto channels, so a pipeline can
// run ahead of its consumer. A deferred result is a receive-only channel
// that delivers exactly one rail.Result and is then closed.
//
// Highlights:
// - Go: launch a step and obtain its deferred result
// - Resolve: wrap an already-known result
// - Bind/Map/Try/Ensure/Tap/TapFault/MapFault/Recover: deferred stages
// - Await: block for the single result
// - Match/Finally: deferred terminals producing <-chan Out
//
// Each stage first awaits its upstream, then applies the synchronous solo
// counterpart, so step order is exactly declaration order. Every await
// point also selects on ctx.Done(); a fired context surfaces as a failure
// carrying a cancellation fault, never as a silent zero value. Stage
// channels are buffered for their single send, so a consumer that walks
// away does not strand the producing goroutine.
package mass
