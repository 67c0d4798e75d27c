// Package web adapts railway results to gin handlers. It is a consumer of
// the algebra, not part of it: handlers build pipelines, then Respond maps
// the outcome to a status code and JSON body using the fault taxonomy.
//
// Highlights:
// - StatusOf: fault kind to HTTP status
// - Respond: result to JSON response
// - Bind: request body to Result
package web
