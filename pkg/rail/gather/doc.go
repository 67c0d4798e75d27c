// Package gather contains accumulating combinators over rail.Result.
// Unlike the fail-fast operators in solo, nothing here short-circuits:
// every operand is always evaluated, and all failures are merged into a
// single aggregate fault in operand order (or element index order), never
// in completion order.
//
// Highlights:
// - Combine2..Combine5: merge independent results into a tuple
// - All: homogeneous variadic combine into a slice
// - Traverse: apply a result-returning step to every element of a slice
// - TraverseParallel: Traverse on a bounded worker group
// - Parallel2..Parallel5: scatter independent steps, gather a tuple
//
// Validation faults merge field-by-field, so combining the checks of a
// whole form reports every broken field at once.
package gather
