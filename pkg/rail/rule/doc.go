// Package rule lifts field validation into railway shapes. A Rule inspects
// one value and reports nil or an error, usually a fault.ValidationFault
// scoped to a field name. Apply evaluates every rule and merges all
// violations, so a caller sees the whole list of broken fields at once.
//
// Highlights:
// - Check: predicate rule
// - NotZero: comparable zero-value rule
// - Tag: go-playground/validator tag expression rule ("required,email", ...)
// - Apply: evaluate all rules against one value
// - Factory: validated constructor for value objects
package rule
