// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Outcome[T, error] values.
//
// It keeps the API surface very small:
// - Start/FromValue/FromMaybe: create a Chain
// - Then/ThenTry: compose outcome-returning or (T, error) functions
// - Map: transform the value
// - Or/And: pick between chains
// - Ensure: trigger side effects without changing the outcome
// - Finally: reduce to a concrete value via handlers
//
// ThenTry runs its step inside the failure boundary, so a panicking step
// fails the chain instead of unwinding through it.
package tiny
