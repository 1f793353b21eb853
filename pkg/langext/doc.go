// Package langext contains two immutable two-state value types and the
// failure boundary that feeds them.
//
// Highlights:
// - Maybe[T]: Some/None container; From/FromPtr/FromOk classify nil-able input
// - Outcome[T, E]: Success/Failure container; Maybe[T] is Outcome[T, Unit]
// - Catch/Try/FromFunc: run a callable and turn a panic into data
// - NullResultError, PanicError: failure values produced by the adapters
// - GetErrors: flattens aggregated failures (multierror, errors.Join)
//
// Combinators that change the element type live in opt (Maybe) and solo
// (Outcome). Adapters for callables of arity 0..4 live in lift.
package langext
