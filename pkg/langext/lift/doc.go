// Package lift turns ordinary callables of arity 0..4 into callables that
// return Maybe or Outcome. The generated function never panics and never
// returns an error on behalf of the wrapped one: a panic, a returned error
// or a nil result is translated into the wrapper's failure state.
//
// Families (N is the arity suffix):
// - PanicToOutcomeN/PanicToMaybeN: recover panics
// - ErrToOutcomeN/ErrToMaybeN: (U, error) callables, errors and panics
// - NilToOutcomeN/NilToMaybeN: nil results become Failure(Unit)/None
// - PtrToOutcomeN/PtrToMaybeN: *U results, dereferenced when present
// - OkToOutcomeN/OkToMaybeN: comma-ok (U, bool) results
// - ToOutcomeN/ToMaybeN, ToOutcomePtrN/ToMaybePtrN: panics and nil results
// - TryToOutcomeN/TryToMaybeN: errors, panics and nil results
//
// Each invocation is a single attempt; the failure boundary is local to it.
package lift
