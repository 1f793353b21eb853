// Package opt contains the Maybe[T] combinators that change the element
// type, so they cannot be methods.
//
// Highlights:
// - Bind: chain a Maybe-returning function, short-circuits on None
// - Match: fold Some/None into a single value
// - AndThen: positional sequencing, the payload is discarded
// - Map/Filter/Flatten: the usual helpers
// - ToOutcome: attach a failure payload to None
package opt
