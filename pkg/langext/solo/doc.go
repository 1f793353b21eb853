// Package solo contains single-value, synchronous primitives that operate
// on Outcome[T, E]. These functions form the building blocks for
// failure-aware pipelines.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T, error] with inference on T
// - Validate/AndValidate/ValidateAll: produce failure on invalid input
// - Bind: move from Outcome[In, E] to Outcome[Out, E]
// - Map/MapErr/DoubleMap: transform one or both sides
// - Try: call a function (Out, error) through the failure boundary
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Match: reduce to a concrete value via success/failure handlers
// - Join/Collect: combine several outcomes, aggregating failures
package solo
