// Package sweep fans independent ANEC evaluations out across a bounded
// worker pool. The core pipeline is pure and shares no state between
// invocations, so cases are embarrassingly parallel: each worker runs
// tangent normalization → geodesic integration → ANEC quadrature for one
// (metric, initial condition) pair and writes its slot in the result
// slice.
//
// Results come back in input order regardless of completion order, each
// tagged with a fresh run ID. A failing case records its error in its own
// run record and never aborts the sweep — retry policy (smaller steps,
// shifted initial data) belongs to the caller. Only context cancellation
// stops the whole sweep early.
//
// Helpers build the two standard grids the probe compares: impact
// parameters (parallel rays offset from the bubble axis) and coupling
// constants (a modified-gravity α ladder over one base metric).
package sweep
