// Package geodesic integrates null geodesics through an arbitrary metric
// supplied as a callable, recording a diagnostic trace for downstream ANEC
// evaluation.
//
// Pipeline (leaf-first):
//  1. Partials — central-difference partial derivatives ∂_α g_{μν} with a
//     fixed step h: (g(x+h) − g(x−h)) / 2h per coordinate.
//  2. Connection — Christoffel symbols
//     Γ^λ_{μν} = ½ g^{λσ} (∂_μ g_{νσ} + ∂_ν g_{μσ} − ∂_σ g_{μν}),
//     recomputed fresh at every evaluation point (pure, never cached).
//  3. NullTangent — normalize a spatial 3-direction into a future-directed
//     null 4-tangent by solving the quadratic g_{μν}k^μk^ν = 0 for k^t.
//  4. Integrate — classic fixed-step RK4 on the first-order system
//     dx^λ/dλ = k^λ,  dk^λ/dλ = −Γ^λ_{μν} k^μ k^ν
//     over [0, λmax] with a caller-chosen step count. No adaptive control,
//     no retries: a single deterministic pass.
//
// Diagnostics: every trace sample carries the causal residual g_{μν}k^μk^ν.
// For an exactly null geodesic it is 0; finite-step error makes it drift.
// Drift is reported, never escalated — the ANEC evaluator counts samples
// beyond tolerance so comparisons carry their own error budget.
//
// Complexity per integration:
//
//	– Time:  O(Steps) RK4 stages × O(1) connection builds,
//	         each build costing 8 metric evaluations (central differences
//	         in 4 directions) plus one 4×4 inversion.
//	– Space: O(Steps) for the trace; everything else is stack-sized.
//
// Errors (sentinel):
//
//	– ErrNilMetric      — nil metric.
//	– ErrBadStepCount   — Steps < 1.
//	– ErrBadLambdaMax   — λmax ≤ 0 or non-finite.
//	– ErrBadTolerance   — non-positive FDStep, DetTol or SanityBound.
//	– ErrSingularMetric — metric not invertible at a sampled point.
//	– ErrDiverged       — coordinates or tangent left the sanity bound.
//	– ErrZeroDirection  — zero spatial direction in NullTangent.
//	– ErrNoNullRoot     — no real future-directed null root (non-Lorentzian
//	                      metric at the start point).
//
// Mid-integration failures are wrapped in *FailureError, which carries the
// affine parameter and step index of the failure and unwraps to the
// sentinels above.
//
// Example:
//
//	k0, err := geodesic.NullTangent(m, start, [3]float64{1, 0, 0})
//	if err != nil { ... }
//	opts := geodesic.DefaultOptions()
//	opts.Steps, opts.LambdaMax = 180, 400
//	tr, err := geodesic.Integrate(m, start, k0, &opts)
package geodesic
