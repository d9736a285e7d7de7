// Package anec evaluates the Averaged Null Energy Condition integral
//
//	∫ T_{μν}(x(λ)) k^μ(λ) k^ν(λ) dλ
//
// over a geodesic trace, using trapezoidal quadrature on the trace's
// equally spaced samples (matching the integrator's fixed-step design —
// no separate adaptive quadrature).
//
// A negative integral flags an energy-condition violation, the quantity
// the whole probe exists to compare across metric families.
//
// Alongside the scalar, the Result carries a statistics record: the
// min/max/mean of the causal residual g_{μν}k^μk^ν across samples, the
// count of samples whose |residual| exceeded the configured tolerance,
// and the raw per-sample contraction values. Causal drift is always
// surfaced as data and never escalated to an error — mild drift from
// finite-step integration is expected, and comparisons must be judged
// alongside their own numerical error budget.
//
// Errors (sentinel):
//
//	– ErrNilStress      — nil stress-energy model.
//	– ErrNilTrace       — nil or empty trace.
//	– ErrDegenerateTrace — fewer than 2 samples or ~zero affine range;
//	  returned instead of a silent 0 or NaN.
//
// Stress-model failures during sampling propagate unchanged (e.g.
// geodesic.ErrSingularMetric from a curvature-derived model).
package anec
