// Package curvature derives curvature tensors from a metric by finite
// differences of the connection, and exposes an Einstein-tensor-based
// stress-energy estimate for ANEC evaluation.
//
// Chain, leaf-first:
//
//	∂_α Γ^ρ_{μν}  — central difference of geodesic.Connection (outer step)
//	R^ρ_{σμν}     = ∂_μ Γ^ρ_{νσ} − ∂_ν Γ^ρ_{μσ}
//	              + Γ^ρ_{μλ}Γ^λ_{νσ} − Γ^ρ_{νλ}Γ^λ_{μσ}
//	R_{σν}        = R^μ_{σμν}
//	R             = g^{σν} R_{σν}
//	G_{μν}        = R_{μν} − ½ g_{μν} R
//	T_{μν}        = G_{μν} / 8π        (geometric units, Einstein equations)
//
// The differencing is nested: the connection itself differentiates the
// metric with the fine inner step, and the outer Γ-derivative uses a
// coarser step so roundoff from the inner layer does not get amplified.
// Both steps are explicit per-call configuration.
//
// Everything is a pure function of the coordinate; nothing is cached.
// A singular metric anywhere in the stencil surfaces as
// geodesic.ErrSingularMetric.
package curvature
