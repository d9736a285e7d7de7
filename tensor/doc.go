// SPDX-License-Identifier: MIT
// Package tensor provides the fixed-size numeric types used throughout the
// ANEC probe: spacetime coordinates, 4-vectors, 4×4 tensors and the rank-3
// and rank-4 arrays that hold connection coefficients and curvature.
//
// Everything here is dimension 4 by construction — no dynamic shapes, no
// shape inference. All kernels are deterministic, allocation-free for the
// array types (values, not slices), and fail fast with sentinel errors on
// user-triggered conditions (singular tensors, non-finite entries).
//
// Conventions:
//   - Index order is (t, x, y, z); use the T, X, Y, Z constants.
//   - Rank3 is indexed [λ][μ][ν] for Γ^λ_{μν} (and [α][μ][ν] for ∂_α g_{μν}).
//   - Rank4 is indexed [ρ][σ][μ][ν] for R^ρ_{σμν}.
//   - Metric signature is mostly-plus: Minkowski = diag(−1, +1, +1, +1).
//
// Errors:
//   - ErrSingular    — determinant (or a pivot) below the singularity
//     threshold during inversion.
//   - ErrAsymmetry   — a tensor required to be symmetric was not, within eps.
//   - ErrNaNInf      — a NaN or ±Inf entry where finite values are required.
package tensor
