// Package anecprobe is a numerical laboratory for probing the Averaged
// Null Energy Condition (ANEC) in analytically specified spacetimes —
// from metric evaluation to geodesic integration to energy integrals.
//
// 🚀 What is anecprobe?
//
//	A set of composable numerical packages answering one question: does
//	a given metric admit ANEC violations along null rays?
//		• tensor:    4×4 Lorentzian primitives — vectors, metrics, inversion
//		• metric:    analytic families — warp bubbles, pulsed drives,
//		             modified-gravity corrections
//		• geodesic:  Christoffel symbols, null initial data, fixed-step
//		             RK4 integration with causal-residual tracking
//		• curvature: finite-difference Riemann, Ricci and Einstein tensors
//		             plus the implied stress-energy
//		• anec:      trapezoidal ANEC integrals with drift diagnostics
//		• sweep:     bounded-parallel parameter sweeps over case grids
//		• results:   JSON export and SQLite persistence of sweep records
//		• plot:      PNG figures for contraction profiles and sweep summaries
//
// ✨ Why this layout?
//
//   - Each stage accepts the previous stage's output – no hidden state
//   - Deterministic by construction – fixed grids, identical inputs give
//     bit-identical output
//   - Every integration failure carries the affine parameter λ at which
//     it happened
//
// The anecctl command (cmd/anecctl) ties the stages together behind YAML
// scenario files: single runs, parameter-grid sweeps, and static-versus-
// pulsed bubble comparisons.
//
//	go get github.com/nullcone/anecprobe
package anecprobe
