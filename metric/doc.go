// Package metric defines the spacetime-metric and stress-energy contracts
// consumed by the geodesic integrator and the ANEC evaluator, together with
// the analytic metric families the probe compares:
//
//   - [Minkowski]:   flat baseline, diag(−1, +1, +1, +1)
//   - [Alcubierre]:  static warp bubble moving at velocity v
//   - [Pulsed]:      Alcubierre with a smooth tanh switch-on window in t
//   - [FRCorrected]: any base metric with its deviation from flat
//     amplified by a modified-gravity coupling α
//
// Every implementation must be pure (deterministic, no side effects),
// defined over the whole coordinate domain a geodesic may traverse, and
// return a symmetric tensor in the module-wide mostly-plus signature
// (−, +, +, +). The integrator checks symmetry; implementations guarantee
// it by construction.
//
// Variants are separate implementations selected by explicit construction,
// never by runtime type inspection: build the metric you mean and inject it.
//
// Example:
//
//	m, err := metric.NewAlcubierre(1.0, 100, 10)
//	if err != nil { ... }
//	g := m.Evaluate(tensor.Coordinate{0, -200, 0, 0})
package metric
