package metric

import (
	"math"

	"github.com/nullcone/anecprobe/tensor"
)

// Alcubierre is the static warp-bubble metric in 3+1 form:
//
//	ds² = −dt² + (dx − v f(rs) dt)² + dy² + dz²
//
// so that g_tt = −(1 − v²f²), g_tx = g_xt = −v f, spatial block = identity.
// The shape function is the standard top-hat smoothed by tanh walls:
//
//	f(rs) = (tanh(σ(rs+R)) − tanh(σ(rs−R))) / (2 tanh(σR)),  σ = 1/wall
//
// with rs the distance from the bubble center, rs² = x² + y² + z². The
// bubble is pinned at the origin and the metric is time-independent; v sets
// the strength of the warp potential, not a trajectory. Time-dependence
// enters only through the Pulsed variant's switch-on window.
//
// f ≈ 1 deep inside the bubble and decays to 0 over a wall of the given
// thickness, so the metric is exactly flat in the v→0 limit and
// asymptotically flat far from the bubble.
type Alcubierre struct {
	v      float64 // bubble velocity (units of c)
	radius float64 // bubble radius R
	sigma  float64 // wall steepness σ = 1/thickness
	norm   float64 // 2·tanh(σR), precomputed
}

// NewAlcubierre builds a static warp bubble with the given velocity, radius
// and wall thickness. Radius and wall must be positive; velocity must be
// finite (zero gives exactly flat space, useful for reduction tests).
func NewAlcubierre(velocity, radius, wall float64) (*Alcubierre, error) {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return nil, ErrBadVelocity
	}
	if radius <= 0 || wall <= 0 {
		return nil, ErrBadShapeParam
	}
	sigma := 1 / wall
	return &Alcubierre{
		v:      velocity,
		radius: radius,
		sigma:  sigma,
		norm:   2 * math.Tanh(sigma*radius),
	}, nil
}

// Shape returns the wall function f(rs) at distance rs from the bubble
// center. Exposed for diagnostics and tests.
func (a *Alcubierre) Shape(rs float64) float64 {
	return (math.Tanh(a.sigma*(rs+a.radius)) - math.Tanh(a.sigma*(rs-a.radius))) / a.norm
}

// Potential returns the warp potential v·f at the event p, the single
// scalar the metric depends on.
func (a *Alcubierre) Potential(p tensor.Coordinate) float64 {
	rs := math.Sqrt(p[tensor.X]*p[tensor.X] + p[tensor.Y]*p[tensor.Y] + p[tensor.Z]*p[tensor.Z])
	return a.v * a.Shape(rs)
}

// Evaluate implements Metric.
func (a *Alcubierre) Evaluate(p tensor.Coordinate) tensor.Matrix4 {
	return warpTensor(a.Potential(p))
}

// warpTensor assembles the 3+1 warp metric from the potential vf.
// Shared by the static and pulsed variants.
func warpTensor(vf float64) tensor.Matrix4 {
	g := tensor.Minkowski()
	g[tensor.T][tensor.T] = -(1 - vf*vf)
	g[tensor.T][tensor.X] = -vf
	g[tensor.X][tensor.T] = -vf
	return g
}
