package metric

import (
	"math"

	"github.com/nullcone/anecprobe/tensor"
)

// Pulsed is an Alcubierre bubble whose warp potential is multiplied by a
// smooth switch-on window in coordinate time:
//
//	w(t) = ½ (tanh((t − t0)/τ) − tanh((t − t1)/τ))
//
// so the bubble is active between t0 and t1 and the spacetime is (nearly)
// flat outside the window. Only the potential is windowed; the bubble stays
// pinned at the origin. A ray that crosses the bubble region outside
// [t0, t1] therefore sees flat space.
//
// The window is smooth everywhere, so the finite-difference machinery stays
// well behaved across the ramps as long as the ramp time τ is large
// compared to the differencing step.
type Pulsed struct {
	base   *Alcubierre
	t0, t1 float64
	ramp   float64
}

// NewPulsed builds a time-windowed warp bubble. Bubble parameters follow
// NewAlcubierre; the window must have t1 > t0 and a positive ramp time.
func NewPulsed(velocity, radius, wall, t0, t1, ramp float64) (*Pulsed, error) {
	base, err := NewAlcubierre(velocity, radius, wall)
	if err != nil {
		return nil, err
	}
	if t1 <= t0 || ramp <= 0 {
		return nil, ErrBadWindow
	}
	return &Pulsed{base: base, t0: t0, t1: t1, ramp: ramp}, nil
}

// Window returns the switch-on envelope w(t) ∈ (0, 1).
func (m *Pulsed) Window(t float64) float64 {
	return 0.5 * (math.Tanh((t-m.t0)/m.ramp) - math.Tanh((t-m.t1)/m.ramp))
}

// Evaluate implements Metric.
func (m *Pulsed) Evaluate(p tensor.Coordinate) tensor.Matrix4 {
	return warpTensor(m.base.Potential(p) * m.Window(p[tensor.T]))
}
