package metric

import "github.com/nullcone/anecprobe/tensor"

// FRCorrected applies a modified-gravity f(R) correction to a base metric,
// modeled at linear order as an amplification of the base metric's
// deviation from flat space by the coupling α:
//
//	g'_{μν} = g_{μν} + α (g_{μν} − η_{μν})
//
// At α = 0 this is exactly the base (GR) metric; the perturbation grows
// monotonically with α, which is the property the downstream GR-vs-f(R)
// ANEC comparisons rely on. Symmetry of the base tensor is preserved since
// η and the deviation are both symmetric.
type FRCorrected struct {
	base  Metric
	alpha float64
}

// NewFRCorrected wraps base with coupling alpha. The base must be non-nil;
// alpha may be any finite value, including negative couplings.
func NewFRCorrected(base Metric, alpha float64) (*FRCorrected, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	return &FRCorrected{base: base, alpha: alpha}, nil
}

// Alpha returns the coupling constant.
func (m *FRCorrected) Alpha() float64 { return m.alpha }

// Evaluate implements Metric.
func (m *FRCorrected) Evaluate(p tensor.Coordinate) tensor.Matrix4 {
	g := m.base.Evaluate(p)
	return g.Add(g.Sub(tensor.Minkowski()).Scale(m.alpha))
}
