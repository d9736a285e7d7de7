package geodesic

import (
	"errors"

	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/tensor"
)

// Partials approximates ∂_α g_{μν} at p for all four α by central
// differences with step h, indexed [α][μ][ν]. Pure function of the
// coordinate: 8 metric evaluations, no caching.
//
// The step is fixed, not adaptive. If the metric is non-smooth at p the
// result is a biased but finite approximation; callers needing higher
// fidelity near such points must shrink h or avoid sampling there.
func Partials(m metric.Metric, p tensor.Coordinate, h float64) tensor.Rank3 {
	var d tensor.Rank3
	inv2h := 1 / (2 * h)
	for a := 0; a < tensor.Dim; a++ {
		fwd, bwd := p, p
		fwd[a] += h
		bwd[a] -= h
		gf := m.Evaluate(fwd)
		gb := m.Evaluate(bwd)
		for i := 0; i < tensor.Dim; i++ {
			for j := 0; j < tensor.Dim; j++ {
				d[a][i][j] = (gf[i][j] - gb[i][j]) * inv2h
			}
		}
	}
	return d
}

// Connection assembles the Christoffel symbols Γ^λ_{μν} at p from the
// metric, its inverse and its central-difference partials:
//
//	Γ^λ_{μν} = ½ g^{λσ} (∂_μ g_{νσ} + ∂_ν g_{μσ} − ∂_σ g_{μν})
//
// h is the differencing step, detTol the singularity threshold on |det g|.
// A numerically singular metric surfaces as ErrSingularMetric — never as
// silent NaN propagation.
func Connection(m metric.Metric, p tensor.Coordinate, h, detTol float64) (tensor.Rank3, error) {
	g := m.Evaluate(p)
	inv, err := g.Inverse(detTol)
	if err != nil {
		if errors.Is(err, tensor.ErrSingular) {
			return tensor.Rank3{}, ErrSingularMetric
		}
		return tensor.Rank3{}, err
	}
	d := Partials(m, p, h)

	var gamma tensor.Rank3
	for l := 0; l < tensor.Dim; l++ {
		for mu := 0; mu < tensor.Dim; mu++ {
			for nu := mu; nu < tensor.Dim; nu++ {
				s := 0.0
				for sg := 0; sg < tensor.Dim; sg++ {
					s += inv[l][sg] * (d[mu][nu][sg] + d[nu][mu][sg] - d[sg][mu][nu])
				}
				s *= 0.5
				// Γ is symmetric in its lower indices; fill both slots.
				gamma[l][mu][nu] = s
				gamma[l][nu][mu] = s
			}
		}
	}
	return gamma, nil
}
