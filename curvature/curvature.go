package curvature

import (
	"math"

	"github.com/nullcone/anecprobe/geodesic"
	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/tensor"
)

// EinsteinCoupling is the 8π factor of the Einstein field equations in
// geometric units (G = c = 1): G_{μν} = 8π T_{μν}.
const EinsteinCoupling = 8 * math.Pi

// Options configures the nested finite-difference chain.
type Options struct {
	// FDStep is the outer central-difference step applied to the
	// connection. Coarser than the metric step: the connection already
	// carries inner-difference roundoff, and dividing by a tiny outer step
	// would amplify it.
	FDStep float64

	// MetricStep is the inner step used by geodesic.Connection for the
	// metric partials.
	MetricStep float64

	// DetTol is the singularity threshold on |det g|.
	DetTol float64
}

// DefaultOptions returns the tuned default steps: outer 1e-3, inner 1e-6.
func DefaultOptions() Options {
	return Options{
		FDStep:     1e-3,
		MetricStep: 1e-6,
		DetTol:     1e-12,
	}
}

// validate reuses the geodesic sentinel for non-positive steps.
func (o *Options) validate() error {
	if o.FDStep <= 0 || o.MetricStep <= 0 || o.DetTol <= 0 {
		return geodesic.ErrBadTolerance
	}
	return nil
}

// Riemann computes R^ρ_{σμν} at p. A nil opts uses DefaultOptions.
func Riemann(m metric.Metric, p tensor.Coordinate, opts *Options) (tensor.Rank4, error) {
	if m == nil {
		return tensor.Rank4{}, geodesic.ErrNilMetric
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return tensor.Rank4{}, err
	}

	gamma, err := geodesic.Connection(m, p, o.MetricStep, o.DetTol)
	if err != nil {
		return tensor.Rank4{}, err
	}

	// dGamma[α][ρ][μ][ν] = ∂_α Γ^ρ_{μν}, central difference with the outer
	// step. 8 connection builds per point.
	var dGamma tensor.Rank4
	inv2h := 1 / (2 * o.FDStep)
	for a := 0; a < tensor.Dim; a++ {
		fwd, bwd := p, p
		fwd[a] += o.FDStep
		bwd[a] -= o.FDStep
		gf, err := geodesic.Connection(m, fwd, o.MetricStep, o.DetTol)
		if err != nil {
			return tensor.Rank4{}, err
		}
		gb, err := geodesic.Connection(m, bwd, o.MetricStep, o.DetTol)
		if err != nil {
			return tensor.Rank4{}, err
		}
		for r := 0; r < tensor.Dim; r++ {
			for mu := 0; mu < tensor.Dim; mu++ {
				for nu := 0; nu < tensor.Dim; nu++ {
					dGamma[a][r][mu][nu] = (gf[r][mu][nu] - gb[r][mu][nu]) * inv2h
				}
			}
		}
	}

	var riem tensor.Rank4
	for r := 0; r < tensor.Dim; r++ {
		for sg := 0; sg < tensor.Dim; sg++ {
			for mu := 0; mu < tensor.Dim; mu++ {
				for nu := 0; nu < tensor.Dim; nu++ {
					v := dGamma[mu][r][nu][sg] - dGamma[nu][r][mu][sg]
					for l := 0; l < tensor.Dim; l++ {
						v += gamma[r][mu][l]*gamma[l][nu][sg] - gamma[r][nu][l]*gamma[l][mu][sg]
					}
					riem[r][sg][mu][nu] = v
				}
			}
		}
	}
	return riem, nil
}

// Ricci contracts the Riemann tensor: R_{σν} = R^μ_{σμν}.
func Ricci(m metric.Metric, p tensor.Coordinate, opts *Options) (tensor.Matrix4, error) {
	riem, err := Riemann(m, p, opts)
	if err != nil {
		return tensor.Matrix4{}, err
	}
	return contractRicci(riem), nil
}

func contractRicci(riem tensor.Rank4) tensor.Matrix4 {
	var ric tensor.Matrix4
	for sg := 0; sg < tensor.Dim; sg++ {
		for nu := 0; nu < tensor.Dim; nu++ {
			s := 0.0
			for mu := 0; mu < tensor.Dim; mu++ {
				s += riem[mu][sg][mu][nu]
			}
			ric[sg][nu] = s
		}
	}
	return ric
}

// Einstein computes G_{μν} = R_{μν} − ½ g_{μν} R at p.
func Einstein(m metric.Metric, p tensor.Coordinate, opts *Options) (tensor.Matrix4, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	riem, err := Riemann(m, p, &o)
	if err != nil {
		return tensor.Matrix4{}, err
	}
	ric := contractRicci(riem)

	g := m.Evaluate(p)
	inv, err := g.Inverse(o.DetTol)
	if err != nil {
		return tensor.Matrix4{}, err
	}
	scalar := 0.0
	for sg := 0; sg < tensor.Dim; sg++ {
		for nu := 0; nu < tensor.Dim; nu++ {
			scalar += inv[sg][nu] * ric[sg][nu]
		}
	}
	return ric.Sub(g.Scale(scalar / 2)), nil
}

// Scalar computes the curvature scalar R = g^{σν} R_{σν} at p.
func Scalar(m metric.Metric, p tensor.Coordinate, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	ric, err := Ricci(m, p, &o)
	if err != nil {
		return 0, err
	}
	g := m.Evaluate(p)
	inv, err := g.Inverse(o.DetTol)
	if err != nil {
		return 0, err
	}
	s := 0.0
	for sg := 0; sg < tensor.Dim; sg++ {
		for nu := 0; nu < tensor.Dim; nu++ {
			s += inv[sg][nu] * ric[sg][nu]
		}
	}
	return s, nil
}

// EinsteinStress turns a metric into a stress-energy model through the
// field equations, T_{μν} = G_{μν}/8π. It implements metric.StressEnergy
// and is the default model the probe contracts along geodesics.
type EinsteinStress struct {
	m    metric.Metric
	opts Options
}

// NewEinsteinStress builds the curvature-derived stress model for m.
// A nil opts uses DefaultOptions.
func NewEinsteinStress(m metric.Metric, opts *Options) (*EinsteinStress, error) {
	if m == nil {
		return nil, geodesic.ErrNilMetric
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &EinsteinStress{m: m, opts: o}, nil
}

// Stress implements metric.StressEnergy.
func (s *EinsteinStress) Stress(p tensor.Coordinate) (tensor.Matrix4, error) {
	g, err := Einstein(s.m, p, &s.opts)
	if err != nil {
		return tensor.Matrix4{}, err
	}
	return g.Scale(1 / EinsteinCoupling), nil
}
