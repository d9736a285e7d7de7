package geodesic

import (
	"math"

	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/tensor"
)

// state is the first-order phase-space point (x, k) the RK4 scheme advances.
type state struct {
	x tensor.Coordinate
	k tensor.Vec4
}

// add returns s + h·d, the standard RK4 stage combination.
func (s state) add(d state, h float64) state {
	var r state
	for i := 0; i < tensor.Dim; i++ {
		r.x[i] = s.x[i] + h*d.x[i]
		r.k[i] = s.k[i] + h*d.k[i]
	}
	return r
}

// Integrate solves the geodesic equation
//
//	d²x^λ/dλ² = −Γ^λ_{μν} (dx^μ/dλ)(dx^ν/dλ)
//
// from (start, k0) over [0, opts.LambdaMax] with opts.Steps equal RK4
// steps, producing a Trace of Steps+1 samples. A nil opts uses
// DefaultOptions.
//
// The pass is single and deterministic: identical inputs yield
// bit-identical traces, and no retry or adaptive control happens inside.
// Failures surface as *FailureError carrying the affine parameter — a
// singular metric at any RK4 stage (ErrSingularMetric) or a state leaving
// the sanity bound (ErrDiverged). Causal drift is not a failure: it is
// recorded per sample as the Residual diagnostic.
func Integrate(m metric.Metric, start tensor.Coordinate, k0 tensor.Vec4, opts *Options) (*Trace, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	h := o.LambdaMax / float64(o.Steps)
	cur := state{x: start, k: k0}

	samples := make([]Sample, 0, o.Steps+1)
	samples = append(samples, sampleAt(m, 0, cur))

	for i := 0; i < o.Steps; i++ {
		lam := float64(i) * h

		k1, err := derive(m, cur, &o)
		if err != nil {
			return nil, &FailureError{Lambda: lam, Step: i, Err: err}
		}
		k2, err := derive(m, cur.add(k1, h/2), &o)
		if err != nil {
			return nil, &FailureError{Lambda: lam, Step: i, Err: err}
		}
		k3, err := derive(m, cur.add(k2, h/2), &o)
		if err != nil {
			return nil, &FailureError{Lambda: lam, Step: i, Err: err}
		}
		k4, err := derive(m, cur.add(k3, h), &o)
		if err != nil {
			return nil, &FailureError{Lambda: lam, Step: i, Err: err}
		}

		for j := 0; j < tensor.Dim; j++ {
			cur.x[j] += h / 6 * (k1.x[j] + 2*k2.x[j] + 2*k3.x[j] + k4.x[j])
			cur.k[j] += h / 6 * (k1.k[j] + 2*k2.k[j] + 2*k3.k[j] + k4.k[j])
		}

		next := float64(i+1) * h
		if !withinBound(cur, o.SanityBound) {
			return nil, &FailureError{Lambda: next, Step: i, Err: ErrDiverged}
		}
		samples = append(samples, sampleAt(m, next, cur))
	}

	return &Trace{Samples: samples, LambdaMax: o.LambdaMax, StepSize: h}, nil
}

// derive evaluates the first-order right-hand side at s:
// dx/dλ = k, dk^λ/dλ = −Γ^λ_{μν} k^μ k^ν.
func derive(m metric.Metric, s state, o *Options) (state, error) {
	gamma, err := Connection(m, s.x, o.FDStep, o.DetTol)
	if err != nil {
		return state{}, err
	}
	var d state
	d.x = tensor.Coordinate(s.k)
	for l := 0; l < tensor.Dim; l++ {
		acc := 0.0
		for mu := 0; mu < tensor.Dim; mu++ {
			for nu := 0; nu < tensor.Dim; nu++ {
				acc += gamma[l][mu][nu] * s.k[mu] * s.k[nu]
			}
		}
		d.k[l] = -acc
	}
	return d, nil
}

// sampleAt records one trace sample, evaluating the causal residual with a
// fresh metric lookup at the sample point.
func sampleAt(m metric.Metric, lam float64, s state) Sample {
	g := m.Evaluate(s.x)
	return Sample{
		Lambda:   lam,
		Point:    s.x,
		Tangent:  s.k,
		Residual: g.Contract(s.k, s.k),
	}
}

// withinBound reports whether every component of the state is finite and
// inside the sanity bound.
func withinBound(s state, bound float64) bool {
	for i := 0; i < tensor.Dim; i++ {
		if math.IsNaN(s.x[i]) || math.Abs(s.x[i]) > bound {
			return false
		}
		if math.IsNaN(s.k[i]) || math.Abs(s.k[i]) > bound {
			return false
		}
	}
	return true
}
