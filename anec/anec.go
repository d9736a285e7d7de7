package anec

import (
	"errors"
	"math"

	"github.com/nullcone/anecprobe/geodesic"
	"github.com/nullcone/anecprobe/metric"
)

// Sentinel errors returned by the evaluator.
var (
	// ErrNilStress indicates a nil stress-energy model.
	ErrNilStress = errors.New("anec: stress-energy model is nil")

	// ErrNilTrace indicates a nil trace.
	ErrNilTrace = errors.New("anec: trace is nil")

	// ErrDegenerateTrace indicates fewer than two samples or a vanishing
	// affine range — there is nothing meaningful to integrate.
	ErrDegenerateTrace = errors.New("anec: degenerate trace (need >= 2 samples over a non-zero affine range)")

	// ErrBadTolerance indicates a non-positive causal tolerance.
	ErrBadTolerance = errors.New("anec: CausalTol must be positive")
)

// Options configures one evaluation.
type Options struct {
	// CausalTol is the |residual| threshold above which a sample counts as
	// drifted off the null cone. Diagnostic only — drift never fails the
	// evaluation.
	CausalTol float64
}

// DefaultOptions returns the default causal tolerance of 1e-6
// (dimensionless units). Changing it alters the physical interpretation of
// downstream comparisons, so sweeps must carry it explicitly.
func DefaultOptions() Options {
	return Options{CausalTol: 1e-6}
}

// Stats is the diagnostic record attached to every ANEC result.
type Stats struct {
	// ResidualMin/Max/Mean summarize the causal residual across samples.
	ResidualMin  float64 `json:"residual_min"`
	ResidualMax  float64 `json:"residual_max"`
	ResidualMean float64 `json:"residual_mean"`

	// DriftCount is the number of samples with |residual| > CausalTol,
	// flagging geodesics that drifted off the null cone.
	DriftCount int `json:"drift_count"`

	// Contractions holds the raw per-sample integrand T_{μν}k^μk^ν.
	Contractions []float64 `json:"contractions"`
}

// Result is one ANEC evaluation: the line integral plus diagnostics.
// Immutable once produced; one per (metric, initial condition) pair.
type Result struct {
	// Integral is ∫ T_{μν}k^μk^ν dλ over the trace. Negative values
	// indicate an energy-condition violation.
	Integral float64 `json:"integral"`

	// Stats carries the causal-drift diagnostics and raw integrand.
	Stats Stats `json:"stats"`
}

// Evaluate computes the ANEC integral of the stress model along tr by
// trapezoidal quadrature. A nil opts uses DefaultOptions.
func Evaluate(stress metric.StressEnergy, tr *geodesic.Trace, opts *Options) (*Result, error) {
	if stress == nil {
		return nil, ErrNilStress
	}
	if tr == nil {
		return nil, ErrNilTrace
	}
	if tr.Len() < 2 || !(tr.LambdaMax > 0) || tr.StepSize <= 0 {
		return nil, ErrDegenerateTrace
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.CausalTol <= 0 {
		return nil, ErrBadTolerance
	}

	n := tr.Len()
	contractions := make([]float64, n)
	stats := Stats{
		ResidualMin: math.Inf(1),
		ResidualMax: math.Inf(-1),
	}

	sum := 0.0
	for i, s := range tr.Samples {
		tmu, err := stress.Stress(s.Point)
		if err != nil {
			return nil, err
		}
		c := tmu.Contract(s.Tangent, s.Tangent)
		contractions[i] = c

		// Trapezoid weights: half at the endpoints, full inside.
		w := 1.0
		if i == 0 || i == n-1 {
			w = 0.5
		}
		sum += w * c

		r := s.Residual
		if r < stats.ResidualMin {
			stats.ResidualMin = r
		}
		if r > stats.ResidualMax {
			stats.ResidualMax = r
		}
		stats.ResidualMean += r
		if math.Abs(r) > o.CausalTol {
			stats.DriftCount++
		}
	}
	stats.ResidualMean /= float64(n)
	stats.Contractions = contractions

	return &Result{
		Integral: sum * tr.StepSize,
		Stats:    stats,
	}, nil
}

// RelativeDeviation returns |a−b| / max(|b|, floor), the headline number of
// static-vs-pulsed and GR-vs-modified comparisons. The floor guards the
// division when the reference integral is itself numerically zero.
func RelativeDeviation(a, b *Result) float64 {
	const floor = 1e-300
	ref := math.Abs(b.Integral)
	if ref < floor {
		ref = floor
	}
	return math.Abs(a.Integral-b.Integral) / ref
}
