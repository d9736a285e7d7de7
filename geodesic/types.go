package geodesic

import (
	"errors"
	"fmt"

	"github.com/nullcone/anecprobe/tensor"
)

// Sentinel errors returned by the geodesic pipeline.
var (
	// ErrNilMetric indicates a nil metric was passed in.
	ErrNilMetric = errors.New("geodesic: metric is nil")

	// ErrBadStepCount indicates Steps < 1.
	ErrBadStepCount = errors.New("geodesic: step count must be >= 1")

	// ErrBadLambdaMax indicates a non-positive or non-finite affine range.
	ErrBadLambdaMax = errors.New("geodesic: LambdaMax must be positive and finite")

	// ErrBadTolerance indicates a non-positive FDStep, DetTol or SanityBound.
	ErrBadTolerance = errors.New("geodesic: FDStep, DetTol and SanityBound must be positive")

	// ErrSingularMetric indicates the metric tensor was numerically singular
	// (|det g| below DetTol) at an evaluation point, so the inverse needed
	// for the connection is ill-defined.
	ErrSingularMetric = errors.New("geodesic: metric tensor numerically singular")

	// ErrDiverged indicates the state left the configured sanity bound or
	// became non-finite during integration.
	ErrDiverged = errors.New("geodesic: trajectory diverged beyond sanity bound")

	// ErrZeroDirection indicates a zero spatial direction vector.
	ErrZeroDirection = errors.New("geodesic: initial direction must be non-zero")

	// ErrNoNullRoot indicates the null condition has no real future-directed
	// solution at the start point (the metric is not Lorentzian there).
	ErrNoNullRoot = errors.New("geodesic: no future-directed null root at start point")
)

// FailureError reports a mid-integration failure together with the affine
// parameter and step at which it occurred, for diagnosis and retry policy
// in the caller. It unwraps to the underlying sentinel, so
// errors.Is(err, ErrSingularMetric) and errors.Is(err, ErrDiverged) work
// through it.
type FailureError struct {
	Lambda float64 // affine parameter at the failing step's start
	Step   int     // zero-based step index
	Err    error   // underlying sentinel
}

// Error implements error.
func (e *FailureError) Error() string {
	return fmt.Sprintf("geodesic: integration failed at λ=%g (step %d): %v", e.Lambda, e.Step, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is/As.
func (e *FailureError) Unwrap() error { return e.Err }

// Options configures one integration request. All numeric knobs are
// explicit per-call configuration — there is no ambient state — so sweeps
// can vary them independently and reproducibly.
type Options struct {
	// Steps is the number of equal RK4 steps; the trace holds Steps+1
	// samples.
	Steps int

	// LambdaMax is the affine-parameter range [0, LambdaMax].
	LambdaMax float64

	// FDStep is the central-difference step for metric partials. Fixed, not
	// adaptive; tuned to the metric smoothness scale. Near a non-smooth
	// point the differences are biased but non-fatal.
	FDStep float64

	// DetTol is the |det g| threshold below which the metric counts as
	// numerically singular.
	DetTol float64

	// SanityBound aborts the integration when any coordinate or tangent
	// component exceeds it in magnitude.
	SanityBound float64
}

// DefaultOptions returns the baseline configuration. Steps and LambdaMax
// are placeholders a caller will normally override; the tolerances carry
// the empirically tuned default magnitudes.
func DefaultOptions() Options {
	return Options{
		Steps:       200,
		LambdaMax:   1.0,
		FDStep:      1e-6,
		DetTol:      1e-12,
		SanityBound: 1e6,
	}
}

// validate checks the option set and returns the matching sentinel.
func (o *Options) validate() error {
	if o.Steps < 1 {
		return ErrBadStepCount
	}
	if !(o.LambdaMax > 0) || o.LambdaMax > 1e300 {
		return ErrBadLambdaMax
	}
	if o.FDStep <= 0 || o.DetTol <= 0 || o.SanityBound <= 0 {
		return ErrBadTolerance
	}
	return nil
}

// Sample is one point of a geodesic trace.
type Sample struct {
	// Lambda is the affine parameter of this sample.
	Lambda float64

	// Point is the coordinate x(λ).
	Point tensor.Coordinate

	// Tangent is the tangent vector k(λ) = dx/dλ.
	Tangent tensor.Vec4

	// Residual is the causal diagnostic g_{μν}k^μk^ν at this sample;
	// ~0 for a null geodesic, drifting with finite-step error.
	Residual float64
}

// Trace is an integrated geodesic: Steps+1 equally spaced samples over
// [0, LambdaMax]. Immutable once produced and owned by the caller that
// requested the integration.
type Trace struct {
	// Samples holds the ordered (λ, x, k, residual) sequence.
	Samples []Sample

	// LambdaMax is the affine range the trace spans.
	LambdaMax float64

	// StepSize is LambdaMax / Steps, the uniform sample spacing.
	StepSize float64
}

// Len returns the number of samples (step count + 1).
func (tr *Trace) Len() int { return len(tr.Samples) }

// MaxResidual returns the largest |g_{μν}k^μk^ν| across the trace,
// the headline causal-drift diagnostic.
func (tr *Trace) MaxResidual() float64 {
	max := 0.0
	for _, s := range tr.Samples {
		if r := abs(s.Residual); r > max {
			max = r
		}
	}
	return max
}

// abs is a local float64 absolute value, avoiding a math import here.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
