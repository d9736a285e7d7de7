package metric

import (
	"errors"

	"github.com/nullcone/anecprobe/tensor"
)

// Sentinel errors returned by metric constructors.
var (
	// ErrBadVelocity indicates a non-finite bubble velocity.
	ErrBadVelocity = errors.New("metric: bubble velocity must be finite")

	// ErrBadShapeParam indicates a non-positive bubble radius or wall
	// thickness; the tanh shape function is undefined there.
	ErrBadShapeParam = errors.New("metric: radius and wall thickness must be positive")

	// ErrBadWindow indicates a pulse window with T1 <= T0 or a non-positive
	// ramp time.
	ErrBadWindow = errors.New("metric: pulse window requires t1 > t0 and positive ramp")

	// ErrNilBase indicates a nil base metric passed to a wrapping metric.
	ErrNilBase = errors.New("metric: base metric is nil")
)

// Metric is a spacetime metric presented as a callable: a pure,
// deterministic function of an event returning g_{μν} at that event.
// The returned tensor must be symmetric and use the mostly-plus signature.
type Metric interface {
	Evaluate(p tensor.Coordinate) tensor.Matrix4
}

// StressEnergy supplies a local stress-energy estimate T_{μν} at an event.
// Implementations may derive it from curvature (see package curvature) or
// encode an analytic model; the ANEC evaluator treats it as opaque.
// Evaluation may fail (e.g. a singular metric inside a curvature chain),
// hence the error return.
type StressEnergy interface {
	Stress(p tensor.Coordinate) (tensor.Matrix4, error)
}

// Func adapts a plain function to the Metric interface.
type Func func(p tensor.Coordinate) tensor.Matrix4

// Evaluate implements Metric.
func (f Func) Evaluate(p tensor.Coordinate) tensor.Matrix4 { return f(p) }

// StressFunc adapts a plain function to the StressEnergy interface.
type StressFunc func(p tensor.Coordinate) (tensor.Matrix4, error)

// Stress implements StressEnergy.
func (f StressFunc) Stress(p tensor.Coordinate) (tensor.Matrix4, error) { return f(p) }

// Minkowski is the flat metric. Its zero value is ready to use.
type Minkowski struct{}

// Evaluate returns diag(−1, +1, +1, +1) everywhere.
func (Minkowski) Evaluate(tensor.Coordinate) tensor.Matrix4 { return tensor.Minkowski() }
