package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nullcone/anecprobe/anec"
	"github.com/nullcone/anecprobe/geodesic"
	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/sweep"
	"github.com/nullcone/anecprobe/tensor"
)

// Scenario errors.
var (
	errUnknownFamily = errors.New("scenario: unknown metric family")
	errNeedsWindow   = errors.New("scenario: pulsed family requires a window")
	errBothGrids     = errors.New("scenario: impacts and alphas are mutually exclusive")
)

// Window describes the pulsed switch-on envelope.
type Window struct {
	T0   float64 `yaml:"t0"`
	T1   float64 `yaml:"t1"`
	Ramp float64 `yaml:"ramp"`
}

// MetricSpec selects and parameterizes a metric family.
type MetricSpec struct {
	// Family is one of "minkowski", "alcubierre", "pulsed".
	Family string `yaml:"family"`

	// Velocity, Radius and Wall parameterize the warp bubble.
	Velocity float64 `yaml:"velocity"`
	Radius   float64 `yaml:"radius"`
	Wall     float64 `yaml:"wall"`

	// Window configures the pulsed variant.
	Window *Window `yaml:"window,omitempty"`

	// Alpha, when non-zero, wraps the metric in the modified-gravity
	// correction with that coupling.
	Alpha float64 `yaml:"alpha,omitempty"`
}

// Scenario is the YAML description of one probe: metric family, initial
// kinematic data, integration options and an optional sweep grid.
type Scenario struct {
	Name   string     `yaml:"name"`
	Metric MetricSpec `yaml:"metric"`

	Start     [4]float64 `yaml:"start"`
	Direction [3]float64 `yaml:"direction"`

	LambdaMax float64 `yaml:"lambda_max"`
	Steps     int     `yaml:"steps"`

	// CausalTol overrides the default drift tolerance when positive.
	CausalTol float64 `yaml:"causal_tol,omitempty"`

	// Impacts, when set, expands into an impact-parameter sweep (transverse
	// offsets of the start point). Alphas expands into a coupling sweep.
	// At most one of the two may be set.
	Impacts []float64 `yaml:"impacts,omitempty"`
	Alphas  []float64 `yaml:"alphas,omitempty"`
}

// loadScenario reads and validates a scenario file.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if len(sc.Impacts) > 0 && len(sc.Alphas) > 0 {
		return nil, errBothGrids
	}
	return &sc, nil
}

// buildMetric constructs the scenario's metric, applying the optional
// coupling wrapper.
func (s *Scenario) buildMetric() (metric.Metric, error) {
	var (
		m   metric.Metric
		err error
	)
	switch s.Metric.Family {
	case "minkowski":
		m = metric.Minkowski{}
	case "alcubierre":
		m, err = metric.NewAlcubierre(s.Metric.Velocity, s.Metric.Radius, s.Metric.Wall)
	case "pulsed":
		w := s.Metric.Window
		if w == nil {
			return nil, errNeedsWindow
		}
		m, err = metric.NewPulsed(s.Metric.Velocity, s.Metric.Radius, s.Metric.Wall, w.T0, w.T1, w.Ramp)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFamily, s.Metric.Family)
	}
	if err != nil {
		return nil, err
	}
	if s.Metric.Alpha != 0 {
		return metric.NewFRCorrected(m, s.Metric.Alpha)
	}
	return m, nil
}

// sweepOptions maps the scenario onto the pipeline configuration.
func (s *Scenario) sweepOptions(workers int) sweep.Options {
	o := sweep.DefaultOptions()
	o.Workers = workers
	o.Geodesic = geodesic.DefaultOptions()
	o.Geodesic.Steps = s.Steps
	o.Geodesic.LambdaMax = s.LambdaMax
	o.ANEC = anec.DefaultOptions()
	if s.CausalTol > 0 {
		o.ANEC.CausalTol = s.CausalTol
	}
	return o
}

// buildCases expands the scenario into sweep cases: a grid when Impacts or
// Alphas is set, a single case otherwise.
func (s *Scenario) buildCases() ([]sweep.Case, error) {
	m, err := s.buildMetric()
	if err != nil {
		return nil, err
	}
	start := tensor.Coordinate(s.Start)

	switch {
	case len(s.Impacts) > 0:
		return sweep.ImpactParameterCases(m, s.Name, start[tensor.X], s.Impacts), nil
	case len(s.Alphas) > 0:
		return sweep.CouplingCases(m, s.Name, start, s.Direction, s.Alphas)
	default:
		return []sweep.Case{{
			Name:      s.Name,
			Metric:    m,
			Start:     start,
			Direction: s.Direction,
		}}, nil
	}
}
