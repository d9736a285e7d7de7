package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nullcone/anecprobe/anec"
	"github.com/nullcone/anecprobe/curvature"
	"github.com/nullcone/anecprobe/geodesic"
	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/tensor"
)

// Sentinel errors for sweep construction.
var (
	// ErrNoCases indicates an empty case list.
	ErrNoCases = errors.New("sweep: no cases to run")

	// ErrNilCaseMetric indicates a case without a metric.
	ErrNilCaseMetric = errors.New("sweep: case metric is nil")
)

// Case is one independent evaluation request.
type Case struct {
	// Name labels the case in results and reports.
	Name string

	// Metric is the spacetime under test.
	Metric metric.Metric

	// Stress is the stress-energy model; nil selects the curvature-derived
	// Einstein model for Metric.
	Stress metric.StressEnergy

	// Start and Direction are the initial kinematic data; Direction is
	// normalized into a null tangent under Metric.
	Start     tensor.Coordinate
	Direction [3]float64
}

// Options configures the pool and the per-case pipeline.
type Options struct {
	// Workers bounds concurrent evaluations; <= 0 means GOMAXPROCS.
	Workers int

	// Geodesic and ANEC configure every case identically; vary them across
	// separate sweeps, not within one, so runs stay comparable.
	Geodesic geodesic.Options
	ANEC     anec.Options
}

// DefaultOptions mirrors the per-package defaults with an unbounded-ish
// worker count left to the scheduler.
func DefaultOptions() Options {
	return Options{
		Workers:  0,
		Geodesic: geodesic.DefaultOptions(),
		ANEC:     anec.DefaultOptions(),
	}
}

// RunRecord is the persisted outcome of one case. Exactly one of
// Result/Error is meaningful: a failed case carries its error string and a
// zero Result.
type RunRecord struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Result *anec.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Failed reports whether the case errored.
func (r *RunRecord) Failed() bool { return r.Error != "" }

// Run evaluates all cases concurrently and returns their records in input
// order. Individual case failures are recorded, not raised; the returned
// error is non-nil only for invalid input or context cancellation.
func Run(ctx context.Context, cases []Case, opts *Options) ([]RunRecord, error) {
	if len(cases) == 0 {
		return nil, ErrNoCases
	}
	for i := range cases {
		if cases[i].Metric == nil {
			return nil, fmt.Errorf("case %d (%s): %w", i, cases[i].Name, ErrNilCaseMetric)
		}
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]RunRecord, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cases {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := &cases[i]
			rec := RunRecord{ID: uuid.NewString(), Name: c.Name}
			res, err := runCase(c, &o)
			if err != nil {
				rec.Error = err.Error()
			} else {
				rec.Result = res
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// runCase executes the full pipeline for a single case.
func runCase(c *Case, o *Options) (*anec.Result, error) {
	stress := c.Stress
	if stress == nil {
		es, err := curvature.NewEinsteinStress(c.Metric, nil)
		if err != nil {
			return nil, err
		}
		stress = es
	}

	k0, err := geodesic.NullTangent(c.Metric, c.Start, c.Direction)
	if err != nil {
		return nil, err
	}
	tr, err := geodesic.Integrate(c.Metric, c.Start, k0, &o.Geodesic)
	if err != nil {
		return nil, err
	}
	return anec.Evaluate(stress, tr, &o.ANEC)
}

// ImpactParameterCases builds parallel +x rays offset from the bubble axis
// by the given transverse impact parameters, all launched from x = startX.
func ImpactParameterCases(m metric.Metric, label string, startX float64, impacts []float64) []Case {
	cases := make([]Case, 0, len(impacts))
	for _, b := range impacts {
		cases = append(cases, Case{
			Name:      fmt.Sprintf("%s/b=%g", label, b),
			Metric:    m,
			Start:     tensor.Coordinate{0, startX, b, 0},
			Direction: [3]float64{1, 0, 0},
		})
	}
	return cases
}

// CouplingCases builds a modified-gravity α ladder over one base metric
// with shared initial data.
func CouplingCases(base metric.Metric, label string, start tensor.Coordinate, dir [3]float64, alphas []float64) ([]Case, error) {
	cases := make([]Case, 0, len(alphas))
	for _, a := range alphas {
		m, err := metric.NewFRCorrected(base, a)
		if err != nil {
			return nil, err
		}
		cases = append(cases, Case{
			Name:      fmt.Sprintf("%s/alpha=%g", label, a),
			Metric:    m,
			Start:     start,
			Direction: dir,
		})
	}
	return cases, nil
}
