// Package plot renders PNG figures from traces and sweep records: the
// per-sample ANEC integrand along the affine parameter, the causal-residual
// profile, and integral-versus-parameter sweep summaries.
package plot

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/nullcone/anecprobe/anec"
	"github.com/nullcone/anecprobe/geodesic"
	"github.com/nullcone/anecprobe/sweep"
)

// Sentinel errors for figure construction.
var (
	// ErrLengthMismatch indicates series of different lengths.
	ErrLengthMismatch = errors.New("plot: series lengths do not match")

	// ErrTooFewPoints indicates fewer than two points, which cannot form a
	// line series.
	ErrTooFewPoints = errors.New("plot: need at least two points")
)

// ContractionProfile renders the integrand T_{μν}k^μk^ν against λ.
func ContractionProfile(w io.Writer, title string, tr *geodesic.Trace, res *anec.Result) error {
	if tr == nil || res == nil || tr.Len() != len(res.Stats.Contractions) {
		return ErrLengthMismatch
	}
	xs := make([]float64, tr.Len())
	for i, s := range tr.Samples {
		xs[i] = s.Lambda
	}
	return renderLine(w, title, "λ", "T·k·k", xs, res.Stats.Contractions)
}

// ResidualProfile renders the causal residual g_{μν}k^μk^ν against λ.
func ResidualProfile(w io.Writer, title string, tr *geodesic.Trace) error {
	if tr == nil {
		return ErrTooFewPoints
	}
	xs := make([]float64, tr.Len())
	ys := make([]float64, tr.Len())
	for i, s := range tr.Samples {
		xs[i] = s.Lambda
		ys[i] = s.Residual
	}
	return renderLine(w, title, "λ", "g·k·k", xs, ys)
}

// SweepSummary renders run integrals against a sweep parameter (impact
// parameter, coupling α, ...). Failed runs are skipped; the parameter
// slice must match the record slice.
func SweepSummary(w io.Writer, title, xLabel string, params []float64, recs []sweep.RunRecord) error {
	if len(params) != len(recs) {
		return ErrLengthMismatch
	}
	var xs, ys []float64
	for i, r := range recs {
		if r.Failed() || r.Result == nil {
			continue
		}
		xs = append(xs, params[i])
		ys = append(ys, r.Result.Integral)
	}
	return renderLine(w, title, xLabel, "ANEC", xs, ys)
}

// renderLine draws one continuous series with the shared styling.
func renderLine(w io.Writer, title, xLabel, yLabel string, xs, ys []float64) error {
	if len(xs) < 2 {
		return ErrTooFewPoints
	}
	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{
			Name:  xLabel,
			Style: chart.Style{FontSize: 10},
		},
		YAxis: chart.YAxis{
			Name:  yLabel,
			Style: chart.Style{FontSize: 10},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yLabel,
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
