package plot_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullcone/anecprobe/anec"
	"github.com/nullcone/anecprobe/geodesic"
	"github.com/nullcone/anecprobe/plot"
	"github.com/nullcone/anecprobe/sweep"
)

// pngHeader is the magic prefix every rendered figure must carry.
var pngHeader = []byte{0x89, 'P', 'N', 'G'}

// syntheticTrace builds a trace with a sinusoidal residual so the chart has
// a real data range.
func syntheticTrace(n int) *geodesic.Trace {
	samples := make([]geodesic.Sample, n)
	for i := range samples {
		lam := float64(i)
		samples[i] = geodesic.Sample{
			Lambda:   lam,
			Residual: 1e-7 * math.Sin(lam/3),
		}
	}
	return &geodesic.Trace{Samples: samples, LambdaMax: float64(n - 1), StepSize: 1}
}

// TestContractionProfile_RendersPNG checks a well-formed figure.
func TestContractionProfile_RendersPNG(t *testing.T) {
	tr := syntheticTrace(30)
	contractions := make([]float64, tr.Len())
	for i := range contractions {
		contractions[i] = -1e-4 * math.Exp(-math.Pow(float64(i)-15, 2)/20)
	}
	res := &anec.Result{Integral: -0.01, Stats: anec.Stats{Contractions: contractions}}

	var buf bytes.Buffer
	require.NoError(t, plot.ContractionProfile(&buf, "static bubble", tr, res))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngHeader), "must produce a PNG")
}

// TestContractionProfile_Mismatch covers the length sentinel.
func TestContractionProfile_Mismatch(t *testing.T) {
	tr := syntheticTrace(10)
	res := &anec.Result{Stats: anec.Stats{Contractions: make([]float64, 7)}}
	var buf bytes.Buffer
	assert.ErrorIs(t, plot.ContractionProfile(&buf, "x", tr, res), plot.ErrLengthMismatch)
	assert.ErrorIs(t, plot.ContractionProfile(&buf, "x", nil, res), plot.ErrLengthMismatch)
}

// TestResidualProfile_RendersPNG checks the drift figure.
func TestResidualProfile_RendersPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plot.ResidualProfile(&buf, "drift", syntheticTrace(50)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngHeader))

	assert.ErrorIs(t, plot.ResidualProfile(&buf, "drift", syntheticTrace(1)), plot.ErrTooFewPoints)
}

// TestSweepSummary_SkipsFailed verifies failed runs drop out of the series.
func TestSweepSummary_SkipsFailed(t *testing.T) {
	params := []float64{0, 25, 50, 75}
	recs := []sweep.RunRecord{
		{ID: "1", Name: "b=0", Result: &anec.Result{Integral: -0.04}},
		{ID: "2", Name: "b=25", Result: &anec.Result{Integral: -0.03}},
		{ID: "3", Name: "b=50", Error: "diverged"},
		{ID: "4", Name: "b=75", Result: &anec.Result{Integral: -0.01}},
	}

	var buf bytes.Buffer
	require.NoError(t, plot.SweepSummary(&buf, "impact sweep", "b", params, recs))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngHeader))

	assert.ErrorIs(t, plot.SweepSummary(&buf, "x", "b", params[:2], recs), plot.ErrLengthMismatch)

	// All-failed sweeps cannot form a series.
	failed := []sweep.RunRecord{{Error: "a"}, {Error: "b"}}
	assert.ErrorIs(t, plot.SweepSummary(&buf, "x", "b", []float64{0, 1}, failed), plot.ErrTooFewPoints)
}
