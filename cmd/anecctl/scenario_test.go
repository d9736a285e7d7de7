package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/tensor"
)

// writeScenario drops YAML into a temp file and returns its path.
func writeScenario(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return path
}

const bubbleScenario = `
name: bubble-crossing
metric:
  family: alcubierre
  velocity: 1.0
  radius: 100
  wall: 10
start: [0, -200, 0, 0]
direction: [1, 0, 0]
lambda_max: 400
steps: 180
`

func TestLoadScenario_Bubble(t *testing.T) {
	sc, err := loadScenario(writeScenario(t, bubbleScenario))
	require.NoError(t, err)

	assert.Equal(t, "bubble-crossing", sc.Name)
	assert.Equal(t, "alcubierre", sc.Metric.Family)
	assert.Equal(t, [4]float64{0, -200, 0, 0}, sc.Start)
	assert.Equal(t, [3]float64{1, 0, 0}, sc.Direction)
	assert.Equal(t, 400.0, sc.LambdaMax)
	assert.Equal(t, 180, sc.Steps)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	_, err := loadScenario(writeScenario(t, "name: [unclosed"))
	assert.Error(t, err)
}

func TestLoadScenario_BothGrids(t *testing.T) {
	_, err := loadScenario(writeScenario(t, bubbleScenario+`
impacts: [0, 50]
alphas: [0.1]
`))
	assert.ErrorIs(t, err, errBothGrids)
}

func TestBuildMetric_Families(t *testing.T) {
	sc := &Scenario{Metric: MetricSpec{Family: "minkowski"}}
	m, err := sc.buildMetric()
	require.NoError(t, err)
	assert.Equal(t, tensor.Minkowski(), m.Evaluate(tensor.Coordinate{}))

	sc = &Scenario{Metric: MetricSpec{Family: "alcubierre", Velocity: 1, Radius: 100, Wall: 10}}
	m, err = sc.buildMetric()
	require.NoError(t, err)
	_, ok := m.(*metric.Alcubierre)
	assert.True(t, ok)

	sc = &Scenario{Metric: MetricSpec{
		Family: "pulsed", Velocity: 1, Radius: 100, Wall: 10,
		Window: &Window{T0: 50, T1: 150, Ramp: 5},
	}}
	m, err = sc.buildMetric()
	require.NoError(t, err)
	_, ok = m.(*metric.Pulsed)
	assert.True(t, ok)
}

func TestBuildMetric_PulsedNeedsWindow(t *testing.T) {
	sc := &Scenario{Metric: MetricSpec{Family: "pulsed", Velocity: 1, Radius: 100, Wall: 10}}
	_, err := sc.buildMetric()
	assert.ErrorIs(t, err, errNeedsWindow)
}

func TestBuildMetric_UnknownFamily(t *testing.T) {
	sc := &Scenario{Metric: MetricSpec{Family: "schwarzschild"}}
	_, err := sc.buildMetric()
	assert.ErrorIs(t, err, errUnknownFamily)
}

func TestBuildMetric_AlphaWrapsCorrection(t *testing.T) {
	sc := &Scenario{Metric: MetricSpec{Family: "minkowski", Alpha: 0.25}}
	m, err := sc.buildMetric()
	require.NoError(t, err)
	_, ok := m.(*metric.FRCorrected)
	assert.True(t, ok)

	// Flat base stays flat under the correction.
	assert.Equal(t, tensor.Minkowski(), m.Evaluate(tensor.Coordinate{1, 2, 3, 4}))
}

func TestBuildCases_SingleAndGrids(t *testing.T) {
	sc, err := loadScenario(writeScenario(t, bubbleScenario))
	require.NoError(t, err)

	cases, err := sc.buildCases()
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "bubble-crossing", cases[0].Name)
	assert.Equal(t, tensor.Coordinate{0, -200, 0, 0}, cases[0].Start)

	sc.Impacts = []float64{0, 50, 120}
	cases, err = sc.buildCases()
	require.NoError(t, err)
	assert.Len(t, cases, 3)

	sc.Impacts = nil
	sc.Alphas = []float64{0, 0.1, 0.2, 0.5}
	cases, err = sc.buildCases()
	require.NoError(t, err)
	assert.Len(t, cases, 4)
}

func TestSweepOptions_Mapping(t *testing.T) {
	sc, err := loadScenario(writeScenario(t, bubbleScenario+"causal_tol: 0.01\n"))
	require.NoError(t, err)

	opts := sc.sweepOptions(3)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, 180, opts.Geodesic.Steps)
	assert.Equal(t, 400.0, opts.Geodesic.LambdaMax)
	assert.Equal(t, 0.01, opts.ANEC.CausalTol)
}
