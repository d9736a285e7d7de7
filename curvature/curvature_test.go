package curvature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullcone/anecprobe/curvature"
	"github.com/nullcone/anecprobe/geodesic"
	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/tensor"
)

// TestRiemann_FlatIsExactlyZero: every difference in the chain sees a
// constant tensor, so flat space produces exact zeros, not merely small
// numbers.
func TestRiemann_FlatIsExactlyZero(t *testing.T) {
	riem, err := curvature.Riemann(metric.Minkowski{}, tensor.Coordinate{3, -7, 1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Rank4{}, riem)

	g, err := curvature.Einstein(metric.Minkowski{}, tensor.Coordinate{}, nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Matrix4{}, g)

	s, err := curvature.Scalar(metric.Minkowski{}, tensor.Coordinate{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)
}

// TestRiemann_Validation covers nil metric and bad steps.
func TestRiemann_Validation(t *testing.T) {
	_, err := curvature.Riemann(nil, tensor.Coordinate{}, nil)
	assert.ErrorIs(t, err, geodesic.ErrNilMetric)

	opts := curvature.DefaultOptions()
	opts.FDStep = 0
	_, err = curvature.Riemann(metric.Minkowski{}, tensor.Coordinate{}, &opts)
	assert.ErrorIs(t, err, geodesic.ErrBadTolerance)

	_, err = curvature.NewEinsteinStress(nil, nil)
	assert.ErrorIs(t, err, geodesic.ErrNilMetric)
}

// TestRicci_WallSymmetry verifies the Ricci tensor is symmetric within the
// finite-difference noise budget in the curved wall region.
func TestRicci_WallSymmetry(t *testing.T) {
	m, err := metric.NewAlcubierre(1.0, 100, 10)
	require.NoError(t, err)

	p := tensor.Coordinate{0, -100, 30, 0}
	ric, err := curvature.Ricci(m, p, nil)
	require.NoError(t, err)

	for i := 0; i < tensor.Dim; i++ {
		for j := i + 1; j < tensor.Dim; j++ {
			assert.InDelta(t, ric[i][j], ric[j][i], 1e-5, "Ricci (%d,%d)", i, j)
		}
	}
}

// TestEinsteinStress_Profile verifies the stress model is non-trivial in
// the wall and negligible in the far field.
func TestEinsteinStress_Profile(t *testing.T) {
	m, err := metric.NewAlcubierre(1.0, 100, 10)
	require.NoError(t, err)
	stress, err := curvature.NewEinsteinStress(m, nil)
	require.NoError(t, err)

	wall, err := stress.Stress(tensor.Coordinate{0, -100, 0, 0})
	require.NoError(t, err)
	maxWall := 0.0
	for i := 0; i < tensor.Dim; i++ {
		for j := 0; j < tensor.Dim; j++ {
			if v := math.Abs(wall[i][j]); v > maxWall {
				maxWall = v
			}
		}
	}
	assert.Greater(t, maxWall, 1e-8, "wall must carry stress-energy")

	far, err := stress.Stress(tensor.Coordinate{0, -500, 0, 0})
	require.NoError(t, err)
	for i := 0; i < tensor.Dim; i++ {
		for j := 0; j < tensor.Dim; j++ {
			assert.InDelta(t, 0.0, far[i][j], 1e-6, "far field (%d,%d)", i, j)
		}
	}
}

// TestEinsteinStress_SingularPropagates verifies the sentinel travels
// through the whole chain.
func TestEinsteinStress_SingularPropagates(t *testing.T) {
	degenerate := metric.Func(func(tensor.Coordinate) tensor.Matrix4 {
		return tensor.Matrix4{}
	})
	stress, err := curvature.NewEinsteinStress(degenerate, nil)
	require.NoError(t, err)
	_, err = stress.Stress(tensor.Coordinate{})
	assert.ErrorIs(t, err, geodesic.ErrSingularMetric)
}

// TestEinsteinStress_Deterministic: pure chain, identical outputs.
func TestEinsteinStress_Deterministic(t *testing.T) {
	m, err := metric.NewAlcubierre(1.0, 100, 10)
	require.NoError(t, err)
	stress, err := curvature.NewEinsteinStress(m, nil)
	require.NoError(t, err)

	p := tensor.Coordinate{5, -95, 10, -10}
	a, err := stress.Stress(p)
	require.NoError(t, err)
	b, err := stress.Stress(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
