package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullcone/anecprobe/tensor"
)

const detTol = 1e-12

// TestMinkowski_Signature verifies the module-wide mostly-plus convention.
func TestMinkowski_Signature(t *testing.T) {
	g := tensor.Minkowski()
	assert.Equal(t, -1.0, g[tensor.T][tensor.T], "g_tt must be −1")
	assert.Equal(t, 1.0, g[tensor.X][tensor.X])
	assert.Equal(t, 1.0, g[tensor.Y][tensor.Y])
	assert.Equal(t, 1.0, g[tensor.Z][tensor.Z])
	assert.True(t, g.IsSymmetric(0), "flat metric is exactly symmetric")
}

// TestMatrix4_IsSymmetric exercises the eps boundary in both directions.
func TestMatrix4_IsSymmetric(t *testing.T) {
	g := tensor.Minkowski()
	g[tensor.T][tensor.X] = 0.5
	g[tensor.X][tensor.T] = 0.5 + 1e-9

	assert.True(t, g.IsSymmetric(1e-8), "skew below eps should pass")
	assert.False(t, g.IsSymmetric(1e-10), "skew above eps should fail")
	assert.ErrorIs(t, g.CheckSymmetric(1e-10), tensor.ErrAsymmetry)
}

// TestMatrix4_CheckSymmetric_NaN verifies the finite-entries gate fires
// before the symmetry check.
func TestMatrix4_CheckSymmetric_NaN(t *testing.T) {
	g := tensor.Minkowski()
	g[tensor.Y][tensor.Z] = math.NaN()
	assert.ErrorIs(t, g.CheckSymmetric(1e-8), tensor.ErrNaNInf)
}

// TestMatrix4_Det_KnownValues checks determinants with hand-computable
// answers.
func TestMatrix4_Det_KnownValues(t *testing.T) {
	assert.InDelta(t, -1.0, tensor.Minkowski().Det(), 1e-15, "det η = −1")
	assert.InDelta(t, 1.0, tensor.Identity().Det(), 1e-15)

	var singular tensor.Matrix4 // rank deficient: two equal rows
	singular[0] = [4]float64{1, 2, 3, 4}
	singular[1] = [4]float64{1, 2, 3, 4}
	singular[2] = [4]float64{0, 0, 1, 0}
	singular[3] = [4]float64{0, 0, 0, 1}
	assert.InDelta(t, 0.0, singular.Det(), 1e-15)
}

// TestMatrix4_Inverse_RoundTrip verifies m·m⁻¹ = I for a non-trivial
// well-conditioned tensor.
func TestMatrix4_Inverse_RoundTrip(t *testing.T) {
	g := tensor.Minkowski()
	g[tensor.T][tensor.X] = -0.3
	g[tensor.X][tensor.T] = -0.3
	g[tensor.T][tensor.T] = -0.91 // Alcubierre-like g_tt = −(1 − v²f²)

	inv, err := g.Inverse(detTol)
	require.NoError(t, err)

	// Product against identity, entrywise.
	for i := 0; i < tensor.Dim; i++ {
		for j := 0; j < tensor.Dim; j++ {
			s := 0.0
			for k := 0; k < tensor.Dim; k++ {
				s += g[i][k] * inv[k][j]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, s, 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

// TestMatrix4_Inverse_Singular verifies the sentinel, not NaN propagation.
func TestMatrix4_Inverse_Singular(t *testing.T) {
	var m tensor.Matrix4 // zero tensor
	_, err := m.Inverse(detTol)
	assert.ErrorIs(t, err, tensor.ErrSingular)

	m = tensor.Identity()
	m[3][3] = 1e-15 // near-singular: det below threshold
	_, err = m.Inverse(1e-12)
	assert.ErrorIs(t, err, tensor.ErrSingular)
}

// TestMatrix4_Inverse_NaN verifies that non-finite inputs surface ErrNaNInf.
func TestMatrix4_Inverse_NaN(t *testing.T) {
	m := tensor.Identity()
	m[1][2] = math.Inf(1)
	_, err := m.Inverse(detTol)
	assert.ErrorIs(t, err, tensor.ErrNaNInf)
}

// TestMatrix4_Contract checks the bilinear form against a hand computation.
func TestMatrix4_Contract(t *testing.T) {
	g := tensor.Minkowski()
	k := tensor.Vec4{1, 1, 0, 0} // null in flat space
	assert.InDelta(t, 0.0, g.Contract(k, k), 1e-15, "flat null residual")

	u := tensor.Vec4{2, 0, 1, 0}
	assert.InDelta(t, -4+1, g.Contract(u, u), 1e-15, "−t² + y²")
}

// TestMatVec_AgainstContract cross-checks the two contraction kernels.
func TestMatVec_AgainstContract(t *testing.T) {
	g := tensor.Minkowski()
	g[tensor.T][tensor.X] = -0.5
	g[tensor.X][tensor.T] = -0.5
	u := tensor.Vec4{1, 2, 3, 4}
	v := tensor.Vec4{-1, 0.5, 0, 2}

	mv := g.MatVec(v)
	dot := 0.0
	for i := 0; i < tensor.Dim; i++ {
		dot += u[i] * mv[i]
	}
	assert.InDelta(t, g.Contract(u, v), dot, 1e-14)
}

// TestVec4_Arithmetic covers the RK4 building blocks.
func TestVec4_Arithmetic(t *testing.T) {
	v := tensor.Vec4{1, -2, 3, -4}
	assert.Equal(t, tensor.Vec4{2, -4, 6, -8}, v.Add(v))
	assert.Equal(t, tensor.Vec4{0.5, -1, 1.5, -2}, v.Scale(0.5))
	assert.True(t, v.IsFinite())
	v[2] = math.NaN()
	assert.False(t, v.IsFinite())
}
