package geodesic

import (
	"math"

	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/tensor"
)

// NullTangent turns a spatial 3-direction at p into a future-directed null
// 4-tangent under m's causal structure. The direction is normalized to unit
// Euclidean length, then k^t solves the null condition
//
//	g_tt (k^t)² + 2 g_ti n^i k^t + g_ij n^i n^j = 0
//
// and the future-directed root (k^t > 0) is selected. For a Lorentzian
// metric with g_tt < 0 exactly one such root exists; if none does the
// metric is not Lorentzian at p and ErrNoNullRoot is returned.
func NullTangent(m metric.Metric, p tensor.Coordinate, dir [3]float64) (tensor.Vec4, error) {
	if m == nil {
		return tensor.Vec4{}, ErrNilMetric
	}
	norm := math.Sqrt(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return tensor.Vec4{}, ErrZeroDirection
	}
	n := [3]float64{dir[0] / norm, dir[1] / norm, dir[2] / norm}

	g := m.Evaluate(p)
	a := g[tensor.T][tensor.T]
	b := 0.0
	c := 0.0
	for i := 0; i < 3; i++ {
		b += 2 * g[tensor.T][i+1] * n[i]
		for j := 0; j < 3; j++ {
			c += g[i+1][j+1] * n[i] * n[j]
		}
	}

	kt, ok := positiveRoot(a, b, c)
	if !ok {
		return tensor.Vec4{}, ErrNoNullRoot
	}
	return tensor.Vec4{kt, n[0], n[1], n[2]}, nil
}

// positiveRoot solves a·x² + b·x + c = 0 for the smallest strictly positive
// real root. Degenerate a ≈ 0 falls back to the linear case.
func positiveRoot(a, b, c float64) (float64, bool) {
	const tiny = 1e-300
	if math.Abs(a) < tiny {
		if b == 0 {
			return 0, false
		}
		x := -c / b
		return x, x > 0
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	x1 := (-b + sq) / (2 * a)
	x2 := (-b - sq) / (2 * a)
	switch {
	case x1 > 0 && x2 > 0:
		return math.Min(x1, x2), true
	case x1 > 0:
		return x1, true
	case x2 > 0:
		return x2, true
	default:
		return 0, false
	}
}
