// SPDX-License-Identifier: MIT
// Package tensor: dense kernels at fixed dimension 4.
// All routines operate on value copies; operands are never mutated.

package tensor

import "math"

// IsFinite reports whether every entry of v is finite.
func (v Vec4) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// IsFinite reports whether every entry of m is finite.
func (m Matrix4) IsFinite() bool {
	for i := 0; i < Dim; i++ {
		if !Vec4(m[i]).IsFinite() {
			return false
		}
	}
	return true
}

// IsSymmetric reports whether m equals its transpose within eps.
func (m Matrix4) IsSymmetric(eps float64) bool {
	for i := 0; i < Dim; i++ {
		for j := i + 1; j < Dim; j++ {
			if math.Abs(m[i][j]-m[j][i]) > eps {
				return false
			}
		}
	}
	return true
}

// CheckSymmetric returns ErrAsymmetry when m violates symmetry beyond eps,
// and ErrNaNInf when m carries non-finite entries. Validation order: finite
// entries first, then symmetry.
func (m Matrix4) CheckSymmetric(eps float64) error {
	if !m.IsFinite() {
		return ErrNaNInf
	}
	if !m.IsSymmetric(eps) {
		return ErrAsymmetry
	}
	return nil
}

// Add returns m + o.
func (m Matrix4) Add(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			r[i][j] = m[i][j] + o[i][j]
		}
	}
	return r
}

// Sub returns m − o.
func (m Matrix4) Sub(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			r[i][j] = m[i][j] - o[i][j]
		}
	}
	return r
}

// Scale returns alpha·m.
func (m Matrix4) Scale(alpha float64) Matrix4 {
	var r Matrix4
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			r[i][j] = alpha * m[i][j]
		}
	}
	return r
}

// MatVec returns the contraction m[i][j]·v[j] over the second index.
func (m Matrix4) MatVec(v Vec4) Vec4 {
	var r Vec4
	for i := 0; i < Dim; i++ {
		s := 0.0
		for j := 0; j < Dim; j++ {
			s += m[i][j] * v[j]
		}
		r[i] = s
	}
	return r
}

// Contract returns the bilinear form u^μ m_{μν} v^ν. With m a metric and
// u = v = k a tangent vector, this is the causal residual g_{μν}k^μk^ν.
func (m Matrix4) Contract(u, v Vec4) float64 {
	s := 0.0
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			s += u[i] * m[i][j] * v[j]
		}
	}
	return s
}

// Det returns the determinant of m via Gaussian elimination with partial
// pivoting on a scratch copy. Deterministic pivot choice (largest absolute
// value, lowest row index on ties).
func (m Matrix4) Det() float64 {
	a := m
	det := 1.0
	for col := 0; col < Dim; col++ {
		piv := col
		for r := col + 1; r < Dim; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[piv][col]) {
				piv = r
			}
		}
		if a[piv][col] == 0 {
			return 0
		}
		if piv != col {
			a[piv], a[col] = a[col], a[piv]
			det = -det
		}
		det *= a[col][col]
		for r := col + 1; r < Dim; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < Dim; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}
	return det
}

// Inverse returns m⁻¹ via Gauss–Jordan elimination with partial pivoting.
// When |det m| < detTol the tensor is treated as numerically singular and
// ErrSingular is returned — never a silent NaN-filled result.
func (m Matrix4) Inverse(detTol float64) (Matrix4, error) {
	if !m.IsFinite() {
		return Matrix4{}, ErrNaNInf
	}
	if math.Abs(m.Det()) < detTol {
		return Matrix4{}, ErrSingular
	}

	a := m
	inv := Identity()
	for col := 0; col < Dim; col++ {
		piv := col
		for r := col + 1; r < Dim; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[piv][col]) {
				piv = r
			}
		}
		// The determinant guard above makes a vanishing pivot unreachable for
		// well-scaled metrics, but a pathological scale split could still
		// produce one; surface it as the same sentinel.
		if a[piv][col] == 0 {
			return Matrix4{}, ErrSingular
		}
		if piv != col {
			a[piv], a[col] = a[col], a[piv]
			inv[piv], inv[col] = inv[col], inv[piv]
		}
		p := a[col][col]
		for c := 0; c < Dim; c++ {
			a[col][c] /= p
			inv[col][c] /= p
		}
		for r := 0; r < Dim; r++ {
			if r == col {
				continue
			}
			f := a[r][col]
			if f == 0 {
				continue
			}
			for c := 0; c < Dim; c++ {
				a[r][c] -= f * a[col][c]
				inv[r][c] -= f * inv[col][c]
			}
		}
	}
	return inv, nil
}

// Add returns v + o.
func (v Vec4) Add(o Vec4) Vec4 {
	var r Vec4
	for i := 0; i < Dim; i++ {
		r[i] = v[i] + o[i]
	}
	return r
}

// Scale returns alpha·v.
func (v Vec4) Scale(alpha float64) Vec4 {
	var r Vec4
	for i := 0; i < Dim; i++ {
		r[i] = alpha * v[i]
	}
	return r
}
