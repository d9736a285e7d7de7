// SPDX-License-Identifier: MIT
// Package tensor: core fixed-size types and index constants.

package tensor

// Coordinate index constants for the (t, x, y, z) ordering used everywhere
// in this module. Keep loops on these rather than magic integers.
const (
	T = iota
	X
	Y
	Z
)

// Dim is the spacetime dimension. All types in this package are sized by it.
const Dim = 4

// Coordinate is an event (t, x, y, z). No unit system is enforced; callers
// must keep their own units consistent across metric, initial data and
// affine range.
type Coordinate [Dim]float64

// Vec4 is a contravariant 4-vector, typically a geodesic tangent dx^μ/dλ.
type Vec4 [Dim]float64

// Matrix4 is a 4×4 real tensor, typically a metric g_{μν} or a
// stress-energy estimate T_{μν}. Symmetry is an invariant of the producers,
// checked (not silently enforced) via IsSymmetric.
type Matrix4 [Dim][Dim]float64

// Rank3 is a rank-3 array, indexed [λ][μ][ν] for connection coefficients
// Γ^λ_{μν} and [α][μ][ν] for metric partials ∂_α g_{μν}.
type Rank3 [Dim][Dim][Dim]float64

// Rank4 is a rank-4 array, indexed [ρ][σ][μ][ν] for the Riemann tensor
// R^ρ_{σμν}.
type Rank4 [Dim][Dim][Dim][Dim]float64

// Vec returns the coordinate as a plain 4-vector, useful when a coordinate
// displacement participates in vector arithmetic.
func (c Coordinate) Vec() Vec4 { return Vec4(c) }

// Minkowski returns the flat metric diag(−1, +1, +1, +1) in the module-wide
// mostly-plus signature.
func Minkowski() Matrix4 {
	var g Matrix4
	g[T][T] = -1
	g[X][X] = 1
	g[Y][Y] = 1
	g[Z][Z] = 1
	return g
}

// Identity returns the 4×4 identity matrix.
func Identity() Matrix4 {
	var m Matrix4
	for i := 0; i < Dim; i++ {
		m[i][i] = 1
	}
	return m
}
