// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All kernels return these sentinels; tests match them via errors.Is.
// Panics are reserved for programmer errors, never for user input.

package tensor

import "errors"

var (
	// ErrSingular is returned when a tensor cannot be inverted because its
	// determinant (or an elimination pivot) falls below the singularity
	// threshold passed by the caller.
	ErrSingular = errors.New("tensor: singular tensor")

	// ErrAsymmetry signals that a tensor required to be symmetric violated
	// symmetry beyond the given eps.
	ErrAsymmetry = errors.New("tensor: tensor is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")
)
