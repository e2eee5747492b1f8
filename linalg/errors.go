// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// All backends MUST return these sentinels (optionally wrapped with an
// operation tag via backendErrorf) and tests MUST check them via errors.Is.
// No backend panics on user-triggered error conditions.

package linalg

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix argument was supplied.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrShape is returned when a matrix has an unusable shape for the
	// requested primitive (empty, or wide input to a thin QR).
	ErrShape = errors.New("linalg: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a basis whose row count differs from the ambient dimension.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNoConvergence indicates that an iterative factorization did not
	// converge (Jacobi sweep cap reached, or LAPACK reported failure).
	ErrNoConvergence = errors.New("linalg: factorization did not converge")
)
