// SPDX-License-Identifier: MIT
// Package linalg: the Backend capability set and the helpers shared by every
// implementation (rank policy, projector assembly, error wrapping).

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation tags for unified error wrapping.
const (
	opQR             = "QR"
	opSVD            = "SVD"
	opSingularValues = "SingularValues"
	opRank           = "Rank"
	opNorm2          = "Norm2"
	opProject        = "Project"
)

// epsilon is the float64 machine epsilon (2⁻⁵²) used by the default rank tolerance.
const epsilon = 0x1p-52

// Backend is the numerical primitive set consumed by the subspace package.
// Implementations must not mutate their inputs and must return freshly
// allocated results.
type Backend interface {
	// QR returns the thin factorization a = q·r of an m×k matrix with m ≥ k:
	// q is m×k with orthonormal columns, r is k×k upper triangular.
	QR(a mat.Matrix) (q, r *mat.Dense, err error)

	// SVD returns the full factorization a = u·diag(s)·vt of an m×k matrix:
	// u is m×m, vt is k×k (the transposed right singular vectors), and
	// s holds min(m,k) non-negative values in non-increasing order.
	SVD(a mat.Matrix) (u *mat.Dense, s []float64, vt *mat.Dense, err error)

	// SingularValues returns the min(m,k) singular values in non-increasing order.
	SingularValues(a mat.Matrix) ([]float64, error)

	// Rank returns the numerical rank of a.
	Rank(a mat.Matrix) (int, error)

	// Norm2 returns the spectral norm of a (its largest singular value).
	Norm2(a mat.Matrix) (float64, error)

	// Project returns the orthogonal projector p onto span(x) and its
	// complement pc = I − p, both n×n. x must have n rows and full column rank.
	Project(x mat.Matrix, n int) (p, pc *mat.Dense, err error)
}

// backendErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func backendErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RankFromValues counts singular values strictly above the rank tolerance.
// MAIN DESCRIPTION:
//   - Single source of truth for the numerical-rank policy of all backends.
//
// Implementation:
//   - Stage 1: choose tol: rankTol when positive, otherwise s[0]·max(rows,cols)·ε.
//   - Stage 2: count s[i] > tol (s is non-increasing, so stop at the first miss).
//
// Inputs:
//   - s: singular values, non-increasing.
//   - rows, cols: shape of the factored matrix.
//   - rankTol: absolute override; ≤ 0 selects the default.
//
// Complexity:
//   - Time O(len(s)), Space O(1).
func RankFromValues(s []float64, rows, cols int, rankTol float64) int {
	if len(s) == 0 {
		return 0
	}
	tol := rankTol
	if tol <= 0 {
		tol = s[0] * float64(max(rows, cols)) * epsilon
	}
	var r int
	for r = 0; r < len(s); r++ {
		if s[r] <= tol {
			break
		}
	}

	return r
}

// qrFactorizer is the slice of Backend needed to assemble projectors.
type qrFactorizer interface {
	QR(a mat.Matrix) (q, r *mat.Dense, err error)
}

// projectWith builds the projector pair from a thin QR of x.
// MAIN DESCRIPTION:
//   - P = Q·Qᵀ is symmetric idempotent with range span(Q) = span(x) for
//     full-column-rank x; P⊥ = I − P.
//
// Implementation:
//   - Stage 1: validate x (non-empty, tall) and n == rows(x).
//   - Stage 2: thin QR through the owning backend.
//   - Stage 3: P = Q·Qᵀ; P⊥ = I − P.
//
// Errors:
//   - ErrNilMatrix, ErrShape, ErrDimensionMismatch, or the QR error.
//
// Complexity:
//   - Time O(n²k) for the product plus the QR cost, Space O(n²).
func projectWith(b qrFactorizer, x mat.Matrix, n int) (*mat.Dense, *mat.Dense, error) {
	if err := ValidateTall(x); err != nil {
		return nil, nil, backendErrorf(opProject, err)
	}
	if err := ValidateRows(x, n); err != nil {
		return nil, nil, backendErrorf(opProject, err)
	}
	q, _, err := b.QR(x)
	if err != nil {
		return nil, nil, backendErrorf(opProject, err)
	}

	p := mat.NewDense(n, n, nil)
	p.Mul(q, q.T())

	pc := mat.NewDense(n, n, nil)
	var i int
	for i = 0; i < n; i++ {
		pc.Set(i, i, 1.0)
	}
	pc.Sub(pc, p)

	return p, pc, nil
}

// normFromValues returns the spectral norm from a non-increasing value list.
func normFromValues(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}

	return math.Abs(s[0])
}
