// SPDX-License-Identifier: MIT

// Package linalg is the numerical boundary of lvspace: the small set of dense
// linear-algebra primitives every subspace computation reduces to.
//
// The Backend interface groups the capabilities the subspace package consumes:
//
//   - QR             — thin factorization A = Q·R with orthonormal-column Q.
//   - SVD            — full factorization A = U·Σ·Vᵀ, Σ sorted non-increasing.
//   - SingularValues — Σ alone, sorted non-increasing.
//   - Rank           — numerical rank from Σ under a tolerance.
//   - Norm2          — spectral norm (largest singular value).
//   - Project        — orthogonal projector onto span(X) and its complement.
//
// Two implementations ship with the package:
//
//	Gonum  — default; delegates to gonum.org/v1/gonum/mat (LAPACK-style kernels).
//	Native — pure-Go Householder QR and one-sided Jacobi SVD over flat
//	         row-major buffers; useful as an independent cross-check.
//
// Both are stateless value types, safe for concurrent use, and never mutate
// their inputs. Errors are sentinel values (see errors.go) matched with
// errors.Is.
//
// Rank tolerance:
//
//	tol = σ₀ · max(rows, cols) · ε   (ε = 2⁻⁵², the float64 machine epsilon)
//
// unless the backend's RankTol field is positive, in which case it is used as
// an absolute threshold. Rank counts singular values strictly above tol.
package linalg
