// SPDX-License-Identifier: MIT

package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// Gonum is the default Backend, delegating every factorization to
// gonum.org/v1/gonum/mat.
//
// RankTol, when positive, replaces the default relative rank tolerance with an
// absolute threshold.
type Gonum struct {
	RankTol float64
}

var _ Backend = Gonum{}

// QR returns the thin QR factorization of a tall matrix.
// Implementation:
//   - Stage 1: validate a is non-empty with rows ≥ cols.
//   - Stage 2: mat.QR.Factorize; extract the full Q (m×m) and R (m×k).
//   - Stage 3: copy out the leading m×k block of Q and k×k block of R.
//
// Errors:
//   - ErrNilMatrix, ErrShape.
//
// Complexity:
//   - Time O(m²k), Space O(m²).
func (g Gonum) QR(a mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := ValidateTall(a); err != nil {
		return nil, nil, backendErrorf(opQR, err)
	}
	m, k := a.Dims()

	var qr mat.QR
	qr.Factorize(a)

	var qFull, rFull mat.Dense
	qr.QTo(&qFull)
	qr.RTo(&rFull)

	q := mat.DenseCopyOf(qFull.Slice(0, m, 0, k))
	r := mat.DenseCopyOf(rFull.Slice(0, k, 0, k))

	return q, r, nil
}

// SVD returns the full singular value decomposition a = u·diag(s)·vt.
// Errors: ErrNilMatrix, ErrShape, ErrNoConvergence.
// Complexity: O(m·k·min(m,k)) plus full-basis assembly.
func (g Gonum) SVD(a mat.Matrix) (*mat.Dense, []float64, *mat.Dense, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, nil, nil, backendErrorf(opSVD, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFull); !ok {
		return nil, nil, nil, backendErrorf(opSVD, ErrNoConvergence)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	vt := mat.DenseCopyOf(v.T())

	return &u, svd.Values(nil), vt, nil
}

// SingularValues returns the singular values of a without forming vectors.
func (g Gonum) SingularValues(a mat.Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, backendErrorf(opSingularValues, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return nil, backendErrorf(opSingularValues, ErrNoConvergence)
	}

	return svd.Values(nil), nil
}

// Rank returns the numerical rank of a (see RankFromValues for the policy).
func (g Gonum) Rank(a mat.Matrix) (int, error) {
	s, err := g.SingularValues(a)
	if err != nil {
		return 0, backendErrorf(opRank, err)
	}
	r, c := a.Dims()

	return RankFromValues(s, r, c, g.RankTol), nil
}

// Norm2 returns the spectral norm of a.
// mat.Norm(a, 2) is the Frobenius norm for matrices, so the largest singular
// value is taken explicitly.
func (g Gonum) Norm2(a mat.Matrix) (float64, error) {
	s, err := g.SingularValues(a)
	if err != nil {
		return 0, backendErrorf(opNorm2, err)
	}

	return normFromValues(s), nil
}

// Project returns the orthogonal projector pair for span(x) in ℝⁿ.
func (g Gonum) Project(x mat.Matrix, n int) (*mat.Dense, *mat.Dense, error) {
	return projectWith(g, x, n)
}
