// SPDX-License-Identifier: MIT
// Package subspace - AngleSolver: principal angles via QR+SVD, and the
// extremal (minimal/maximal) angles between two subspaces.

package subspace

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Angles is the principal-angle set of two subspaces.
//   - Theta holds min(kx, ky) angles in radians, ascending.
//   - U (n×kx) is an orthonormal basis of span(X), V (n×ky) of span(Y).
//   - For i < len(Theta), cos Theta[i] = U[:,i]ᵀ·V[:,i]: column i of U and V
//     is the pair of unit vectors realizing the i-th angle.
type Angles struct {
	Theta []float64
	U     *mat.Dense
	V     *mat.Dense
}

// PrincipalAngles returns the principal angles between span(x) and span(y)
// together with the aligned principal vectors.
// MAIN DESCRIPTION:
//   - Orthonormalize both bases, take the SVD of their cross-Gram matrix, and
//     read the angles off the singular values (cosines).
//
// Implementation:
//   - Stage 1: validate n and both bases; thin QR → QX (n×kx), QY (n×ky).
//   - Stage 2: the wider basis is the first operand:
//     kx ≥ ky: C = QXᵀ·QY = M·Σ·Nᵀ, U = QX·M, V = QY·N;
//     kx < ky: C = QYᵀ·QX = M·Σ·Nᵀ, U = QX·N, V = QY·M.
//   - Stage 3: θᵢ = arccos(clamp(σᵢ, −1, 1)); σ non-increasing ⇒ θ ascending.
//
// Behavior highlights:
//   - U always spans X and V always spans Y, whichever branch runs.
//   - Clamping keeps rounding overshoot (σ slightly above 1) from producing NaN.
//
// Errors:
//   - ErrBadDimension, ErrNilMatrix, ErrDimensionMismatch, linalg.ErrShape
//     (a basis with more columns than rows), backend errors.
//
// Complexity:
//   - Time O(n·(kx² + ky²) + kx·ky·n), Space O(n·(kx+ky)).
func PrincipalAngles(x, y mat.Matrix, n int, opts ...Option) (Angles, error) {
	return principalAngles(gatherOptions(opts...), x, y, n)
}

func principalAngles(o Options, x, y mat.Matrix, n int) (Angles, error) {
	if err := validateAmbient(n, x, y); err != nil {
		return Angles{}, subspaceErrorf(opPrincipalAngles, err)
	}
	qx, _, err := o.backend.QR(x)
	if err != nil {
		return Angles{}, subspaceErrorf(opPrincipalAngles, err)
	}
	qy, _, err := o.backend.QR(y)
	if err != nil {
		return Angles{}, subspaceErrorf(opPrincipalAngles, err)
	}
	_, kx := qx.Dims()
	_, ky := qy.Dims()
	wideX := kx >= ky

	var c mat.Dense
	if wideX {
		c.Mul(qx.T(), qy)
	} else {
		c.Mul(qy.T(), qx)
	}
	m, cos, nt, err := o.backend.SVD(&c)
	if err != nil {
		return Angles{}, subspaceErrorf(opPrincipalAngles, err)
	}

	u := new(mat.Dense)
	v := new(mat.Dense)
	if wideX {
		u.Mul(qx, m)
		v.Mul(qy, nt.T())
	} else {
		u.Mul(qx, nt.T())
		v.Mul(qy, m)
	}

	theta := make([]float64, len(cos))
	for i, s := range cos {
		theta[i] = math.Acos(clampUnit(s))
	}

	return Angles{Theta: theta, U: u, V: v}, nil
}

// MinAngle returns the smallest angle between any unit vector of span(x)
// and any unit vector of span(y): arccos ‖P₁·P₂‖₂.
// Subspaces sharing a direction have MinAngle 0.
//
// Errors: as Project, plus backend norm errors.
// Complexity: O(n³).
func MinAngle(x, y mat.Matrix, n int, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	p1, err := project(o, x, n)
	if err != nil {
		return 0, subspaceErrorf(opMinAngle, err)
	}
	p2, err := project(o, y, n)
	if err != nil {
		return 0, subspaceErrorf(opMinAngle, err)
	}
	var prod mat.Dense
	prod.Mul(p1.P, p2.P)
	nrm, err := norm2(o, &prod, opMinAngle)
	if err != nil {
		return 0, err
	}

	return math.Acos(clampUnit(nrm)), nil
}

// MaxAngle returns arcsin of the definition distance: the largest principal
// angle for equal-dimension subspaces. Unequal ranks give π/2.
//
// Errors: as Distance.
func MaxAngle(x, y mat.Matrix, n int, opts ...Option) (float64, error) {
	d, err := distance(gatherOptions(opts...), x, y, n, MethodDefinition)
	if err != nil {
		return 0, subspaceErrorf(opMaxAngle, err)
	}

	return math.Asin(clampUnit(d)), nil
}
