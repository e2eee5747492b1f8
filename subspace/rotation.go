// SPDX-License-Identifier: MIT
// Package subspace - RotationAligner: the orthogonal Procrustes problem.

package subspace

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspace/linalg"
)

// RotationMeasure returns the orthogonal Q minimizing ‖A − B·Q‖ (orthogonal
// Procrustes). A and B must share a shape m×k; Q is k×k.
// Implementation:
//   - Stage 1: validate both operands and their shapes.
//   - Stage 2: C = Bᵀ·A; SVD C = U·Σ·Vᵀ.
//   - Stage 3: Q = U·Vᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, backend errors.
//
// Complexity:
//   - Time O(m·k² + k³), Space O(k²).
func RotationMeasure(a, b mat.Matrix, opts ...Option) (*mat.Dense, error) {
	return rotation(gatherOptions(opts...), a, b, opRotationMeasure)
}

// RotationResidual returns ‖A − B·Q‖₂ for the optimal rotation Q: how close
// B can be brought to A by rotation alone.
func RotationResidual(a, b mat.Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	q, err := rotation(o, a, b, opRotationResidual)
	if err != nil {
		return 0, err
	}
	var bq, diff mat.Dense
	bq.Mul(b, q)
	diff.Sub(a, &bq)

	return norm2(o, &diff, opRotationResidual)
}

func rotation(o Options, a, b mat.Matrix, tag string) (*mat.Dense, error) {
	if err := linalg.ValidateNonEmpty(a); err != nil {
		return nil, subspaceErrorf(tag, err)
	}
	if err := linalg.ValidateNonEmpty(b); err != nil {
		return nil, subspaceErrorf(tag, err)
	}
	if err := linalg.ValidateSameShape(a, b); err != nil {
		return nil, subspaceErrorf(tag, err)
	}

	var c mat.Dense
	c.Mul(b.T(), a)
	u, _, vt, err := o.backend.SVD(&c)
	if err != nil {
		return nil, subspaceErrorf(tag, err)
	}
	q := new(mat.Dense)
	q.Mul(u, vt)

	return q, nil
}
