// SPDX-License-Identifier: MIT
// Package subspace - SimilarityScorer: scalar similarity measures and
// dimension counts derived from the principal angles.

package subspace

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SimilarityYamaguchi returns the smallest principal angle (Yamaguchi et al.).
// Subspaces are similar when it is near zero.
func SimilarityYamaguchi(x, y mat.Matrix, n int, opts ...Option) (float64, error) {
	a, err := principalAngles(gatherOptions(opts...), x, y, n)
	if err != nil {
		return 0, subspaceErrorf(opSimilarityYama, err)
	}

	return floats.Min(a.Theta), nil
}

// SimilarityWolf returns ∏ᵢ cos²θᵢ over all principal angles (Wolf & Shashua).
// The value lies in [0, 1]: 1 iff the subspaces coincide, 0 iff some
// principal direction of one is orthogonal to the other.
func SimilarityWolf(x, y mat.Matrix, n int, opts ...Option) (float64, error) {
	a, err := principalAngles(gatherOptions(opts...), x, y, n)
	if err != nil {
		return 0, subspaceErrorf(opSimilarityWolf, err)
	}

	similarity := 1.0
	var c float64
	for _, theta := range a.Theta {
		c = math.Cos(theta)
		similarity *= c * c
	}

	return similarity, nil
}

// Intersection returns rank([U | V]) for the aligned principal bases.
//
// Note: U spans X and V spans Y, so this is dim(span X + span Y), the
// dimension of the joint span, not of the intersection. For the latter use
// IntersectionDim; the two are related by
// Intersection = kx + ky − IntersectionDim for full-rank bases.
func Intersection(x, y mat.Matrix, n int, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	a, err := principalAngles(o, x, y, n)
	if err != nil {
		return 0, subspaceErrorf(opIntersection, err)
	}
	var uv mat.Dense
	uv.Augment(a.U, a.V)
	r, err := o.backend.Rank(&uv)
	if err != nil {
		return 0, subspaceErrorf(opIntersection, err)
	}

	return r, nil
}

// IntersectionDim returns dim(span X ∩ span Y): the number of principal
// angles θ with 1 − cos θ ≤ eps (see WithEpsilon).
func IntersectionDim(x, y mat.Matrix, n int, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	a, err := principalAngles(o, x, y, n)
	if err != nil {
		return 0, subspaceErrorf(opIntersectionDim, err)
	}
	var dim int
	for _, theta := range a.Theta {
		if 1-math.Cos(theta) <= o.eps {
			dim++
		}
	}

	return dim, nil
}
