// SPDX-License-Identifier: MIT
// Package subspace - SubspaceMetrics: gap/distance functions between subspaces
// and the Eckart–Young low-rank distance.

package subspace

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMethod selects the formula used by Distance.
type DistanceMethod string

const (
	// MethodDefinition computes ‖P₁ − P₂‖₂ from both projectors.
	MethodDefinition DistanceMethod = "definition"

	// MethodComplement computes ‖Xᵀ·P₂⊥‖₂. Any value other than
	// MethodDefinition selects this formula.
	MethodComplement DistanceMethod = "complement"
)

// UnequalRankDistance is the distance reported between subspaces of
// different dimension: they are maximally far apart.
const UnequalRankDistance = 1.0

// Distance returns the gap between span(x) and span(y) in ℝⁿ.
// MAIN DESCRIPTION:
//   - Subspaces of unequal rank are at distance exactly 1.
//   - MethodDefinition: ‖P₁ − P₂‖₂ with P₁, P₂ the orthogonal projectors.
//   - Any other method: ‖Xᵀ·C‖₂ with C = P₂⊥·Iₙ = P₂⊥, the projector onto
//     the complement of span(y). This equals the definition distance when x
//     has orthonormal columns.
//
// Implementation:
//   - Stage 1: validate n and both bases (n rows each).
//   - Stage 2: compare numerical ranks; short-circuit to 1 when they differ.
//   - Stage 3: assemble the projector(s) and take the spectral norm.
//
// Returns:
//   - float64 in [0, 1] for orthonormal bases; 0 iff the spans coincide.
//
// Errors:
//   - ErrBadDimension, ErrNilMatrix, ErrDimensionMismatch, backend errors.
//
// Complexity:
//   - Time O(n³) (projectors + SVD of an n×n matrix), Space O(n²).
func Distance(x, y mat.Matrix, n int, method DistanceMethod, opts ...Option) (float64, error) {
	return distance(gatherOptions(opts...), x, y, n, method)
}

func distance(o Options, x, y mat.Matrix, n int, method DistanceMethod) (float64, error) {
	if err := validateAmbient(n, x, y); err != nil {
		return 0, subspaceErrorf(opDistance, err)
	}
	rx, err := o.backend.Rank(x)
	if err != nil {
		return 0, subspaceErrorf(opDistance, err)
	}
	ry, err := o.backend.Rank(y)
	if err != nil {
		return 0, subspaceErrorf(opDistance, err)
	}
	if rx != ry {
		o.logger.Debug().Int("rank_x", rx).Int("rank_y", ry).
			Msg("subspace: unequal ranks, distance is 1")
		return UnequalRankDistance, nil
	}

	if method == MethodDefinition {
		p1, err := project(o, x, n)
		if err != nil {
			return 0, subspaceErrorf(opDistance, err)
		}
		p2, err := project(o, y, n)
		if err != nil {
			return 0, subspaceErrorf(opDistance, err)
		}
		var diff mat.Dense
		diff.Sub(p1.P, p2.P)

		return norm2(o, &diff, opDistance)
	}

	p2, err := project(o, y, n)
	if err != nil {
		return 0, subspaceErrorf(opDistance, err)
	}
	var xc mat.Dense
	xc.Mul(x.T(), p2.Complement) // P₂⊥·Iₙ is P₂⊥

	return norm2(o, &xc, opDistance)
}

// HausdorffDistance returns √(max(rank X, rank Y) − Σᵢⱼ (xᵢᵀyⱼ)²).
// Both bases must have full column rank. For orthonormal bases the sum is
// ‖XᵀY‖²_F = Σ cos²θᵢ, and the result is the chordal distance padded by the
// dimension difference. A negative radicand (non-orthonormal input or
// rounding) is clamped to 0.
//
// Errors:
//   - ErrRankDeficient when either basis is rank-deficient.
//   - ErrBadDimension, ErrNilMatrix, ErrDimensionMismatch, backend errors.
func HausdorffDistance(x, y mat.Matrix, n int, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	inner, rx, ry, err := innerSquares(o, x, y, n)
	if err != nil {
		return 0, subspaceErrorf(opHausdorff, err)
	}

	radicand := float64(max(rx, ry)) - inner
	if radicand < 0 {
		o.logger.Warn().Float64("radicand", radicand).
			Msg("subspace: negative Hausdorff radicand clamped to 0")
		radicand = 0
	}

	return math.Sqrt(radicand), nil
}

// KernelDistance returns √(Σᵢⱼ (xᵢᵀyⱼ)²), the inner-product (projection
// kernel) measure between the bases. Both bases must have full column rank.
//
// Errors:
//   - ErrRankDeficient when either basis is rank-deficient.
//   - ErrBadDimension, ErrNilMatrix, ErrDimensionMismatch, backend errors.
func KernelDistance(x, y mat.Matrix, n int, opts ...Option) (float64, error) {
	inner, _, _, err := innerSquares(gatherOptions(opts...), x, y, n)
	if err != nil {
		return 0, subspaceErrorf(opKernel, err)
	}

	return math.Sqrt(inner), nil
}

// innerSquares validates full column rank of both bases and accumulates
// Σᵢ Σⱼ (xᵢᵀyⱼ)² over every column pair.
// Implementation:
//   - Stage 1: validate n and shapes; compute both ranks.
//   - Stage 2: reject when x OR y is rank-deficient.
//   - Stage 3: one accumulator over the double loop, columns of y extracted once.
//
// Complexity:
//   - Time O(kx·ky·n) plus two rank SVDs, Space O(ky·n).
func innerSquares(o Options, x, y mat.Matrix, n int) (inner float64, rx, ry int, err error) {
	if err = validateAmbient(n, x, y); err != nil {
		return 0, 0, 0, err
	}
	if rx, err = o.backend.Rank(x); err != nil {
		return 0, 0, 0, err
	}
	if ry, err = o.backend.Rank(y); err != nil {
		return 0, 0, 0, err
	}
	_, kx := x.Dims()
	_, ky := y.Dims()
	if rx != kx || ry != ky {
		o.logger.Warn().Int("rank_x", rx).Int("cols_x", kx).Int("rank_y", ry).Int("cols_y", ky).
			Msg("subspace: rank-deficient basis rejected")
		return 0, 0, 0, ErrRankDeficient
	}

	ycols := make([][]float64, ky)
	var i, j int
	for j = 0; j < ky; j++ {
		ycols[j] = mat.Col(nil, j, y)
	}
	xcol := make([]float64, n)
	var d float64
	for i = 0; i < kx; i++ {
		mat.Col(xcol, i, x)
		for j = 0; j < ky; j++ {
			d = floats.Dot(xcol, ycols[j])
			inner += d * d
		}
	}

	return inner, rx, ry, nil
}

// LowRankDistance returns the spectral-norm distance from a to its best
// rank-k approximation, which by Eckart–Young is the (k+1)-th largest
// singular value σₖ (zero-based).
//
// Errors:
//   - ErrInvalidRankTarget when k < 0 or k ≥ rank(a).
//   - ErrNilMatrix, linalg.ErrShape, backend errors.
//
// Complexity: one SVD for the rank, one for the values.
func LowRankDistance(a mat.Matrix, k int, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	r, err := o.backend.Rank(a)
	if err != nil {
		return 0, subspaceErrorf(opLowRank, err)
	}
	if k < 0 || k >= r {
		o.logger.Warn().Int("k", k).Int("rank", r).Msg("subspace: invalid lower-rank target")
		return 0, subspaceErrorf(opLowRank, ErrInvalidRankTarget)
	}
	s, err := o.backend.SingularValues(a)
	if err != nil {
		return 0, subspaceErrorf(opLowRank, err)
	}

	return s[k], nil
}

// norm2 is the spectral norm through the configured backend, wrapped with tag.
func norm2(o Options, a mat.Matrix, tag string) (float64, error) {
	v, err := o.backend.Norm2(a)
	if err != nil {
		return 0, subspaceErrorf(tag, err)
	}

	return v, nil
}
