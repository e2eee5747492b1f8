// Package lvspace is a toolkit for measuring how linear subspaces of ℝⁿ
// relate to each other: how far apart they are, the angles between them,
// how similar they are, what they share, and how to rotate one onto another.
//
// 🚀 What is lvspace?
//
//	A small numerical library built on gonum that brings together:
//		• Projectors: orthogonal projector and complement for a basis
//		• Distances: gap (two formulas), Hausdorff, kernel, low-rank (Eckart–Young)
//		• Angles: principal angles with principal vectors, min and max angle
//		• Similarity: Yamaguchi, Wolf, joint-span rank, intersection dimension
//		• Alignment: orthogonal Procrustes rotation and its residual
//
// ✨ Why choose lvspace?
//
//   - Basis in, number out: every operation takes gonum mat.Matrix bases
//   - Swappable numerics: the gonum LAPACK port or a pure Go Householder/Jacobi backend
//   - Sentinel errors: match with errors.Is at any layer
//   - Quiet by default: inject a zerolog logger to see short-circuits and clamps
//
// Under the hood, everything is organized under two subpackages:
//
//	linalg/   — Backend interface (QR, SVD, rank, spectral norm, projectors),
//	            Gonum and Native implementations, shared validators
//	subspace/ — the relationship measures, functional options, sentinels
//
// Quick example:
//
//	x := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 0, 0}) // xy-plane
//	y := mat.NewDense(3, 2, []float64{1, 0, 0, 0, 0, 1}) // xz-plane
//	d, _ := subspace.Distance(x, y, 3, subspace.MethodDefinition) // 1
//	a, _ := subspace.PrincipalAngles(x, y, 3)                     // [0, π/2]
//
//	go get github.com/katalvlaran/lvspace/subspace
package lvspace
