// Package subspace quantifies relationships between linear subspaces of ℝⁿ.
//
// A subspace is given by a basis matrix: n rows (the ambient dimension) and
// k linearly independent columns. Every operation takes the bases as
// gonum mat.Matrix values, never mutates them, and recomputes ranks on each
// call.
//
// ✨ Operations:
//
//	Projectors   Project
//	Distances    Distance (definition | complement), HausdorffDistance,
//	             KernelDistance, LowRankDistance
//	Angles       PrincipalAngles, MinAngle, MaxAngle
//	Similarity   SimilarityYamaguchi, SimilarityWolf, Intersection,
//	             IntersectionDim
//	Alignment    RotationMeasure, RotationResidual
//
// ⚙️ Usage:
//
//	x := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 0, 0}) // xy-plane
//	y := mat.NewDense(3, 2, []float64{1, 0, 0, 0, 0, 1}) // xz-plane
//
//	angles, err := subspace.PrincipalAngles(x, y, 3)
//	// angles.Theta == [0, π/2]
//
// Conventions:
//   - Subspaces of different dimension are at Distance exactly 1.
//   - The ambient dimension n is checked against every basis' row count.
//   - Values are real (float64); transposes stand in for conjugate transposes.
//
// Configuration uses functional options: WithBackend (linalg.Gonum by
// default, or linalg.Native), WithEpsilon, WithLogger (zerolog).
//
// Errors are sentinels matched with errors.Is: ErrBadDimension,
// ErrDimensionMismatch, ErrNilMatrix, ErrRankDeficient, ErrInvalidRankTarget,
// plus the backend's linalg.ErrShape and linalg.ErrNoConvergence.
package subspace
