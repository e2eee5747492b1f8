// SPDX-License-Identifier: MIT
// Package subspace: sentinel error set.
// Every operation returns these sentinels wrapped with its operation tag via
// subspaceErrorf; callers match them with errors.Is. Backend sentinels
// (linalg.ErrShape, linalg.ErrNoConvergence) pass through unchanged.

package subspace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvspace/linalg"
)

var (
	// ErrBadDimension is returned when the ambient dimension n is not positive.
	ErrBadDimension = errors.New("subspace: ambient dimension must be > 0")

	// ErrRankDeficient is returned when an operation requiring full column
	// rank receives a basis whose rank is below its column count.
	ErrRankDeficient = errors.New("subspace: basis must have full column rank")

	// ErrInvalidRankTarget is returned by LowRankDistance when k is not a
	// valid lower rank (k < 0 or k ≥ rank(A)).
	ErrInvalidRankTarget = errors.New("subspace: k must be a valid lower rank")
)

// Shared with the backend so errors.Is matches regardless of which layer
// detected the condition.
var (
	// ErrDimensionMismatch indicates operands that must share a shape or an
	// ambient dimension do not.
	ErrDimensionMismatch = linalg.ErrDimensionMismatch

	// ErrNilMatrix indicates a nil basis or operand.
	ErrNilMatrix = linalg.ErrNilMatrix
)

// Operation name constants for unified error wrapping.
const (
	opProject          = "Project"
	opDistance         = "Distance"
	opHausdorff        = "HausdorffDistance"
	opKernel           = "KernelDistance"
	opLowRank          = "LowRankDistance"
	opPrincipalAngles  = "PrincipalAngles"
	opMinAngle         = "MinAngle"
	opMaxAngle         = "MaxAngle"
	opSimilarityYama   = "SimilarityYamaguchi"
	opSimilarityWolf   = "SimilarityWolf"
	opIntersection     = "Intersection"
	opIntersectionDim  = "IntersectionDim"
	opRotationMeasure  = "RotationMeasure"
	opRotationResidual = "RotationResidual"
)

// subspaceErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func subspaceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
