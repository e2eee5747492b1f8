// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks shared by
//    every backend and by the subspace package.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    wrap again uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate nothing on success.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is usable.
// A typed nil *mat.Dense stored in the interface is rejected as well, since
// calling Dims on it would panic inside gonum.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil(a mat.Matrix) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := a.(*mat.Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty – Composite: NotNil → rows>0 && cols>0.
//
// Errors: ErrNilMatrix, ErrShape.
// Complexity: O(1).
func ValidateNonEmpty(a mat.Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	r, c := a.Dims() // a zero-value mat.Dense reports 0×0
	if r <= 0 || c <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrShape)
	}

	return nil
}

// ValidateTall – Composite: NonEmpty → rows ≥ cols.
// Thin QR and basis inputs need at least as many rows as columns.
//
// Errors: ErrNilMatrix, ErrShape.
// Complexity: O(1).
func ValidateTall(a mat.Matrix) error {
	if err := ValidateNonEmpty(a); err != nil {
		return err
	}
	r, c := a.Dims()
	if r < c {
		return validatorErrorf("ValidateTall", fmt.Errorf("%d×%d: %w", r, c, ErrShape))
	}

	return nil
}

// ValidateRows ensures a has exactly n rows (the ambient dimension).
// Assumes a is not nil (caller must ensure).
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateRows(a mat.Matrix, n int) error {
	r, _ := a.Dims()
	if r != n {
		return validatorErrorf("ValidateRows", fmt.Errorf("rows=%d, n=%d: %w", r, n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b mat.Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}
