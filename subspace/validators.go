// SPDX-License-Identifier: MIT

package subspace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspace/linalg"
)

// validateAmbient checks n > 0 and that every basis is a non-empty matrix
// with exactly n rows. Callers are not trusted to keep n consistent.
// Complexity: O(len(bases)).
func validateAmbient(n int, bases ...mat.Matrix) error {
	if n <= 0 {
		return fmt.Errorf("n=%d: %w", n, ErrBadDimension)
	}
	for i, b := range bases {
		if err := linalg.ValidateNonEmpty(b); err != nil {
			return fmt.Errorf("basis %d: %w", i, err)
		}
		if err := linalg.ValidateRows(b, n); err != nil {
			return fmt.Errorf("basis %d: %w", i, err)
		}
	}

	return nil
}

// clampUnit clamps v into [-1, 1] so arccos/arcsin never see rounding
// overshoot.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}

	return v
}
