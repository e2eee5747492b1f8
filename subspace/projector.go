// SPDX-License-Identifier: MIT

package subspace

import (
	"gonum.org/v1/gonum/mat"
)

// Projectors is the orthogonal projector pair of a subspace: P maps onto the
// subspace, Complement = I − P maps onto its orthogonal complement. Both are
// n×n, symmetric and idempotent.
type Projectors struct {
	P          *mat.Dense
	Complement *mat.Dense
}

// Project returns the projector pair for span(x) in ℝⁿ.
// x must have n rows and full column rank; the backend forwards its own
// error for anything else.
func Project(x mat.Matrix, n int, opts ...Option) (Projectors, error) {
	return project(gatherOptions(opts...), x, n)
}

func project(o Options, x mat.Matrix, n int) (Projectors, error) {
	if err := validateAmbient(n, x); err != nil {
		return Projectors{}, subspaceErrorf(opProject, err)
	}
	p, pc, err := o.backend.Project(x, n)
	if err != nil {
		return Projectors{}, subspaceErrorf(opProject, err)
	}

	return Projectors{P: p, Complement: pc}, nil
}
