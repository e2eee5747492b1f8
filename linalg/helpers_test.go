// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers shared by the backend tests.
//
// Purpose:
//   - Run every contract test against each Backend implementation.
//   - Keep fixtures small, deterministic, and well-conditioned.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspace/linalg"
)

// tol is the absolute tolerance for reconstruction/orthogonality checks.
const tol = 1e-10

// backends lists every Backend under test.
var backends = []struct {
	name string
	b    linalg.Backend
}{
	{"gonum", linalg.Gonum{}},
	{"native", linalg.Native{}},
}

// randomDense returns an r×c matrix with entries in [-1,1) from a fixed seed.
func randomDense(r, c int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}

	return mat.NewDense(r, c, data)
}

// requireOrthonormalCols fails unless qᵀq ≈ I.
func requireOrthonormalCols(t *testing.T, q mat.Matrix) {
	t.Helper()
	_, k := q.Dims()
	var qtq mat.Dense
	qtq.Mul(q.T(), q)
	require.Truef(t, mat.EqualApprox(&qtq, identity(k), tol),
		"columns are not orthonormal:\n%v", mat.Formatted(&qtq))
}

// requireApprox fails unless want ≈ got elementwise within tol.
func requireApprox(t *testing.T, want, got mat.Matrix) {
	t.Helper()
	require.Truef(t, mat.EqualApprox(want, got, tol),
		"want\n%v\ngot\n%v", mat.Formatted(want), mat.Formatted(got))
}

// identity returns the n×n identity.
func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// reconstruct returns u·diag(s)·vt with diag(s) padded to u's cols × vt's rows.
func reconstruct(u *mat.Dense, s []float64, vt *mat.Dense) *mat.Dense {
	_, uc := u.Dims()
	vr, _ := vt.Dims()
	sigma := mat.NewDense(uc, vr, nil)
	for i, v := range s {
		sigma.Set(i, i, v)
	}
	var us, out mat.Dense
	us.Mul(u, sigma)
	out.Mul(&us, vt)

	return &out
}
