// SPDX-License-Identifier: MIT
// Package subspace_test contains fixtures and a mock backend.
//
// Purpose:
//   - Provide small, exact fixtures (coordinate planes and lines) whose
//     angles and distances are known in closed form.
//   - Provide a testify mock of linalg.Backend to observe call patterns.

package subspace_test

import (
	"math"
	"math/rand"

	"github.com/stretchr/testify/mock"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspace/linalg"
	"github.com/katalvlaran/lvspace/subspace"
)

// angleTol absorbs the √ε conditioning of arccos near 1.
const angleTol = 1e-6

// tol is the absolute tolerance for well-conditioned quantities.
const tol = 1e-10

// backends lists every Backend the operations are exercised with.
var backends = []struct {
	name string
	b    linalg.Backend
}{
	{"gonum", linalg.Gonum{}},
	{"native", linalg.Native{}},
}

// xyPlane is span{e1, e2} in ℝ³.
func xyPlane() *mat.Dense {
	return mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
	})
}

// xzPlane is span{e1, e3} in ℝ³.
func xzPlane() *mat.Dense {
	return mat.NewDense(3, 2, []float64{
		1, 0,
		0, 0,
		0, 1,
	})
}

// xyPlaneSkewed spans the xy-plane with a non-orthogonal basis.
func xyPlaneSkewed() *mat.Dense {
	return mat.NewDense(3, 2, []float64{
		1, 1,
		1, -2,
		0, 0,
	})
}

// line returns the unit vector at angle phi in the xy-plane of ℝⁿ as an n×1 basis.
func line(n int, phi float64) *mat.Dense {
	m := mat.NewDense(n, 1, nil)
	m.Set(0, 0, math.Cos(phi))
	m.Set(1, 0, math.Sin(phi))

	return m
}

// coordinateBasis returns the n×len(idx) basis {e_i : i ∈ idx}.
func coordinateBasis(n int, idx ...int) *mat.Dense {
	m := mat.NewDense(n, len(idx), nil)
	for j, i := range idx {
		m.Set(i, j, 1)
	}

	return m
}

// randomBasis returns an n×k matrix with entries in [-1,1) from a fixed seed.
func randomBasis(n, k int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*k)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}

	return mat.NewDense(n, k, data)
}

// identity returns the n×n identity.
func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// mockBackend is a testify double for linalg.Backend.
type mockBackend struct {
	mock.Mock
}

var _ linalg.Backend = (*mockBackend)(nil)

func (m *mockBackend) QR(a mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	args := m.Called(a)
	q, _ := args.Get(0).(*mat.Dense)
	r, _ := args.Get(1).(*mat.Dense)

	return q, r, args.Error(2)
}

func (m *mockBackend) SVD(a mat.Matrix) (*mat.Dense, []float64, *mat.Dense, error) {
	args := m.Called(a)
	u, _ := args.Get(0).(*mat.Dense)
	s, _ := args.Get(1).([]float64)
	vt, _ := args.Get(2).(*mat.Dense)

	return u, s, vt, args.Error(3)
}

func (m *mockBackend) SingularValues(a mat.Matrix) ([]float64, error) {
	args := m.Called(a)
	s, _ := args.Get(0).([]float64)

	return s, args.Error(1)
}

func (m *mockBackend) Rank(a mat.Matrix) (int, error) {
	args := m.Called(a)

	return args.Int(0), args.Error(1)
}

func (m *mockBackend) Norm2(a mat.Matrix) (float64, error) {
	args := m.Called(a)

	return args.Get(0).(float64), args.Error(1)
}

func (m *mockBackend) Project(x mat.Matrix, n int) (*mat.Dense, *mat.Dense, error) {
	args := m.Called(x, n)
	p, _ := args.Get(0).(*mat.Dense)
	pc, _ := args.Get(1).(*mat.Dense)

	return p, pc, args.Error(2)
}

// withBackend is shorthand for the option slice used in table tests.
func withBackend(b linalg.Backend) []subspace.Option {
	return []subspace.Option{subspace.WithBackend(b)}
}
