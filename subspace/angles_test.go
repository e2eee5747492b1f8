// SPDX-License-Identifier: MIT
package subspace_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspace/linalg"
	"github.com/katalvlaran/lvspace/subspace"
)

// requirePrincipalVectors checks the structural contract of an Angles value:
// orthonormal U and V spanning X and Y, and cos θᵢ = Uᵢᵀ·Vᵢ.
func requirePrincipalVectors(t *testing.T, b linalg.Backend, x, y mat.Matrix, n int, a subspace.Angles) {
	t.Helper()

	_, kx := x.Dims()
	_, ky := y.Dims()
	require.Len(t, a.Theta, min(kx, ky))

	ur, uc := a.U.Dims()
	vr, vc := a.V.Dims()
	require.Equal(t, [2]int{n, kx}, [2]int{ur, uc})
	require.Equal(t, [2]int{n, ky}, [2]int{vr, vc})

	var utu, vtv mat.Dense
	utu.Mul(a.U.T(), a.U)
	vtv.Mul(a.V.T(), a.V)
	require.True(t, mat.EqualApprox(identity(kx), &utu, 1e-9), "UᵀU:\n%v", mat.Formatted(&utu))
	require.True(t, mat.EqualApprox(identity(ky), &vtv, 1e-9), "VᵀV:\n%v", mat.Formatted(&vtv))

	px, err := subspace.Project(x, n, subspace.WithBackend(b))
	require.NoError(t, err)
	py, err := subspace.Project(y, n, subspace.WithBackend(b))
	require.NoError(t, err)
	var pu, pv mat.Dense
	pu.Mul(px.P, a.U)
	pv.Mul(py.P, a.V)
	require.True(t, mat.EqualApprox(a.U, &pu, 1e-9), "U must lie in span(X)")
	require.True(t, mat.EqualApprox(a.V, &pv, 1e-9), "V must lie in span(Y)")

	for i, theta := range a.Theta {
		d := floats.Dot(mat.Col(nil, i, a.U), mat.Col(nil, i, a.V))
		require.InDelta(t, math.Cos(theta), d, 1e-9, "pair %d", i)
	}
}

// TestPrincipalAngles_Known covers exact configurations, including both
// branches of the kx/ky comparison.
func TestPrincipalAngles_Known(t *testing.T) {
	t.Parallel()

	tilted := mat.NewDense(3, 1, []float64{1, 0, 1}) // 45° above the xy-plane
	tests := []struct {
		name string
		x, y *mat.Dense
		n    int
		want []float64
	}{
		{"same plane", xyPlane(), xyPlane(), 3, []float64{0, 0}},
		{"same span skewed basis", xyPlane(), xyPlaneSkewed(), 3, []float64{0, 0}},
		{"xy vs xz", xyPlane(), xzPlane(), 3, []float64{0, math.Pi / 2}},
		{"line vs plane", tilted, xyPlane(), 3, []float64{math.Pi / 4}},
		{"plane vs line", xyPlane(), tilted, 3, []float64{math.Pi / 4}},
		{"lines at pi/3", line(2, 0), line(2, math.Pi/3), 2, []float64{math.Pi / 3}},
		{"disjoint coordinates", coordinateBasis(5, 0, 1), coordinateBasis(5, 2, 3, 4), 5, []float64{math.Pi / 2, math.Pi / 2}},
		{"one shared axis", coordinateBasis(5, 0, 2), coordinateBasis(5, 2, 3), 5, []float64{0, math.Pi / 2}},
	}
	for _, be := range backends {
		for _, tc := range tests {
			be, tc := be, tc
			t.Run(be.name+"/"+tc.name, func(t *testing.T) {
				t.Parallel()
				a, err := subspace.PrincipalAngles(tc.x, tc.y, tc.n, subspace.WithBackend(be.b))
				require.NoError(t, err)
				require.Len(t, a.Theta, len(tc.want))
				for i := range tc.want {
					require.InDelta(t, tc.want[i], a.Theta[i], angleTol, "θ%d", i)
				}
				requirePrincipalVectors(t, be.b, tc.x, tc.y, tc.n, a)
			})
		}
	}
}

// TestPrincipalAngles_Random checks ordering, range and the vector contract
// on random bases of unequal dimension, in both argument orders.
func TestPrincipalAngles_Random(t *testing.T) {
	t.Parallel()

	x := randomBasis(8, 3, 7)
	y := randomBasis(8, 5, 11)
	for _, be := range backends {
		for _, pair := range [][2]*mat.Dense{{x, y}, {y, x}} {
			a, err := subspace.PrincipalAngles(pair[0], pair[1], 8, subspace.WithBackend(be.b))
			require.NoError(t, err, be.name)
			require.Len(t, a.Theta, 3)
			for i, theta := range a.Theta {
				require.GreaterOrEqual(t, theta, 0.0)
				require.LessOrEqual(t, theta, math.Pi/2+1e-12)
				if i > 0 {
					require.GreaterOrEqual(t, theta, a.Theta[i-1]-1e-12, "θ ascending")
				}
			}
			requirePrincipalVectors(t, be.b, pair[0], pair[1], 8, a)
		}
	}
}

// TestPrincipalAngles_BackendsAgree: both backends see the same angles.
func TestPrincipalAngles_BackendsAgree(t *testing.T) {
	t.Parallel()

	x := randomBasis(10, 4, 3)
	y := randomBasis(10, 4, 5)
	g, err := subspace.PrincipalAngles(x, y, 10, subspace.WithBackend(linalg.Gonum{}))
	require.NoError(t, err)
	nat, err := subspace.PrincipalAngles(x, y, 10, subspace.WithBackend(linalg.Native{}))
	require.NoError(t, err)

	if diff := cmp.Diff(g.Theta, nat.Theta, cmpopts.EquateApprox(0, 1e-8)); diff != "" {
		t.Fatalf("theta mismatch (-gonum +native):\n%s", diff)
	}
}

// TestPrincipalAngles_Errors covers validation failures.
func TestPrincipalAngles_Errors(t *testing.T) {
	t.Parallel()

	wide := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 0})
	_, err := subspace.PrincipalAngles(wide, line(2, 0), 2)
	require.ErrorIs(t, err, linalg.ErrShape)

	_, err = subspace.PrincipalAngles(xyPlane(), xzPlane(), 0)
	require.ErrorIs(t, err, subspace.ErrBadDimension)

	_, err = subspace.PrincipalAngles(xyPlane(), line(4, 0), 3)
	require.ErrorIs(t, err, subspace.ErrDimensionMismatch)

	_, err = subspace.PrincipalAngles(nil, xyPlane(), 3)
	require.ErrorIs(t, err, subspace.ErrNilMatrix)
}

// TestMinMaxAngle covers the extremal angles.
func TestMinMaxAngle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x, y     mat.Matrix
		n        int
		min, max float64
	}{
		{"same plane", xyPlane(), xyPlaneSkewed(), 3, 0, 0},
		{"xy vs xz", xyPlane(), xzPlane(), 3, 0, math.Pi / 2},
		{"orthogonal lines", coordinateBasis(3, 0), coordinateBasis(3, 1), 3, math.Pi / 2, math.Pi / 2},
		{"lines at pi/6", line(2, 0), line(2, math.Pi/6), 2, math.Pi / 6, math.Pi / 6},
		{"line in plane", coordinateBasis(3, 0), xyPlane(), 3, 0, math.Pi / 2},
	}
	for _, be := range backends {
		for _, tc := range tests {
			lo, err := subspace.MinAngle(tc.x, tc.y, tc.n, subspace.WithBackend(be.b))
			require.NoError(t, err, "%s/%s", be.name, tc.name)
			require.InDelta(t, tc.min, lo, angleTol, "%s/%s min", be.name, tc.name)

			hi, err := subspace.MaxAngle(tc.x, tc.y, tc.n, subspace.WithBackend(be.b))
			require.NoError(t, err, "%s/%s", be.name, tc.name)
			require.InDelta(t, tc.max, hi, angleTol, "%s/%s max", be.name, tc.name)
			require.False(t, math.IsNaN(lo) || math.IsNaN(hi))
		}
	}

	_, err := subspace.MinAngle(xyPlane(), xzPlane(), -1)
	require.ErrorIs(t, err, subspace.ErrBadDimension)
	_, err = subspace.MaxAngle(xyPlane(), line(2, 0), 3)
	require.ErrorIs(t, err, subspace.ErrDimensionMismatch)
}

// TestMaxAngle_MatchesLargestPrincipalAngle on random equal-dimension subspaces.
func TestMaxAngle_MatchesLargestPrincipalAngle(t *testing.T) {
	t.Parallel()

	x := randomBasis(7, 3, 21)
	y := randomBasis(7, 3, 22)
	a, err := subspace.PrincipalAngles(x, y, 7)
	require.NoError(t, err)
	hi, err := subspace.MaxAngle(x, y, 7)
	require.NoError(t, err)
	require.InDelta(t, a.Theta[len(a.Theta)-1], hi, angleTol)

	lo, err := subspace.MinAngle(x, y, 7)
	require.NoError(t, err)
	require.InDelta(t, a.Theta[0], lo, angleTol)
}
