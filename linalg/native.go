// SPDX-License-Identifier: MIT
// Package linalg - Native backend: pure-Go kernels over flat row-major buffers.
//
// Purpose:
//   - Provide an implementation of Backend with no LAPACK in the call path,
//     used to cross-check the Gonum backend and as a dependency-light option.
//   - Keep algorithmic determinism (fixed loop orders, fixed pivot sweeps).
//
// Kernels:
//   - QR:  Householder reflections, rectangular (m ≥ k), thin Q extracted
//     from the accumulated reflector product.
//   - SVD: one-sided (Hestenes) Jacobi on the columns, cyclic sweeps, then
//     ordering by column norm and Gram–Schmidt completion of the left basis.
//
// Complexity quicksheet:
//   - QR: O(m²k); SVD: O(sweeps·k²·m) + O(m³) for the full left basis.

package linalg

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultMaxSweeps caps the number of cyclic Jacobi sweeps in Native.SVD.
// Double precision typically converges in well under 15 sweeps.
const DefaultMaxSweeps = 60

// jacobiTol is the floor of the relative orthogonality threshold |γ| ≤ tol·√(αβ)
// at which a column pair is considered converged; long columns use m·ε instead.
const jacobiTol = 1e-15

// Native is a pure-Go Backend.
//
// RankTol, when positive, replaces the default relative rank tolerance.
// MaxSweeps, when positive, overrides DefaultMaxSweeps.
type Native struct {
	RankTol   float64
	MaxSweeps int
}

var _ Backend = Native{}

// QR computes a thin Householder factorization a = Q·R.
// MAIN DESCRIPTION:
//   - Rectangular generalization of the square Householder kernel: reflectors
//     are built for each of the k columns and accumulated into Qᵀ.
//
// Implementation:
//   - Stage 1: validate (non-empty, m ≥ k); copy a into a contiguous row-major buffer.
//   - Stage 2: for p=0..k-1, build v from A[p:m, p], apply H = I − τvvᵀ to A and to Qᵀ.
//   - Stage 3: Q = (Qᵀ)ᵀ restricted to its first k columns; R = upper k×k block of A.
//
// Behavior highlights:
//   - Zero columns are skipped (reflector is the identity), so rank-deficient
//     inputs still yield orthonormal Q columns.
//   - No sign canonicalization: diag(R) may be negative.
//
// Errors:
//   - ErrNilMatrix, ErrShape.
//
// Determinism:
//   - Fixed p→{i,j} visitation order.
//
// Complexity:
//   - Time O(m²k), Space O(m²).
func (nb Native) QR(a mat.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := ValidateTall(a); err != nil {
		return nil, nil, backendErrorf(opQR, err)
	}
	m, k := a.Dims()

	// Working copy: DenseCopyOf yields stride == k, so offset = i*k + j.
	ad := mat.DenseCopyOf(a).RawMatrix().Data

	// qt accumulates H_k⋯H_1 (m×m), starting from the identity.
	qt := make([]float64, m*m)
	var i, j, p int
	for i = 0; i < m; i++ {
		qt[i*m+i] = 1.0
	}

	v := make([]float64, m)
	var (
		norm, alpha float64 // column norm and reflection scalar
		beta, tau   float64 // β = vᵀv and τ = 2/β
		sum         float64 // projection coefficient
	)
	for p = 0; p < k; p++ {
		// norm of A[p:m, p]
		norm = 0
		for i = p; i < m; i++ {
			norm += ad[i*k+p] * ad[i*k+p]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column: nothing to annihilate
		}

		alpha = -math.Copysign(norm, ad[p*k+p])
		for i = 0; i < p; i++ {
			v[i] = 0
		}
		for i = p; i < m; i++ {
			v[i] = ad[i*k+p]
		}
		v[p] -= alpha

		beta = 0
		for i = p; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		// A[p:m, p:k] -= τ v (vᵀ A)
		for j = p; j < k; j++ {
			sum = 0
			for i = p; i < m; i++ {
				sum += v[i] * ad[i*k+j]
			}
			for i = p; i < m; i++ {
				ad[i*k+j] -= tau * v[i] * sum
			}
		}
		// Qᵀ[p:m, :] -= τ v (vᵀ Qᵀ)
		for j = 0; j < m; j++ {
			sum = 0
			for i = p; i < m; i++ {
				sum += v[i] * qt[i*m+j]
			}
			for i = p; i < m; i++ {
				qt[i*m+j] -= tau * v[i] * sum
			}
		}
	}

	q := mat.NewDense(m, k, nil)
	for i = 0; i < m; i++ {
		for j = 0; j < k; j++ {
			q.Set(i, j, qt[j*m+i]) // Q[i,j] = Qᵀ[j,i]
		}
	}
	r := mat.NewDense(k, k, nil)
	for i = 0; i < k; i++ {
		for j = i; j < k; j++ {
			r.Set(i, j, ad[i*k+j])
		}
	}

	return q, r, nil
}

// SVD computes the full factorization a = u·diag(s)·vt with one-sided Jacobi.
// MAIN DESCRIPTION:
//   - Tall inputs are orthogonalized column-wise; wide inputs are handled by
//     factoring aᵀ = U'ΣV'ᵀ and returning u = V', vt = U'ᵀ.
//
// Implementation:
//   - Stage 1: validate; dispatch on orientation.
//   - Stage 2: jacobi() rotates column pairs until mutually orthogonal.
//   - Stage 3: σⱼ = ‖colⱼ‖, order descending, uⱼ = colⱼ/σⱼ.
//   - Stage 4: complete u to an orthonormal basis of ℝᵐ.
//
// Errors:
//   - ErrNilMatrix, ErrShape, ErrNoConvergence.
//
// Complexity:
//   - Time O(sweeps·k²·m + m³), Space O(m² + k²).
func (nb Native) SVD(a mat.Matrix) (*mat.Dense, []float64, *mat.Dense, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, nil, nil, backendErrorf(opSVD, err)
	}
	r, c := a.Dims()
	if r < c {
		u, s, vt, err := nb.tallSVD(a.T())
		if err != nil {
			return nil, nil, nil, backendErrorf(opSVD, err)
		}

		return mat.DenseCopyOf(vt.T()), s, mat.DenseCopyOf(u.T()), nil
	}
	u, s, vt, err := nb.tallSVD(a)
	if err != nil {
		return nil, nil, nil, backendErrorf(opSVD, err)
	}

	return u, s, vt, nil
}

// SingularValues returns σ in non-increasing order (no vectors assembled).
func (nb Native) SingularValues(a mat.Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, backendErrorf(opSingularValues, err)
	}
	r, c := a.Dims()
	if r < c {
		a = a.T()
	}
	cols, _, err := nb.jacobi(a)
	if err != nil {
		return nil, backendErrorf(opSingularValues, err)
	}
	s := make([]float64, len(cols))
	for j := range cols {
		s[j] = floats.Norm(cols[j], 2)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(s)))

	return s, nil
}

// Rank returns the numerical rank of a (see RankFromValues for the policy).
func (nb Native) Rank(a mat.Matrix) (int, error) {
	s, err := nb.SingularValues(a)
	if err != nil {
		return 0, backendErrorf(opRank, err)
	}
	r, c := a.Dims()

	return RankFromValues(s, r, c, nb.RankTol), nil
}

// Norm2 returns the spectral norm of a.
func (nb Native) Norm2(a mat.Matrix) (float64, error) {
	s, err := nb.SingularValues(a)
	if err != nil {
		return 0, backendErrorf(opNorm2, err)
	}

	return normFromValues(s), nil
}

// Project returns the orthogonal projector pair for span(x) in ℝⁿ.
func (nb Native) Project(x mat.Matrix, n int) (*mat.Dense, *mat.Dense, error) {
	return projectWith(nb, x, n)
}

// jacobi runs cyclic one-sided Jacobi sweeps over the columns of a tall a.
// MAIN DESCRIPTION:
//   - Returns the rotated columns (A·V, column-major) and the accumulated V
//     (column-major), such that the returned columns are mutually orthogonal.
//
// Implementation:
//   - Stage 1: copy columns of a and initialize V = I.
//   - Stage 2: for each pair (p<q) compute α=‖aₚ‖², β=‖a_q‖², γ=aₚ·a_q; skip
//     when |γ| ≤ tol·√(αβ); otherwise rotate with
//     ζ=(β−α)/(2γ), t=sign(ζ)/(|ζ|+√(1+ζ²)), c=1/√(1+t²), s=c·t.
//   - Stage 3: stop after a sweep with no rotation; ErrNoConvergence at the cap.
//
// Complexity:
//   - Time O(sweeps·k²·m), Space O(k·m + k²).
func (nb Native) jacobi(a mat.Matrix) ([][]float64, [][]float64, error) {
	m, k := a.Dims()
	cols := make([][]float64, k)
	vcols := make([][]float64, k)
	var i, j int
	for j = 0; j < k; j++ {
		cols[j] = mat.Col(nil, j, a)
		vcols[j] = make([]float64, k)
		vcols[j][j] = 1.0
	}

	maxSweeps := nb.MaxSweeps
	if maxSweeps <= 0 {
		maxSweeps = DefaultMaxSweeps
	}
	orthTol := math.Max(jacobiTol, float64(m)*epsilon)

	var (
		p, q, sweep        int
		rotated            bool
		alpha, beta, gamma float64
		zeta, t, c, s      float64
		x, y               float64
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		rotated = false
		for p = 0; p < k-1; p++ {
			for q = p + 1; q < k; q++ {
				alpha = floats.Dot(cols[p], cols[p])
				beta = floats.Dot(cols[q], cols[q])
				gamma = floats.Dot(cols[p], cols[q])
				if math.Abs(gamma) <= orthTol*math.Sqrt(alpha*beta) {
					continue // pair already orthogonal
				}
				rotated = true

				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1.0, zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				c = 1.0 / math.Sqrt(1+t*t)
				s = c * t

				for i = 0; i < m; i++ {
					x, y = cols[p][i], cols[q][i]
					cols[p][i] = c*x - s*y
					cols[q][i] = s*x + c*y
				}
				for i = 0; i < k; i++ {
					x, y = vcols[p][i], vcols[q][i]
					vcols[p][i] = c*x - s*y
					vcols[q][i] = s*x + c*y
				}
			}
		}
		if !rotated {
			return cols, vcols, nil
		}
	}

	return nil, nil, ErrNoConvergence
}

// tallSVD assembles the full SVD of a tall matrix from the Jacobi columns.
// Implementation:
//   - Stage 1: σⱼ = ‖colⱼ‖; order indices by σ descending (stable).
//   - Stage 2: uⱼ = colⱼ/σⱼ for σⱼ above the rank tolerance; other slots and
//     slots k..m-1 are filled by completeBasis.
//   - Stage 3: vt rows are the reordered V columns.
func (nb Native) tallSVD(a mat.Matrix) (*mat.Dense, []float64, *mat.Dense, error) {
	m, k := a.Dims()
	cols, vcols, err := nb.jacobi(a)
	if err != nil {
		return nil, nil, nil, err
	}

	sigma := make([]float64, k)
	order := make([]int, k)
	var i, j int
	for j = 0; j < k; j++ {
		sigma[j] = floats.Norm(cols[j], 2)
		order[j] = j
	}
	sort.SliceStable(order, func(x, y int) bool { return sigma[order[x]] > sigma[order[y]] })

	s := make([]float64, k)
	for j = 0; j < k; j++ {
		s[j] = sigma[order[j]]
	}
	tol := s[0] * float64(max(m, k)) * epsilon

	// Left basis: m slots, nil marks a slot to complete.
	ucols := make([][]float64, m)
	basis := make([][]float64, 0, m)
	for j = 0; j < k; j++ {
		if s[j] <= tol {
			continue
		}
		u := make([]float64, m)
		floats.ScaleTo(u, 1/s[j], cols[order[j]])
		ucols[j] = u
		basis = append(basis, u)
	}
	for j = 0; j < m; j++ {
		if ucols[j] != nil {
			continue
		}
		ucols[j] = completeBasis(basis, m)
		basis = append(basis, ucols[j])
	}

	u := mat.NewDense(m, m, nil)
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			u.Set(i, j, ucols[j][i])
		}
	}
	vt := mat.NewDense(k, k, nil)
	for j = 0; j < k; j++ {
		vt.SetRow(j, vcols[order[j]])
	}

	return u, s, vt, nil
}

// completeBasis returns a unit vector orthogonal to every vector in basis.
// MAIN DESCRIPTION:
//   - Among the standard basis vectors e₀..e_{m-1}, pick the one with the
//     largest residual after two passes of modified Gram–Schmidt, normalized.
//
// Complexity:
//   - Time O(m²·len(basis)), Space O(m).
func completeBasis(basis [][]float64, m int) []float64 {
	var best []float64
	bestNorm := -1.0
	var i, pass int
	for i = 0; i < m; i++ {
		r := make([]float64, m)
		r[i] = 1.0
		for pass = 0; pass < 2; pass++ {
			for _, b := range basis {
				floats.AddScaled(r, -floats.Dot(b, r), b)
			}
		}
		if nrm := floats.Norm(r, 2); nrm > bestNorm {
			best, bestNorm = r, nrm
		}
	}
	floats.Scale(1/bestNorm, best)

	return best
}
