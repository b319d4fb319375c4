// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Deterministic dense fixtures with a controlled density.
//   • Independent reference computations (non-zero count, dense product).

package sparse_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvspmv/matrix"
	"github.com/katalvlaran/lvspmv/sparse"
	"github.com/stretchr/testify/require"
)

// closeTol is the relative tolerance used when comparing against dense references.
const closeTol = 1e-12

// randDense returns an n×n row-major buffer where each cell is non-zero with
// probability density; non-zero magnitudes lie in [1,10) with random sign.
func randDense(n int, density float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n*n)
	for i := range out {
		if rng.Float64() < density {
			v := 1 + 9*rng.Float64()
			if rng.Intn(2) == 0 {
				v = -v
			}
			out[i] = v
		}
	}

	return out
}

// randVec returns n values in [-10,10) from a fixed seed.
func randVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*20 - 10
	}

	return v
}

// countNonZero counts cells != 0 independently of the builder.
func countNonZero(mat []float64) int {
	nnz := 0
	for _, v := range mat {
		if v != 0 {
			nnz++
		}
	}

	return nnz
}

// mustCSR builds a CSR or fails the test.
func mustCSR(tb testing.TB, n int, mat []float64, opts ...sparse.Option) *sparse.CSR {
	tb.Helper()
	c, err := sparse.FromDense(n, mat, opts...)
	if err != nil {
		tb.Fatalf("FromDense(n=%d): %v", n, err)
	}

	return c
}

// denseProduct computes the reference product with the dense kernel.
func denseProduct(tb testing.TB, n int, mat, x []float64) []float64 {
	tb.Helper()
	if n == 0 {
		return []float64{}
	}
	d, err := matrix.NewDenseFrom(n, n, mat)
	if err != nil {
		tb.Fatalf("NewDenseFrom: %v", err)
	}
	y, err := matrix.MatVec(d, x)
	if err != nil {
		tb.Fatalf("MatVec: %v", err)
	}

	return y
}

// requireVecClose asserts |want-got| ≤ tol·|want| element-wise, with exact
// equality required where want is 0.
func requireVecClose(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		diff := math.Abs(want[i] - got[i])
		require.LessOrEqualf(t, diff, tol*math.Abs(want[i]),
			"index %d: want %v, got %v", i, want[i], got[i])
	}
}

// requireSortedRows asserts the strictly-increasing column invariant.
func requireSortedRows(t *testing.T, c *sparse.CSR) {
	t.Helper()
	rp, ci := c.RowPtr(), c.ColInd()
	for i := 0; i < c.Dim(); i++ {
		for k := rp[i] + 1; k < rp[i+1]; k++ {
			require.Lessf(t, ci[k-1], ci[k], "row %d not strictly increasing at %d", i, k)
		}
	}
}
