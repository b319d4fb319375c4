// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvspmv/matrix"
	"github.com/katalvlaran/lvspmv/sparse"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// DenseBLAS computes y = A·x for the row-major n×n buffer a with a single
// BLAS dgemv call. It is the reference every other product is checked against.
//
// Inconsistent lengths return matrix.ErrDimensionMismatch instead of reaching
// the BLAS bounds checks.
func DenseBLAS(n int, a, x []float64) ([]float64, error) {
	if len(a) != n*n || len(x) != n {
		return nil, fmt.Errorf("DenseBLAS: len(a)=%d, len(x)=%d, n=%d: %w",
			len(a), len(x), n, matrix.ErrDimensionMismatch)
	}
	y := make([]float64, n)
	if n == 0 {
		return y, nil
	}
	denseBLASTo(n, a, x, y)

	return y, nil
}

func denseBLASTo(n int, a, x, y []float64) {
	blas64.Gemv(blas.NoTrans, 1,
		blas64.General{Rows: n, Cols: n, Stride: n, Data: a},
		blas64.Vector{N: n, Inc: 1, Data: x},
		0,
		blas64.Vector{N: n, Inc: 1, Data: y},
	)
}

// SparseExternal computes y = A·x through gonum's generic mat.VecDense.MulVec
// with the CSR as the mat.Matrix operand. It shares no code with the CSR
// kernel and serves as an independent cross-check.
func SparseExternal(c *sparse.CSR, x []float64) ([]float64, error) {
	if c.Released() {
		return nil, fmt.Errorf("SparseExternal: %w", sparse.ErrReleased)
	}
	n := c.Dim()
	if len(x) != n {
		return nil, fmt.Errorf("SparseExternal: len(x)=%d, n=%d: %w", len(x), n, sparse.ErrDimensionMismatch)
	}
	y := make([]float64, n)
	if n == 0 {
		return y, nil // gonum vectors cannot be empty
	}
	sparseExternalTo(c, x, y)

	return y, nil
}

func sparseExternalTo(c *sparse.CSR, x, y []float64) {
	n := c.Dim()
	mat.NewVecDense(n, y).MulVec(c, mat.NewVecDense(n, x))
}

// bestOf runs fn repeat times and returns the shortest wall-clock duration.
// The first error aborts the loop.
func bestOf(repeat int, fn func() error) (time.Duration, error) {
	var best time.Duration
	for r := 0; r < repeat; r++ {
		start := time.Now()
		if err := fn(); err != nil {
			return 0, err
		}
		if took := time.Since(start); r == 0 || took < best {
			best = took
		}
	}

	return best, nil
}
