// SPDX-License-Identifier: MIT

// Package sparse - CSR construction.
//
// Canonical algorithm (two passes over the dense snapshot):
//   - Counting pass: rowPtr[i] = running nnz before row i; count cells != 0.
//   - Allocation: colInd/values sized exactly nnz (nnz == 0 is legal).
//   - Filling pass: same i→j scan order, so position k of the second pass is
//     exactly the k-th non-zero counted by the first.
//
// Determinism:
//   - Stable row order (i asc) and column order (j asc) in both passes.

package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvspmv/matrix"
)

// FromDense converts an n×n row-major dense buffer into CSR.
//
// Implementation:
//   - Stage 1: reject n < 0 (ErrInvalidDimension) and n*n beyond the
//     addressable range (ErrAllocation). In debug mode also require
//     len(mat) >= n*n (ErrDimensionMismatch).
//   - Stage 2: counting pass fills rowPtr[0..n].
//   - Stage 3: allocate colInd/values with exactly nnz slots.
//   - Stage 4: filling pass appends each non-zero and its column.
//   - Stage 5 (debug mode only): Validate the result.
//
// Behavior highlights:
//   - Exact-zero policy: mat[i*n+j] != 0 decides storage; no epsilon.
//   - n == 0 yields rowPtr=[0] and empty (non-nil) colInd/values.
//   - mat is only read; the CSR never aliases it.
//
// Errors:
//   - ErrInvalidDimension, ErrAllocation; ErrDimensionMismatch / ErrMalformed
//     in debug mode. On error the returned *CSR is nil.
//
// Contract:
//   - Without WithValidation(true), len(mat) >= n*n is a caller precondition;
//     a shorter buffer makes the scan panic with an index-out-of-range.
//
// Complexity:
//   - Time O(n²), Space O(n + nnz).
func FromDense(n int, mat []float64, opts ...Option) (*CSR, error) {
	o := gatherOptions(opts...)

	// Stage 1: shape checks that are O(1) stay on the fast path too.
	if n < 0 {
		return nil, sparseErrorf(opFromDense, fmt.Errorf("n=%d: %w", n, ErrInvalidDimension))
	}
	if n > 0 && n > math.MaxInt/n {
		return nil, sparseErrorf(opFromDense, fmt.Errorf("n=%d: n*n overflows: %w", n, ErrAllocation))
	}
	if o.validate && len(mat) < n*n {
		return nil, sparseErrorf(opFromDense,
			fmt.Errorf("len(mat)=%d < n*n=%d: %w", len(mat), n*n, ErrDimensionMismatch))
	}

	// Stage 2: counting pass.
	rowPtr := make([]int, n+1)
	var i, j, base, nnz int
	for i = 0; i < n; i++ {
		rowPtr[i] = nnz // start of row i
		base = i * n
		for j = 0; j < n; j++ {
			if mat[base+j] != 0 {
				nnz++
			}
		}
	}
	rowPtr[n] = nnz // end of the last row

	// Stage 3: exact-size allocation; make with len 0 is legal and non-nil.
	colInd := make([]int, nnz)
	values := make([]float64, nnz)

	// Stage 4: filling pass in the same i→j order.
	var k int
	var v float64
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			v = mat[base+j]
			if v != 0 {
				values[k] = v
				colInd[k] = j
				k++
			}
		}
	}

	c := &CSR{n: n, rowPtr: rowPtr, colInd: colInd, values: values, validate: o.validate}

	// Stage 5: self-check in debug mode.
	if o.validate {
		if err := c.Validate(); err != nil {
			return nil, sparseErrorf(opFromDense, err)
		}
	}

	return c, nil
}

// FromDenseMatrix converts a square *matrix.Dense into CSR.
// The scan runs over the flat row-major buffer, so the result is identical to
// FromDense(m.Rows(), m.RawData(), opts...).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m; matrix.ErrNonSquare for r != c.
//   - Anything FromDense returns.
func FromDenseMatrix(m *matrix.Dense, opts ...Option) (*CSR, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, sparseErrorf(opFromDenseMatrix, err)
	}
	c, err := FromDense(m.Rows(), m.RawData(), opts...)
	if err != nil {
		return nil, sparseErrorf(opFromDenseMatrix, err)
	}

	return c, nil
}

// FromParts adopts already-built CSR arrays (e.g. read back from a snapshot).
// Ownership of rowPtr, colInd and values transfers to the returned CSR; the
// caller must not modify them afterwards.
//
// Because the arrays did not come from the builder, the structure is always
// validated here, regardless of WithValidation. The option still controls
// debug checks on later products.
//
// Errors:
//   - ErrInvalidDimension for n < 0; ErrMalformed for any violated invariant.
//
// Complexity:
//   - Time O(n + nnz), Space O(1) extra.
func FromParts(n int, rowPtr, colInd []int, values []float64, opts ...Option) (*CSR, error) {
	o := gatherOptions(opts...)
	if n < 0 {
		return nil, sparseErrorf(opFromParts, fmt.Errorf("n=%d: %w", n, ErrInvalidDimension))
	}
	if colInd == nil {
		colInd = []int{}
	}
	if values == nil {
		values = []float64{}
	}

	c := &CSR{n: n, rowPtr: rowPtr, colInd: colInd, values: values, validate: o.validate}
	if err := c.Validate(); err != nil {
		return nil, sparseErrorf(opFromParts, err)
	}

	return c, nil
}
