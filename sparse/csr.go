// SPDX-License-Identifier: MIT

// Package sparse - CSR value type, accessors & lifecycle.
//
// Purpose:
//   - Keep RowPtr/ColInd/Values inside one owned value so they are created
//     and released as a unit.
//   - Expose read-only views for inspection, reporting and serialization.
//
// Complexity quicksheet:
//   - Dim/NNZ/Density: O(1); Row: O(1); ToDense: O(n² + nnz); Equal: O(n + nnz).

package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvspmv/matrix"
)

// CSR is an n×n matrix in Compressed Sparse Row format.
//   - rowPtr has n+1 entries, rowPtr[0]==0, non-decreasing, rowPtr[n]==nnz.
//   - colInd and values have nnz entries; row i owns [rowPtr[i], rowPtr[i+1]).
//   - Inside a row, colInd is strictly increasing; no stored value is 0.
//
// The zero value is not usable; build with FromDense, FromDenseMatrix or FromParts.
type CSR struct {
	n        int       // dimension (rows == cols)
	rowPtr   []int     // len n+1
	colInd   []int     // len nnz
	values   []float64 // len nnz
	validate bool      // debug mode: Validate before every product
	released bool      // set by Release; all arrays are nil afterwards
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*CSR)(nil)

// Dim returns n. A released matrix reports 0.
func (c *CSR) Dim() int { return c.n }

// NNZ returns the number of stored non-zero entries (RowPtr[n]).
// A released matrix reports 0.
func (c *CSR) NNZ() int { return len(c.values) }

// Density returns NNZ / n². An empty (n == 0) matrix has density 0.
func (c *CSR) Density() float64 {
	if c.n == 0 {
		return 0
	}

	return float64(len(c.values)) / (float64(c.n) * float64(c.n))
}

// Released reports whether Release has been called.
func (c *CSR) Released() bool { return c.released }

// Validating reports whether debug-mode validation is enabled for c.
func (c *CSR) Validating() bool { return c.validate }

// RowPtr returns the row offset array (len n+1). The slice aliases internal
// storage and must not be mutated.
func (c *CSR) RowPtr() []int { return c.rowPtr }

// ColInd returns the column index array (len nnz). Must not be mutated.
func (c *CSR) ColInd() []int { return c.colInd }

// Values returns the stored value array (len nnz). Must not be mutated.
func (c *CSR) Values() []float64 { return c.values }

// Row returns the column indices and values stored for row i, in increasing
// column order. Both slices alias internal storage and must not be mutated.
//
// Errors:
//   - ErrReleased after Release.
//   - ErrOutOfRange when i is outside [0,n).
func (c *CSR) Row(i int) (cols []int, vals []float64, err error) {
	if c.released {
		return nil, nil, sparseErrorf(opRow, ErrReleased)
	}
	if i < 0 || i >= c.n {
		return nil, nil, sparseErrorf(opRow, fmt.Errorf("row %d of %d: %w", i, c.n, ErrOutOfRange))
	}
	lo, hi := c.rowPtr[i], c.rowPtr[i+1]

	return c.colInd[lo:hi:hi], c.values[lo:hi:hi], nil
}

// Release drops the three arrays together. It is idempotent; after Release
// Dim and NNZ report 0 and products return ErrReleased.
// Release must not run concurrently with readers of c.
func (c *CSR) Release() {
	c.rowPtr, c.colInd, c.values = nil, nil, nil
	c.n = 0
	c.released = true
}

// ToDense expands c into a freshly allocated n×n row-major matrix.
// Complexity: Time O(n² + nnz), Space O(n²).
func (c *CSR) ToDense() (*matrix.Dense, error) {
	if c.released {
		return nil, sparseErrorf(opToDense, ErrReleased)
	}
	n := c.n
	buf := make([]float64, n*n)
	var i, k, base int
	for i = 0; i < n; i++ {
		base = i * n
		for k = c.rowPtr[i]; k < c.rowPtr[i+1]; k++ {
			buf[base+c.colInd[k]] = c.values[k]
		}
	}

	d, err := matrix.NewDenseFrom(n, n, buf)
	if err != nil {
		return nil, sparseErrorf(opToDense, err)
	}

	return d, nil
}

// Equal reports whether c and o have identical structure and bit-identical
// values. Two released matrices are equal; the validation flag is ignored.
func (c *CSR) Equal(o *CSR) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	if c.released != o.released || c.n != o.n || len(c.values) != len(o.values) {
		return false
	}
	for i := range c.rowPtr {
		if c.rowPtr[i] != o.rowPtr[i] {
			return false
		}
	}
	for k := range c.colInd {
		if c.colInd[k] != o.colInd[k] {
			return false
		}
		if math.Float64bits(c.values[k]) != math.Float64bits(o.values[k]) {
			return false
		}
	}

	return true
}

// String summarizes the matrix for logs: "CSR{n=..., nnz=..., density=...}".
func (c *CSR) String() string {
	if c.released {
		return "CSR{released}"
	}

	return fmt.Sprintf("CSR{n=%d, nnz=%d, density=%.4f}", c.n, len(c.values), c.Density())
}
