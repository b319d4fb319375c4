// SPDX-License-Identifier: MIT

// Package sparse - gonum interoperability.
//
// *CSR satisfies mat.Matrix so that the external linear-algebra library can
// consume it directly: mat.Equal for structural cross-validation against a
// dense reference, and gonum's generic products as an independent SpMV.
// Following gonum conventions these methods panic on misuse (bad indices,
// released matrix) instead of returning errors.

package sparse

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Compile-time assertions for gonum interface conformance.
var (
	_ mat.Matrix         = (*CSR)(nil)
	_ mat.NonZeroDoer    = (*CSR)(nil)
	_ mat.RowNonZeroDoer = (*CSR)(nil)
)

// Dims returns (n, n).
func (c *CSR) Dims() (rows, cols int) { return c.n, c.n }

// At returns the element at (i, j); unstored cells read as 0.
// The column is located by binary search inside row i.
// Complexity: O(log nnz(row i)).
func (c *CSR) At(i, j int) float64 {
	if c.released {
		panic(ErrReleased)
	}
	if uint(i) >= uint(c.n) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(c.n) {
		panic(mat.ErrColAccess)
	}
	lo, hi := c.rowPtr[i], c.rowPtr[i+1]
	cols := c.colInd[lo:hi]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return c.values[lo+k]
	}

	return 0
}

// T returns the implicit transpose of c.
func (c *CSR) T() mat.Matrix { return mat.Transpose{Matrix: c} }

// DoNonZero calls fn for every stored entry in row-major order.
func (c *CSR) DoNonZero(fn func(i, j int, v float64)) {
	if c.released {
		panic(ErrReleased)
	}
	for i := 0; i < c.n; i++ {
		c.DoRowNonZero(i, fn)
	}
}

// DoRowNonZero calls fn for every stored entry of row i in column order.
func (c *CSR) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	if c.released {
		panic(ErrReleased)
	}
	if uint(i) >= uint(c.n) {
		panic(mat.ErrRowAccess)
	}
	for k := c.rowPtr[i]; k < c.rowPtr[i+1]; k++ {
		fn(i, c.colInd[k], c.values[k])
	}
}
