// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major reference side of lvspmv.
//
// The matrix package provides:
//
//   - Dense: a flat row-major float64 store with bounds-checked At/Set.
//   - MatVec: the straightforward y = A·x reference product used to validate
//     sparse kernels.
//   - Validators (ValidateVecLen, ValidateSquare, ...) shared by kernels so
//     guard logic lives in one place.
//
// Dense storage costs O(r*c) memory and MatVec O(r*c) time regardless of how
// many entries are zero; see package sparse for the CSR alternative.
package matrix
