// SPDX-License-Identifier: MIT

// Package sparse implements the Compressed Sparse Row (CSR) matrix format and
// the CSR sparse matrix-vector product (SpMV).
//
// What & Why:
//
//	A dense n×n matrix costs O(n²) memory and O(n²) work per product no matter
//	how many of its cells are zero. CSR stores only the non-zero cells through
//	three parallel arrays:
//
//	  RowPtr  n+1 offsets; row i occupies [RowPtr[i], RowPtr[i+1])
//	  ColInd  nnz column indices, strictly increasing inside each row
//	  Values  nnz non-zero values, parallel to ColInd
//
//	so storage and SpMV both cost O(n + nnz).
//
// Example (n=3):
//
//	[ 5 0 0 ]      RowPtr = [0 1 1 3]
//	[ 0 0 0 ]  ⇒   ColInd = [0 0 2]
//	[ 2 0 7 ]      Values = [5 2 7]
//
// Lifecycle:
//
//	A *CSR is built once (FromDense, FromDenseMatrix or FromParts), owns its
//	three arrays exclusively and is immutable afterwards. Release drops all
//	three arrays together; there is no way to free one of them alone.
//
// Sparsity policy:
//
//	A cell is structurally zero iff it compares equal to 0 (so -0.0 is zero,
//	while 1e-300 and NaN are stored). No epsilon is applied.
//
// Fast path vs. debug mode:
//
//	By default the kernel trusts the CSR invariants (they hold by construction)
//	and only checks vector lengths. WithValidation(true) enables a separate
//	structural check before every product and reports violations as
//	ErrMalformed.
//
// Concurrency:
//
//	A built CSR may be shared by any number of goroutines calling MulVec /
//	MulVecTo concurrently. Release must not race with readers.
//
// Interop:
//
//	*CSR implements gonum's mat.Matrix (plus mat.NonZeroDoer), so it can be
//	compared with mat.Equal or multiplied by gonum's generic routines for
//	independent cross-checks.
package sparse
