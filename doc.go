// Package lvspmv is a small toolkit for sparse matrix-vector products in
// Compressed Sparse Row (CSR) form, and a benchmark that pits them against
// dense BLAS.
//
// 🚀 What is inside?
//
//   - sparse: CSR storage. Build from a dense row-major buffer, y = A·x
//     kernel, debug validation, gonum mat.Matrix interop.
//   - matrix: minimal row-major Dense store and the plain dense product.
//   - gen: seeded random sparse matrices and vectors.
//   - check: relative-tolerance result comparison.
//   - csrfile: checksummed, optionally compressed CSR snapshots.
//   - cmd/spmvbench: the dense-versus-sparse benchmark.
//
// ✨ Guarantees
//
//   - Deterministic: the CSR kernel sums each row in ascending column order,
//     so repeated runs on the same input are bit-identical.
//   - Explicit errors: sentinel errors per package, checked with errors.Is.
//   - Pure Go: gonum provides the BLAS reference, no cgo.
//
// Quick example:
//
//	//  | 5 0 |
//	//  | 0 8 |
//	c, _ := sparse.FromDense(2, []float64{5, 0, 0, 8})
//	y, _ := c.MulVec([]float64{1, 2}) // [5 16]
//
// Run the benchmark with the classic 2048×2048, 30 % density setup:
//
//	go run github.com/katalvlaran/lvspmv/cmd/spmvbench
package lvspmv
