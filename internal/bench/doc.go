// SPDX-License-Identifier: MIT

// Package bench runs the dense-versus-sparse matrix-vector benchmark.
//
// A run generates a random n×n matrix at the requested density and a dense
// vector, computes the reference product with BLAS (gonum blas64.Gemv), then
// times and checks:
//   - the plain row-major dense product (matrix.MatVec);
//   - the dense→CSR conversion (sparse.FromDense);
//   - gonum's generic product over the CSR (mat.VecDense.MulVec);
//   - the CSR kernel (sparse.CSR.MulVecTo).
//
// Kernel timings are the best of Config.Repeat runs. Every product is compared
// against the reference with check.Vectors. A wrong result is reported, not
// returned as an error; errors are reserved for bad configuration,
// cancellation and failing I/O.
package bench
