// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec   = "MatVec"
	opMatVecTo = "MatVecTo"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x and returns a fresh y.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order; every product is accumulated, zeros
// included, so NaN/Inf propagate exactly like a BLAS gemv.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows()) // allocate exactly rows outputs
	if err := MatVecTo(y, m, x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return y, nil
}

// MatVecTo computes dst = m * x into a caller-owned buffer.
//
// Contract: m non-nil; len(x) == m.Cols(); len(dst) == m.Rows().
// dst must not alias x.
// Complexity: Time O(r*c), Space O(1).
func MatVecTo(dst []float64, m Matrix, x []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVecTo, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return matrixErrorf(opMatVecTo, err)
	}
	if err := ValidateVecLen(dst, m.Rows()); err != nil {
		return matrixErrorf(opMatVecTo, err)
	}

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum  // reset accumulator per row
			base = i * d.c // flat base offset for row i
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			dst[i] = acc
		}

		return nil
	}

	// Fallback: interface-based dot-products via At.
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var mv, acc float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return matrixErrorf(opMatVecTo, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		dst[i] = acc
	}

	return nil
}
