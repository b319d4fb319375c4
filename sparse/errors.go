// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All functions return these sentinels wrapped with operation context and
// tests MUST check them via errors.Is. Kernels never panic on conditions they
// detect; unchecked contract violations on the fast path are documented per
// function.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when n < 0.
	ErrInvalidDimension = errors.New("sparse: invalid dimension")

	// ErrDimensionMismatch indicates an operand whose length disagrees with n
	// (input vector, output buffer, or dense buffer in debug mode).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrMalformed indicates a CSR structure that violates its invariants:
	// RowPtr not starting at 0 or decreasing, column out of [0,n), columns not
	// strictly increasing inside a row, array lengths disagreeing with nnz, or
	// a stored explicit zero. Reported only by Validate / debug mode / FromParts.
	ErrMalformed = errors.New("sparse: malformed CSR structure")

	// ErrAllocation indicates that the requested CSR cannot be allocated
	// (n*n or nnz exceed the addressable range). No partial CSR is returned.
	ErrAllocation = errors.New("sparse: allocation failed")

	// ErrReleased indicates use of a CSR after Release.
	ErrReleased = errors.New("sparse: use of released matrix")

	// ErrOutOfRange indicates a row or column index outside [0,n).
	ErrOutOfRange = errors.New("sparse: index out of range")
)

// Operation tags for uniform error wrapping (no magic strings at call sites).
const (
	opFromDense       = "FromDense"
	opFromDenseMatrix = "FromDenseMatrix"
	opFromParts       = "FromParts"
	opMulVec          = "MulVec"
	opMulVecTo        = "MulVecTo"
	opValidate        = "Validate"
	opRow             = "Row"
	opToDense         = "ToDense"
)

// sparseErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
