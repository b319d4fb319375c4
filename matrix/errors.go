// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. No function panics on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: " for easy grepping across logs.
// Wrap with context at the detection site (denseErrorf / matrixErrorf);
// callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive (public ctor) or negative (zero-OK ctor).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g.
	// len(x) != m.Cols() in MatVec or len(data) != rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
