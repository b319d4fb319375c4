// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Debug-mode structural validation, kept apart from the kernel so the
//    default product path stays a plain O(nnz) loop.
//  - Every violation is reported as ErrMalformed with the offending position.

package sparse

import "fmt"

// malformedf formats a structural violation wrapped around ErrMalformed.
func malformedf(format string, args ...any) error {
	return sparseErrorf(opValidate, fmt.Errorf(format+": %w", append(args, ErrMalformed)...))
}

// Validate checks every CSR invariant.
//
// Checks, in order:
//   - len(RowPtr) == n+1 and RowPtr[0] == 0.
//   - RowPtr non-decreasing; RowPtr[n] == len(ColInd) == len(Values).
//   - every column in [0,n) and strictly increasing inside its row.
//   - no stored value equal to 0.
//
// Returns:
//   - nil, ErrReleased, or ErrMalformed wrapped with the first violation found.
//
// Complexity:
//   - Time O(n + nnz), Space O(1).
func (c *CSR) Validate() error {
	if c.released {
		return sparseErrorf(opValidate, ErrReleased)
	}
	n := c.n
	if len(c.rowPtr) != n+1 {
		return malformedf("len(RowPtr)=%d, want n+1=%d", len(c.rowPtr), n+1)
	}
	if c.rowPtr[0] != 0 {
		return malformedf("RowPtr[0]=%d, want 0", c.rowPtr[0])
	}
	nnz := c.rowPtr[n]
	if len(c.colInd) != nnz || len(c.values) != nnz {
		return malformedf("RowPtr[n]=%d, len(ColInd)=%d, len(Values)=%d",
			nnz, len(c.colInd), len(c.values))
	}

	var i, k, lo, hi, col, prev int
	for i = 0; i < n; i++ {
		lo, hi = c.rowPtr[i], c.rowPtr[i+1]
		if hi < lo {
			return malformedf("row %d: RowPtr decreases %d -> %d", i, lo, hi)
		}
		if hi > nnz {
			return malformedf("row %d: RowPtr[%d]=%d exceeds nnz=%d", i, i+1, hi, nnz)
		}
		prev = -1
		for k = lo; k < hi; k++ {
			col = c.colInd[k]
			if col < 0 || col >= n {
				return malformedf("row %d, entry %d: column %d outside [0,%d)", i, k, col, n)
			}
			if col <= prev {
				return malformedf("row %d, entry %d: column %d not after %d", i, k, col, prev)
			}
			if c.values[k] == 0 {
				return malformedf("row %d, entry %d: stored zero", i, k)
			}
			prev = col
		}
	}

	return nil
}
