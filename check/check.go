// SPDX-License-Identifier: MIT

// Package check compares SpMV results against a reference vector.
//
// Policy:
//   - Relative tolerance against the reference: |x−y| ≤ eps·|x|, where x is the
//     reference value (Knuth, TAOCP vol. 2, §4.2.2). A zero reference therefore
//     demands an exact zero.
//   - A numeric mismatch is a result, not an error: Vectors reports it in
//     Result and only returns an error for unusable inputs.
package check

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEpsilon is the relative tolerance used by the benchmark.
const DefaultEpsilon = 1e-5

// ErrLengthMismatch indicates reference and result vectors of different length.
var ErrLengthMismatch = errors.New("check: length mismatch")

// ErrInvalidEpsilon indicates a negative, NaN or infinite tolerance.
var ErrInvalidEpsilon = errors.New("check: invalid epsilon")

// NearlyEqual reports whether |x−y| ≤ eps·|x|.
// NaN never compares nearly equal to anything.
func NearlyEqual(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps*math.Abs(x)
}

// Result summarizes an element-wise comparison.
type Result struct {
	OK          bool    // every element passed NearlyEqual
	Mismatches  int     // number of failing elements
	FirstBad    int     // index of the first failing element, -1 if none
	MaxRelError float64 // max |x−y|/|x| over elements with x != 0
}

// String renders the result in one line for logs and reports.
func (r Result) String() string {
	if r.OK {
		return fmt.Sprintf("ok (max rel err %.3g)", r.MaxRelError)
	}

	return fmt.Sprintf("wrong (%d mismatches, first at %d, max rel err %.3g)",
		r.Mismatches, r.FirstBad, r.MaxRelError)
}

// Vectors compares got against ref element-wise with NearlyEqual.
//
// Errors:
//   - ErrLengthMismatch when len(ref) != len(got).
//   - ErrInvalidEpsilon when eps is negative, NaN or infinite.
//
// Complexity: O(n), no allocation.
func Vectors(ref, got []float64, eps float64) (Result, error) {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return Result{}, fmt.Errorf("Vectors: eps=%g: %w", eps, ErrInvalidEpsilon)
	}
	if len(ref) != len(got) {
		return Result{}, fmt.Errorf("Vectors: len(ref)=%d, len(got)=%d: %w", len(ref), len(got), ErrLengthMismatch)
	}

	res := Result{OK: true, FirstBad: -1}
	var rel float64
	for i, x := range ref {
		y := got[i]
		if x != 0 {
			rel = math.Abs(x-y) / math.Abs(x)
			if rel > res.MaxRelError || math.IsNaN(rel) {
				res.MaxRelError = rel
			}
		}
		if !NearlyEqual(x, y, eps) {
			if res.OK {
				res.FirstBad = i
			}
			res.OK = false
			res.Mismatches++
		}
	}

	return res, nil
}
