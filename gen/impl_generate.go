// SPDX-License-Identifier: MIT
// Package: lvspmv/gen
//
// impl_generate.go: SparseMatrix and Vector generators.
//
// Complexity:
//   - SparseMatrix: Time O(n²), Space O(n²) for the returned buffer.
//   - Vector:       Time O(n),  Space O(n).
//
// Determinism:
//   - Cells are visited in row-major order; each consumes one trial draw and,
//     when selected, three value draws.

package gen

import (
	"fmt"
	"math"
)

const (
	methodSparseMatrix = "SparseMatrix"
	methodVector       = "Vector"
	densityMin         = 0.0
	densityMax         = 1.0
)

// SparseMatrix returns an n×n row-major buffer in which each cell is
// independently non-zero with probability ≈ density, and the number of
// cells that were selected.
//
// Contract:
//   - n ≥ 0 and n*n addressable (else ErrInvalidSize).
//   - 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//
// Notes:
//   - The trial is percent-granular, so density 0 yields an all-zero buffer
//     and density 1 fills every cell.
//   - A selected cell can in principle draw exactly 0 (k=0, u=0); the returned
//     count is of selected cells, so callers needing the structural count
//     should count cells != 0 themselves.
func SparseMatrix(n int, density float64, opts ...Option) ([]float64, int, error) {
	if n < 0 || (n > 0 && n > math.MaxInt/n) {
		return nil, 0, genErrorf(methodSparseMatrix, fmt.Errorf("n=%d: %w", n, ErrInvalidSize))
	}
	if math.IsNaN(density) || density < densityMin || density > densityMax {
		return nil, 0, genErrorf(methodSparseMatrix,
			fmt.Errorf("density=%.6f not in [%.1f,%.1f]: %w", density, densityMin, densityMax, ErrInvalidDensity))
	}

	cfg := newGenConfig(opts...)
	out := make([]float64, n*n)
	selected := 0
	for i := range out {
		if float64(cfg.rng.Intn(trialResolution))/trialResolution < density {
			out[i] = cfg.value()
			selected++
		}
		// else: make() already zero-filled the cell
	}

	return out, selected, nil
}

// Vector returns n values drawn from the generator's value law.
// Errors: ErrInvalidSize for n < 0.
func Vector(n int, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, genErrorf(methodVector, fmt.Errorf("n=%d: %w", n, ErrInvalidSize))
	}

	cfg := newGenConfig(opts...)
	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.value()
	}

	return out, nil
}
