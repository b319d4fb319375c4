// SPDX-License-Identifier: MIT
package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvspmv/matrix"
	"github.com/katalvlaran/lvspmv/sparse"
	"github.com/stretchr/testify/require"
)

// TestFromDenseDimensionOne covers the n=1 example: [[5]] ⇒ [0 1] / [0] / [5].
func TestFromDenseDimensionOne(t *testing.T) {
	c := mustCSR(t, 1, []float64{5})
	require.Equal(t, []int{0, 1}, c.RowPtr())
	require.Equal(t, []int{0}, c.ColInd())
	require.Equal(t, []float64{5}, c.Values())
	require.Equal(t, 1, c.NNZ())
}

// TestFromDenseEmpty covers n=0: RowPtr=[0], empty arrays.
func TestFromDenseEmpty(t *testing.T) {
	c := mustCSR(t, 0, nil)
	require.Equal(t, []int{0}, c.RowPtr())
	require.NotNil(t, c.ColInd())
	require.Empty(t, c.ColInd())
	require.Empty(t, c.Values())
	require.Equal(t, 0, c.Dim())
	require.Zero(t, c.Density())
}

// TestFromDenseZeroMatrix: all-zero input ⇒ n+1 zeros in RowPtr, nnz=0.
func TestFromDenseZeroMatrix(t *testing.T) {
	const n = 6
	c := mustCSR(t, n, make([]float64, n*n))
	require.Equal(t, make([]int, n+1), c.RowPtr())
	require.Empty(t, c.ColInd())
	require.Empty(t, c.Values())
	require.NoError(t, c.Validate())
}

// TestFromDenseLayout checks the package-doc example cell by cell.
func TestFromDenseLayout(t *testing.T) {
	mat := []float64{
		5, 0, 0,
		0, 0, 0,
		2, 0, 7,
	}
	c := mustCSR(t, 3, mat)
	require.Equal(t, []int{0, 1, 1, 3}, c.RowPtr())
	require.Equal(t, []int{0, 0, 2}, c.ColInd())
	require.Equal(t, []float64{5, 2, 7}, c.Values())
}

// TestFromDenseExactZeroPolicy: no epsilon; -0 is zero; tiny and NaN are stored.
func TestFromDenseExactZeroPolicy(t *testing.T) {
	mat := []float64{
		1e-300, math.Copysign(0, -1),
		math.NaN(), math.SmallestNonzeroFloat64,
	}
	c := mustCSR(t, 2, mat)
	require.Equal(t, 3, c.NNZ())
	require.Equal(t, []int{0, 1, 3}, c.RowPtr())
	require.Equal(t, []int{0, 0, 1}, c.ColInd())
	require.Equal(t, 1e-300, c.Values()[0])
	require.True(t, math.IsNaN(c.Values()[1]))
}

// TestFromDenseInvariants checks nnz and sortedness on random inputs.
func TestFromDenseInvariants(t *testing.T) {
	for _, tc := range []struct {
		n       int
		density float64
		seed    int64
	}{
		{1, 0.5, 1}, {7, 0.3, 2}, {32, 0.1, 3}, {64, 0.9, 4}, {50, 0.0, 5}, {40, 1.0, 6},
	} {
		mat := randDense(tc.n, tc.density, tc.seed)
		c := mustCSR(t, tc.n, mat)

		require.Equal(t, countNonZero(mat), c.RowPtr()[tc.n], "nnz invariant")
		require.Len(t, c.RowPtr(), tc.n+1)
		require.Zero(t, c.RowPtr()[0])
		requireSortedRows(t, c)
		require.NoError(t, c.Validate())
	}
}

// TestFromDenseDoesNotAlias ensures later writes to the input are not observed.
func TestFromDenseDoesNotAlias(t *testing.T) {
	mat := []float64{1, 2, 3, 4}
	c := mustCSR(t, 2, mat)
	mat[0] = 100
	require.Equal(t, []float64{1, 2, 3, 4}, c.Values())
}

// TestFromDenseErrors covers dimension and debug-mode length checks.
func TestFromDenseErrors(t *testing.T) {
	_, err := sparse.FromDense(-1, nil)
	require.ErrorIs(t, err, sparse.ErrInvalidDimension)

	_, err = sparse.FromDense(math.MaxInt/2, nil)
	require.ErrorIs(t, err, sparse.ErrAllocation)

	_, err = sparse.FromDense(3, make([]float64, 8), sparse.WithValidation(true))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	// Longer buffers are accepted; only the first n*n cells are read.
	c, err := sparse.FromDense(2, []float64{1, 0, 0, 1, 99}, sparse.WithValidation(true))
	require.NoError(t, err)
	require.Equal(t, 2, c.NNZ())
	require.True(t, c.Validating())
}

// TestFromDenseMatrix checks the *matrix.Dense adapter.
func TestFromDenseMatrix(t *testing.T) {
	d, err := matrix.NewDenseFrom(2, 2, []float64{0, 3, 4, 0})
	require.NoError(t, err)

	c, err := sparse.FromDenseMatrix(d)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, c.RowPtr())
	require.Equal(t, []int{1, 0}, c.ColInd())

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = sparse.FromDenseMatrix(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = sparse.FromDenseMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFromParts covers adoption of valid arrays and each malformed class.
func TestFromParts(t *testing.T) {
	c, err := sparse.FromParts(3, []int{0, 1, 1, 3}, []int{0, 0, 2}, []float64{5, 2, 7})
	require.NoError(t, err)
	require.True(t, c.Equal(mustCSR(t, 3, []float64{5, 0, 0, 0, 0, 0, 2, 0, 7})))

	empty, err := sparse.FromParts(0, []int{0}, nil, nil)
	require.NoError(t, err)
	require.Zero(t, empty.NNZ())

	tests := []struct {
		name   string
		n      int
		rowPtr []int
		colInd []int
		values []float64
		want   error
	}{
		{"negative n", -1, []int{0}, nil, nil, sparse.ErrInvalidDimension},
		{"short rowPtr", 2, []int{0, 1}, []int{0}, []float64{1}, sparse.ErrMalformed},
		{"rowPtr[0] != 0", 1, []int{1, 1}, []int{}, []float64{}, sparse.ErrMalformed},
		{"decreasing rowPtr", 2, []int{0, 2, 1}, []int{0}, []float64{1}, sparse.ErrMalformed},
		{"nnz mismatch", 1, []int{0, 1}, []int{0}, []float64{}, sparse.ErrMalformed},
		{"row exceeds nnz", 2, []int{0, 3, 2}, []int{0, 1}, []float64{1, 2}, sparse.ErrMalformed},
		{"column out of range", 2, []int{0, 1, 1}, []int{2}, []float64{1}, sparse.ErrMalformed},
		{"negative column", 2, []int{0, 1, 1}, []int{-1}, []float64{1}, sparse.ErrMalformed},
		{"unsorted columns", 2, []int{0, 2, 2}, []int{1, 0}, []float64{1, 2}, sparse.ErrMalformed},
		{"duplicate column", 2, []int{0, 2, 2}, []int{1, 1}, []float64{1, 2}, sparse.ErrMalformed},
		{"stored zero", 1, []int{0, 1}, []int{0}, []float64{0}, sparse.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sparse.FromParts(tc.n, tc.rowPtr, tc.colInd, tc.values)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, got)
		})
	}
}
