// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/genmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil[int](MustHeap(t, [][]int{{1}})))
}

func TestValidateSameShape(t *testing.T) {
	a := MustHeap(t, [][]int{{1, 2}})
	require.NoError(t, matrix.ValidateSameShape[int](a, MustHeap(t, [][]int{{3, 4}})))

	err := matrix.ValidateSameShape[int](a, MustHeap(t, [][]int{{1}, {2}}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Contains(t, err.Error(), "Rows")

	err = matrix.ValidateSameShape[int](a, MustHeap(t, [][]int{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Contains(t, err.Error(), "Columns")
}
