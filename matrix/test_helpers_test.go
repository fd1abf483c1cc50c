// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for both variants.
//   • Offer a wrapper that hides the concrete type to force generic paths.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/genmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based fallback loop in Add.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustHeap builds a heap matrix from literal rows or fails the test.
func MustHeap[T matrix.Number](t *testing.T, rows [][]T) *matrix.HeapMatrix[T] {
	t.Helper()
	m, err := matrix.NewHeapFrom(rows)
	require.NoError(t, err)

	return m
}

// MustFixedFrom builds a fixed matrix of shape D from literal rows or fails the test.
func MustFixedFrom[T matrix.Number, D matrix.Dims](t *testing.T, rows [][]T) *matrix.FixedMatrix[T, D] {
	t.Helper()
	m, err := matrix.NewFixedFrom[T, D](rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](t *testing.T, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustRows snapshots m as [][]T or fails the test.
func MustRows[T matrix.Number](t *testing.T, m matrix.Matrix[T]) [][]T {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

// Fixtures from the float/int demo.
var (
	rowsA = [][]float32{{1.5, 2.0}, {0.0, 1.0}, {4.5, 3.0}}
	rowsB = [][]float32{{0.5, 1.0}, {2.0, 3.0}, {1.0, 1.0}}
	rowsC = [][]float32{{2.0, 3.0}, {2.0, 4.0}, {5.5, 4.0}}
	rowsD = [][]int{{10, 20}, {30, 40}}
	rowsE = [][]int{{5, 4}, {3, 2}}
	rowsF = [][]int{{15, 24}, {33, 42}}
)
