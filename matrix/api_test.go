// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/genmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd_HeapPlusFixed_Float is the float demo: A (heap 3x2) + B (fixed 3x2).
func TestAdd_HeapPlusFixed_Float(t *testing.T) {
	a := MustHeap(t, rowsA)
	b := MustFixedFrom[float32, matrix.Dims3x2](t, rowsB)

	c, err := matrix.Add[float32](a, b)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, matrix.KindHeap, c.Kind())
	assert.Equal(t, rowsC, MustRows(t, c))
}

// TestAdd_FixedPlusHeap_Int is the int demo: D (fixed 2x2) + E (heap 2x2).
func TestAdd_FixedPlusHeap_Int(t *testing.T) {
	d := MustFixedFrom[int, matrix.Dims2x2](t, rowsD)
	e := MustHeap(t, rowsE)

	f, err := matrix.Add[int](d, e)
	require.NoError(t, err)

	assert.Equal(t, matrix.KindFixed, f.Kind())
	assert.Equal(t, matrix.Shape{Rows: 2, Cols: 2}, f.Shape())
	assert.Equal(t, rowsF, MustRows(t, f))
}

// TestAdd_ShapeMismatch checks the no-result signal and that operands stay intact.
func TestAdd_ShapeMismatch(t *testing.T) {
	a := MustHeap(t, [][]int{{1, 2}, {0, 1}, {4, 3}})
	d := MustFixedFrom[int, matrix.Dims2x2](t, rowsD)

	res, err := matrix.Add[int](a, d)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	assert.Nil(t, res)

	res, err = matrix.Sum[int](d, a)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	assert.Nil(t, res)

	assert.Equal(t, [][]int{{1, 2}, {0, 1}, {4, 3}}, MustRows[int](t, a))
	assert.Equal(t, rowsD, MustRows[int](t, d))
}

// TestAdd_Nil ensures nil operands are rejected.
func TestAdd_Nil(t *testing.T) {
	a := MustHeap(t, [][]int{{1}})

	_, err := matrix.Add[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add[int](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAdd_ElementwiseAndCommutative checks the sum law on random data for
// every pairing of variants, through both the fast and the fallback paths.
func TestAdd_ElementwiseAndCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	fill := func(m matrix.Matrix[int64]) {
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				require.NoError(t, m.Set(i, j, rng.Int63n(1000)-500))
			}
		}
	}

	newHeap := func() matrix.Matrix[int64] {
		m, err := matrix.NewHeap[int64](3, 3)
		require.NoError(t, err)
		fill(m)
		return m
	}
	newFixed := func() matrix.Matrix[int64] {
		m := matrix.MustFixed[int64, matrix.Dims3x3]()
		fill(m)
		return m
	}

	cases := []struct {
		name     string
		a, b     matrix.Matrix[int64]
		wantKind matrix.Kind
	}{
		{"heap+heap", newHeap(), newHeap(), matrix.KindHeap},
		{"heap+fixed", newHeap(), newFixed(), matrix.KindHeap},
		{"fixed+heap", newFixed(), newHeap(), matrix.KindFixed},
		{"fixed+fixed", newFixed(), newFixed(), matrix.KindFixed},
		{"heap+hidden", newHeap(), hide[int64]{newHeap()}, matrix.KindHeap},
		{"fixed+hidden", newFixed(), hide[int64]{newFixed()}, matrix.KindFixed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ab, err := matrix.Add(tc.a, tc.b)
			require.NoError(t, err)
			ba, err := matrix.Add(tc.b, tc.a)
			require.NoError(t, err)

			assert.Equal(t, tc.wantKind, ab.Kind())
			assert.True(t, matrix.Equal(ab, ba), "a+b != b+a")
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					want := MustAt(t, tc.a, i, j) + MustAt(t, tc.b, i, j)
					assert.Equal(t, want, MustAt(t, ab, i, j))
				}
			}
		})
	}
}

// TestAdd_ResultIsIndependent ensures the sum owns fresh storage.
func TestAdd_ResultIsIndependent(t *testing.T) {
	a := MustHeap(t, [][]int{{1, 2}})
	b := MustHeap(t, [][]int{{3, 4}})

	sum, err := matrix.Add[int](a, b)
	require.NoError(t, err)
	require.NoError(t, sum.Set(0, 0, 100))

	assert.Equal(t, 1, MustAt[int](t, a, 0, 0))
	assert.Equal(t, 3, MustAt[int](t, b, 0, 0))
}

// TestEqual covers shape and value comparisons across variants.
func TestEqual(t *testing.T) {
	h := MustHeap(t, rowsD)
	f := MustFixedFrom[int, matrix.Dims2x2](t, rowsD)

	assert.True(t, matrix.Equal[int](h, f))
	require.NoError(t, h.Set(0, 0, 0))
	assert.False(t, matrix.Equal[int](h, f))
	assert.False(t, matrix.Equal[int](h, MustHeap(t, [][]int{{10, 20}})))
	assert.False(t, matrix.Equal[int](nil, f))
}
