// Package matrix_test contains unit tests for FixedMatrix.
package matrix_test

import (
	"testing"
	"unsafe"

	"github.com/katalvlaran/genmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dims9x9 does not fit FixedCapacity.
type dims9x9 struct{}

func (dims9x9) Rows() int { return 9 }
func (dims9x9) Cols() int { return 9 }

// TestFixedShapeFromType verifies the shape comes from D.
func TestFixedShapeFromType(t *testing.T) {
	m, err := matrix.NewFixed[float64, matrix.Dims2x3]()
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, matrix.KindFixed, m.Kind())
}

// TestFixedTooLarge ensures shapes beyond FixedCapacity are rejected.
func TestFixedTooLarge(t *testing.T) {
	_, err := matrix.NewFixed[int, dims9x9]()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	assert.Panics(t, func() { matrix.MustFixed[int, dims9x9]() })

	var zero matrix.FixedMatrix[int, dims9x9]
	_, err = zero.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFixedZeroValueUsable checks a declared value works without a constructor.
func TestFixedZeroValueUsable(t *testing.T) {
	var m matrix.FixedMatrix[int, matrix.Dims2x2]
	require.NoError(t, m.Set(1, 1, 5))
	assert.Equal(t, 5, MustAt[int](t, &m, 1, 1))
	assert.Equal(t, 0, MustAt[int](t, &m, 0, 0))
}

// TestFixedLoadDefaults resets every cell.
func TestFixedLoadDefaults(t *testing.T) {
	m := MustFixedFrom[int, matrix.Dims2x2](t, rowsD)
	m.LoadDefaults()

	assert.Equal(t, [][]int{{0, 0}, {0, 0}}, MustRows[int](t, m))
}

// TestFixedAtSetOutOfRange ensures bounds are enforced against D, not the capacity.
func TestFixedAtSetOutOfRange(t *testing.T) {
	m := matrix.MustFixed[float64, matrix.Dims3x2]()

	_, err := m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	assert.Contains(t, m.Set(-1, 0, 1).Error(), "FixedMatrix.Set(-1,0)")
}

// TestFixedValueCopyIsDeep checks that plain assignment duplicates the cells.
func TestFixedValueCopyIsDeep(t *testing.T) {
	a := MustFixedFrom[int, matrix.Dims2x2](t, rowsD)
	b := *a
	require.NoError(t, b.Set(0, 0, -1))
	assert.Equal(t, 10, MustAt[int](t, a, 0, 0))

	c := a.Clone()
	require.NoError(t, c.Set(1, 1, -1))
	assert.Equal(t, 40, MustAt[int](t, a, 1, 1))
}

// TestNewFixedFromShape rejects literals that disagree with D.
func TestNewFixedFromShape(t *testing.T) {
	_, err := matrix.NewFixedFrom[int, matrix.Dims2x2]([][]int{{1, 2}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.NewFixedFrom[int, matrix.Dims2x2]([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// TestFixedAddResultIsFixed checks fixed+fixed and fixed+heap produce fixed results.
func TestFixedAddResultIsFixed(t *testing.T) {
	d := MustFixedFrom[int, matrix.Dims2x2](t, rowsD)
	operands := map[string]matrix.Matrix[int]{
		"fixed":  MustFixedFrom[int, matrix.Dims2x2](t, rowsE),
		"heap":   MustHeap(t, rowsE),
		"hidden": hide[int]{MustHeap(t, rowsE)},
	}

	for name, operand := range operands {
		t.Run(name, func(t *testing.T) {
			sum, err := d.Add(operand)
			require.NoError(t, err)
			assert.Equal(t, matrix.KindFixed, sum.Kind())
			assert.Equal(t, matrix.Shape{Rows: 2, Cols: 2}, sum.Shape())
			assert.Equal(t, rowsF, MustRows(t, sum))
			_, isFixed := sum.(*matrix.FixedMatrix[int, matrix.Dims2x2])
			assert.True(t, isFixed)
		})
	}
}

// TestFixedAddMismatchAgainstHeap re-checks the runtime shape of the operand.
func TestFixedAddMismatchAgainstHeap(t *testing.T) {
	d := MustFixedFrom[int, matrix.Dims2x2](t, rowsD)
	wide := MustHeap(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	sum, err := d.Add(wide)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	assert.Nil(t, sum)
	assert.Equal(t, rowsD, MustRows[int](t, d))
}

// TestFixedAddReleasedHeapOperand surfaces the operand's access error.
func TestFixedAddReleasedHeapOperand(t *testing.T) {
	one := MustFixedFrom[int, matrix.Dims1x1](t, [][]int{{1}})
	h := MustHeap(t, [][]int{{1}})
	released := hide[int]{h}
	h.Release()

	_, err := one.Add(released)
	// the hidden heap now reports 0x0, so the shape check fires first
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestFixedNilReceiver ensures a nil *FixedMatrix reports errors instead of panicking.
func TestFixedNilReceiver(t *testing.T) {
	var m *matrix.FixedMatrix[int, matrix.Dims2x2]

	assert.NotPanics(t, m.LoadDefaults)
	assert.NotPanics(t, func() { assert.Nil(t, m.Clone()) })
	assert.NotPanics(t, func() { assert.Equal(t, "", m.String()) })

	require.ErrorIs(t, m.Print(&nopWriter{}), matrix.ErrNilMatrix)
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
	_, err = m.Add(MustHeap(t, rowsD))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFixedFootprintIsCapacity checks every shape shares the same inline size.
func TestFixedFootprintIsCapacity(t *testing.T) {
	var small matrix.FixedMatrix[int64, matrix.Dims1x1]
	var large matrix.FixedMatrix[int64, matrix.Dims4x4]

	assert.Equal(t, unsafe.Sizeof(large), unsafe.Sizeof(small))
	assert.Equal(t, uintptr(matrix.FixedCapacity*8), unsafe.Sizeof(small))
}
