// SPDX-License-Identifier: MIT

// Package matrix - FixedMatrix: shape carried by a type parameter, cells inline.
//
// Purpose:
//   - Encode the shape in the type (D Dims) so two FixedMatrix values of the
//     same type always agree on rows/cols.
//   - Keep the cells in an inline array: a FixedMatrix declared as a local
//     value performs no allocation, and plain assignment is a deep copy.
//
// Notes:
//   - Go generics cannot size an array from a type parameter, so storage is a
//     fixed-capacity array of FixedCapacity cells of which Rows*Cols are used.
//   - Add still re-checks shapes at runtime: the operand arrives through the
//     Matrix contract and may be any variant.

package matrix

import (
	"fmt"
	"io"
)

// FixedCapacity is the number of inline cells every FixedMatrix carries.
// A Dims type whose Rows*Cols exceeds it is rejected with ErrInvalidDimensions.
const FixedCapacity = 64

// Dims reports a compile-time shape. Implementations are zero-size value
// types whose methods return constants; see Dims2x2 and friends.
type Dims interface {
	Rows() int
	Cols() int
}

// Predefined shapes.
type (
	Dims1x1 struct{} // 1×1
	Dims2x2 struct{} // 2×2
	Dims2x3 struct{} // 2×3
	Dims3x2 struct{} // 3×2
	Dims3x3 struct{} // 3×3
	Dims4x4 struct{} // 4×4
)

func (Dims1x1) Rows() int { return 1 }
func (Dims1x1) Cols() int { return 1 }
func (Dims2x2) Rows() int { return 2 }
func (Dims2x2) Cols() int { return 2 }
func (Dims2x3) Rows() int { return 2 }
func (Dims2x3) Cols() int { return 3 }
func (Dims3x2) Rows() int { return 3 }
func (Dims3x2) Cols() int { return 2 }
func (Dims3x3) Rows() int { return 3 }
func (Dims3x3) Cols() int { return 3 }
func (Dims4x4) Rows() int { return 4 }
func (Dims4x4) Cols() int { return 4 }

// fixedErrorf wraps an error with a uniform FixedMatrix context and callsite indices.
func fixedErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("FixedMatrix.%s(%d,%d): %w", method, row, col, err)
}

// FixedMatrix is a matrix of shape D with inline storage.
// The zero value is ready to use and reads as zeros.
//
// Every value carries FixedCapacity cells of T whatever D is, so a Dims1x1
// matrix occupies as much memory as a Dims4x4 one, and a D with more than
// FixedCapacity cells (9×9, say) cannot be built. Use HeapMatrix for those.
type FixedMatrix[T Number, D Dims] struct {
	cells [FixedCapacity]T // row-major; only the first Rows*Cols cells are used
}

// Compile-time assertion for interface conformance.
var _ Matrix[float64] = (*FixedMatrix[float64, Dims3x2])(nil)

// NewFixed returns a zeroed FixedMatrix after checking that D fits FixedCapacity.
//
// Errors:
//   - ErrInvalidDimensions if D reports a negative dimension or too many cells.
//
// Complexity: O(1) beyond the zeroed array.
func NewFixed[T Number, D Dims]() (*FixedMatrix[T, D], error) {
	m := &FixedMatrix[T, D]{}
	if _, err := m.dims(); err != nil {
		return nil, fmt.Errorf("NewFixed: %w", err)
	}

	return m, nil
}

// MustFixed is NewFixed that panics on an unusable D. Intended for package-level
// literals and tests where D is a known-good shape.
func MustFixed[T Number, D Dims]() *FixedMatrix[T, D] {
	m, err := NewFixed[T, D]()
	if err != nil {
		panic(err)
	}

	return m
}

// NewFixedFrom builds a FixedMatrix from literal rows whose shape must equal D.
//
// Errors:
//   - ErrInvalidDimensions (D unusable), ErrRaggedRows, ErrShapeMismatch.
//
// Complexity: O(r*c).
func NewFixedFrom[T Number, D Dims](rows [][]T) (*FixedMatrix[T, D], error) {
	m, err := NewFixed[T, D]()
	if err != nil {
		return nil, err
	}
	s := m.Shape()
	if len(rows) != s.Rows {
		return nil, fmt.Errorf("NewFixedFrom: got %d rows, want %d: %w", len(rows), s.Rows, ErrShapeMismatch)
	}
	for i, row := range rows {
		if len(row) != s.Cols {
			return nil, fmt.Errorf("NewFixedFrom: row %d has %d cells, want %d: %w", i, len(row), s.Cols, ErrRaggedRows)
		}
		copy(m.cells[i*s.Cols:(i+1)*s.Cols], row)
	}

	return m, nil
}

// dims resolves D's shape and checks it against FixedCapacity.
func (m *FixedMatrix[T, D]) dims() (Shape, error) {
	s := m.Shape()
	if err := validateDims(s.Rows, s.Cols); err != nil {
		return s, err
	}
	if s.Cells() > FixedCapacity {
		return s, validatorErrorf("FixedCapacity", ErrInvalidDimensions)
	}

	return s, nil
}

// Rows returns D's row count.
func (m *FixedMatrix[T, D]) Rows() int {
	var d D
	return d.Rows()
}

// Cols returns D's column count.
func (m *FixedMatrix[T, D]) Cols() int {
	var d D
	return d.Cols()
}

// Shape packs Rows() and Cols().
func (m *FixedMatrix[T, D]) Shape() Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

// Kind reports KindFixed.
func (m *FixedMatrix[T, D]) Kind() Kind { return KindFixed }

// LoadDefaults resets every cell to the zero value of T. No-op on nil.
func (m *FixedMatrix[T, D]) LoadDefaults() {
	if m == nil {
		return
	}
	clear(m.cells[:])
}

// At returns the value at (row, col).
// Errors: ErrNilMatrix, ErrInvalidDimensions (unusable D), ErrOutOfRange.
// Complexity: O(1).
func (m *FixedMatrix[T, D]) At(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, fixedErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	s, err := m.dims()
	if err != nil {
		return zero, fixedErrorf(ctxAt, row, col, err)
	}
	off, err := offset(s, row, col)
	if err != nil {
		return zero, fixedErrorf(ctxAt, row, col, err)
	}

	return m.cells[off], nil
}

// Set stores v at (row, col).
// Errors: ErrNilMatrix, ErrInvalidDimensions (unusable D), ErrOutOfRange.
// Complexity: O(1).
func (m *FixedMatrix[T, D]) Set(row, col int, v T) error {
	if m == nil {
		return fixedErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	s, err := m.dims()
	if err != nil {
		return fixedErrorf(ctxSet, row, col, err)
	}
	off, err := offset(s, row, col)
	if err != nil {
		return fixedErrorf(ctxSet, row, col, err)
	}
	m.cells[off] = v

	return nil
}

// Clone returns a copy of m. Equivalent to `cp := *m; return &cp`.
// The clone of a nil matrix is nil.
func (m *FixedMatrix[T, D]) Clone() *FixedMatrix[T, D] {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

// Add returns a new FixedMatrix[T, D] holding m + other, element-wise.
//
// Implementation:
//   - Stage 1: validate operand and compare other's reported shape with D.
//   - Stage 2: flat loop when other has the same concrete type; otherwise
//     i→j reading other through At (covers HeapMatrix operands).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrShapeMismatch, or an operand At
//     error (e.g. ErrReleased). The returned Matrix is nil on error.
//
// Complexity: Time O(r*c). Neither operand is mutated.
func (m *FixedMatrix[T, D]) Add(other Matrix[T]) (Matrix[T], error) {
	if m == nil {
		return nil, fmt.Errorf("FixedMatrix.%s: %w", ctxAdd, ErrNilMatrix)
	}
	if err := ValidateNotNil(other); err != nil {
		return nil, fmt.Errorf("FixedMatrix.%s: %w", ctxAdd, err)
	}
	s, err := m.dims()
	if err != nil {
		return nil, fmt.Errorf("FixedMatrix.%s: %w", ctxAdd, err)
	}
	if err = ValidateSameShape[T](m, other); err != nil {
		return nil, fmt.Errorf("FixedMatrix.%s: %w", ctxAdd, err)
	}

	res := &FixedMatrix[T, D]{}
	n := s.Cells()

	// Fast path: same concrete type, same inline layout.
	if of, ok := other.(*FixedMatrix[T, D]); ok && of != nil {
		for idx := 0; idx < n; idx++ {
			res.cells[idx] = m.cells[idx] + of.cells[idx]
		}

		return res, nil
	}

	var (
		i, j int
		bv   T
	)
	for i = 0; i < s.Rows; i++ {
		for j = 0; j < s.Cols; j++ {
			if bv, err = other.At(i, j); err != nil {
				return nil, fmt.Errorf("FixedMatrix.%s: %w", ctxAdd, err)
			}
			res.cells[i*s.Cols+j] = m.cells[i*s.Cols+j] + bv
		}
	}

	return res, nil
}

// Print writes the grid to w. See WithWidth, WithPrecision, WithLanguage.
func (m *FixedMatrix[T, D]) Print(w io.Writer, opts ...PrintOption) error {
	if m == nil {
		return fmt.Errorf("FixedMatrix.%s: %w", ctxPrint, ErrNilMatrix)
	}
	s, err := m.dims()
	if err != nil {
		return fmt.Errorf("FixedMatrix.%s: %w", ctxPrint, err)
	}
	if err = render(w, s, m.cells[:s.Cells()], opts...); err != nil {
		return fmt.Errorf("FixedMatrix.%s: %w", ctxPrint, err)
	}

	return nil
}

// String implements fmt.Stringer with the default Print layout.
// A nil or unusable matrix renders as "".
func (m *FixedMatrix[T, D]) String() string {
	if m == nil {
		return ""
	}
	s, err := m.dims()
	if err != nil {
		return ""
	}

	return renderString(s, m.cells[:s.Cells()])
}
