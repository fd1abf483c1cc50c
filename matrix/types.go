// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every matrix variant.
// This file contains ONLY the element constraint, the shape value, the
// variant tag and the public Matrix contract. Errors, options and the
// concrete variants live in dedicated files.
package matrix

import (
	"fmt"
	"io"
)

// Number is the element constraint: any type with a native "+" and a
// meaningful zero value.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Shape is the (rows, cols) pair identifying a matrix's dimensions.
type Shape struct {
	Rows int // number of rows (>= 0)
	Cols int // number of columns (>= 0)
}

// Cells returns Rows*Cols.
func (s Shape) Cells() int { return s.Rows * s.Cols }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Kind tags the storage strategy behind a Matrix.
type Kind uint8

const (
	// KindHeap marks a runtime-sized matrix owning a heap buffer.
	KindHeap Kind = iota + 1
	// KindFixed marks a matrix whose shape is a type parameter and whose cells live inline.
	KindFixed
)

// String returns "heap", "fixed" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindHeap:
		return "heap"
	case KindFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Matrix is the capability contract every variant implements.
// Both operands of Add are read only through this interface, which is what
// lets heap and fixed matrices be mixed freely.
//
// Complexity notes: all methods are O(1) except LoadDefaults, Add and Print (O(r*c)).
type Matrix[T Number] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Shape packs Rows and Cols.
	Shape() Shape

	// Kind reports the concrete storage strategy.
	Kind() Kind

	// LoadDefaults resets every element to the zero value of T.
	LoadDefaults()

	// At retrieves the element at (row, col).
	// Returns ErrOutOfRange if row or col is outside the shape.
	At(row, col int) (T, error)

	// Set assigns v at (row, col).
	// Returns ErrOutOfRange if row or col is outside the shape.
	Set(row, col int, v T) error

	// Add returns a newly allocated element-wise sum of the receiver and other.
	// The result has the receiver's Kind. Returns ErrShapeMismatch (and a nil
	// Matrix) when shapes differ. Neither operand is mutated.
	Add(other Matrix[T]) (Matrix[T], error)

	// Print writes the matrix as rows of right-aligned fixed-width fields.
	Print(w io.Writer, opts ...PrintOption) error

	fmt.Stringer
}
