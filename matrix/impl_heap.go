// SPDX-License-Identifier: MIT

// Package matrix - HeapMatrix: runtime-sized, exclusively owned row-major buffer.
//
// Purpose:
//   - Own one contiguous buffer of rows*cols elements (offset = i*cols + j).
//   - Make ownership explicit: Clone/CopyFrom duplicate, Move/MoveFrom transfer
//     and empty the source, Release tears down exactly once.
//   - Turn misuse into errors: out-of-range indices and access after
//     Release/Move return sentinels instead of reading stale memory.
//
// Lifecycle:
//
//	NewHeap ──► live ──Move/MoveFrom(as source)/Release──► released (0x0, no storage)
//	               ▲                                            │
//	               └────────── CopyFrom/MoveFrom(as target) ────┘
//
// Complexity quicksheet:
//   - NewHeap: O(r*c) (runtime zero-fill); At/Set: O(1); Clone/CopyFrom: O(r*c);
//     Move/MoveFrom/Release: O(1); Add: O(r*c).

package matrix

import (
	"fmt"
	"io"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAdd      = "Add"
	ctxPrint    = "Print"
	ctxCopyFrom = "CopyFrom"
)

// heapErrorf wraps an error with a uniform HeapMatrix context and callsite indices.
func heapErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("HeapMatrix.%s(%d,%d): %w", method, row, col, err)
}

// HeapMatrix is a runtime-sized matrix owning its element buffer.
//   - r,c hold dimensions; both are zero once released.
//   - data is a flat buffer of length r*c in row-major order.
//   - released marks storage that was moved out or torn down.
type HeapMatrix[T Number] struct {
	r, c     int  // row and column counts (>= 0)
	data     []T  // contiguous row-major storage (len == r*c), nil once released
	released bool // true after Release or after being the source of a move
}

// Compile-time assertion for interface conformance.
var _ Matrix[float64] = (*HeapMatrix[float64])(nil)

// NewHeap allocates a rows×cols heap matrix.
//
// Inputs:
//   - rows, cols: non-negative dimensions (0×N and N×0 are legal, empty matrices).
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions.
//
// Notes:
//   - No LoadDefaults pass runs here. The Go allocator hands out zeroed
//     memory, so a fresh matrix reads as zeros; callers wanting an explicit
//     reset still call LoadDefaults.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewHeap[T Number](rows, cols int) (*HeapMatrix[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("NewHeap(%d,%d): %w", rows, cols, err)
	}

	return newHeap[T](rows, cols), nil
}

// newHeap is the unchecked constructor used after validation.
func newHeap[T Number](rows, cols int) *HeapMatrix[T] {
	return &HeapMatrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewHeapFrom builds a heap matrix from literal rows (copied).
// An empty slice yields a 0×0 matrix.
//
// Errors:
//   - ErrRaggedRows if rows differ in length.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewHeapFrom[T Number](rows [][]T) (*HeapMatrix[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := newHeap[T](r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewHeapFrom: row %d has %d cells, want %d: %w", i, len(row), c, ErrRaggedRows)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count (0 for a nil or released matrix).
func (m *HeapMatrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for a nil or released matrix).
func (m *HeapMatrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols().
func (m *HeapMatrix[T]) Shape() Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

// Kind reports KindHeap.
func (m *HeapMatrix[T]) Kind() Kind { return KindHeap }

// Released reports whether the storage was torn down or moved out.
func (m *HeapMatrix[T]) Released() bool { return m == nil || m.released }

// LoadDefaults resets every element to the zero value of T.
// No-op on a released matrix.
// Complexity: O(r*c).
func (m *HeapMatrix[T]) LoadDefaults() {
	if m.Released() {
		return
	}
	clear(m.data)
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrReleased after Release/Move.
//   - ErrOutOfRange for invalid indices.
//
// Complexity: O(1).
func (m *HeapMatrix[T]) At(row, col int) (T, error) {
	var zero T
	if m.Released() {
		return zero, heapErrorf(ctxAt, row, col, ErrReleased)
	}
	off, err := offset(m.Shape(), row, col)
	if err != nil {
		return zero, heapErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrReleased after Release/Move.
//   - ErrOutOfRange for invalid indices.
//
// Complexity: O(1).
func (m *HeapMatrix[T]) Set(row, col int, v T) error {
	if m.Released() {
		return heapErrorf(ctxSet, row, col, ErrReleased)
	}
	off, err := offset(m.Shape(), row, col)
	if err != nil {
		return heapErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent deep copy (copy construction).
// Cloning a released matrix yields a live 0×0 matrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *HeapMatrix[T]) Clone() *HeapMatrix[T] {
	if m.Released() {
		return newHeap[T](0, 0)
	}
	cp := newHeap[T](m.r, m.c)
	copy(cp.data, m.data)

	return cp
}

// CopyFrom replaces m's contents with a deep copy of src (copy assignment).
//
// Behavior highlights:
//   - Self-assignment (m == src) is a no-op.
//   - Previously owned storage is dropped before the new buffer is allocated.
//   - A released m becomes live again with src's shape.
//
// Errors:
//   - ErrNilMatrix if m or src is nil.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *HeapMatrix[T]) CopyFrom(src *HeapMatrix[T]) error {
	if m == nil || src == nil {
		return fmt.Errorf("HeapMatrix.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}

	m.Release()
	rows, cols := src.Rows(), src.Cols()
	m.r, m.c = rows, cols
	m.data = make([]T, rows*cols)
	copy(m.data, src.data)
	m.released = false

	return nil
}

// Move transfers m's storage and shape into a new HeapMatrix (move construction).
// Afterwards m reports 0×0, holds no storage and is safe to Release again.
// Complexity: O(1).
func (m *HeapMatrix[T]) Move() *HeapMatrix[T] {
	out := &HeapMatrix[T]{}
	out.MoveFrom(m)

	return out
}

// MoveFrom transfers src's storage and shape into m (move assignment).
// m's previous storage is dropped; src ends released. Self-move and a nil
// src are no-ops.
// Complexity: O(1).
func (m *HeapMatrix[T]) MoveFrom(src *HeapMatrix[T]) {
	if m == nil || src == nil || m == src {
		return
	}

	m.Release()
	m.r, m.c, m.data, m.released = src.r, src.c, src.data, src.released

	src.r, src.c, src.data = 0, 0, nil
	src.released = true
}

// Release tears the storage down. Idempotent: releasing an already released
// or moved-from matrix is a no-op.
// Complexity: O(1).
func (m *HeapMatrix[T]) Release() {
	if m == nil {
		return
	}
	m.r, m.c, m.data = 0, 0, nil
	m.released = true
}

// Add returns a new HeapMatrix holding m + other, element-wise.
//
// Implementation:
//   - Stage 1: validate receiver/operand (nil, released) and shape via the contract.
//   - Stage 2: allocate the result (same shape, KindHeap).
//   - Stage 3: flat loop when other is a live *HeapMatrix[T]; otherwise i→j
//     reading other through At (covers FixedMatrix operands).
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrShapeMismatch. The returned Matrix is nil on error.
//
// Complexity: Time O(r*c), Space O(r*c). Neither operand is mutated.
func (m *HeapMatrix[T]) Add(other Matrix[T]) (Matrix[T], error) {
	if m == nil {
		return nil, fmt.Errorf("HeapMatrix.%s: %w", ctxAdd, ErrNilMatrix)
	}
	if err := ValidateNotNil(other); err != nil {
		return nil, fmt.Errorf("HeapMatrix.%s: %w", ctxAdd, err)
	}
	if m.released {
		return nil, fmt.Errorf("HeapMatrix.%s: %w", ctxAdd, ErrReleased)
	}
	oh, isHeap := other.(*HeapMatrix[T])
	if isHeap && oh.Released() {
		return nil, fmt.Errorf("HeapMatrix.%s: operand: %w", ctxAdd, ErrReleased)
	}
	if err := ValidateSameShape[T](m, other); err != nil {
		return nil, fmt.Errorf("HeapMatrix.%s: %w", ctxAdd, err)
	}

	res := newHeap[T](m.r, m.c)

	// Fast path: both buffers are flat and identically laid out.
	if isHeap {
		for idx := range res.data {
			res.data[idx] = m.data[idx] + oh.data[idx]
		}

		return res, nil
	}

	var (
		i, j int
		bv   T
		err  error
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if bv, err = other.At(i, j); err != nil {
				return nil, fmt.Errorf("HeapMatrix.%s: %w", ctxAdd, err)
			}
			res.data[i*m.c+j] = m.data[i*m.c+j] + bv
		}
	}

	return res, nil
}

// Print writes the grid to w. See WithWidth, WithPrecision, WithLanguage.
// Errors: ErrReleased, ErrNilWriter, or the writer's error.
func (m *HeapMatrix[T]) Print(w io.Writer, opts ...PrintOption) error {
	if m.Released() {
		return fmt.Errorf("HeapMatrix.%s: %w", ctxPrint, ErrReleased)
	}
	if err := render(w, m.Shape(), m.data, opts...); err != nil {
		return fmt.Errorf("HeapMatrix.%s: %w", ctxPrint, err)
	}

	return nil
}

// String implements fmt.Stringer with the default Print layout.
// A released matrix renders as an empty string.
func (m *HeapMatrix[T]) String() string {
	if m.Released() {
		return ""
	}

	return renderString(m.Shape(), m.data)
}
