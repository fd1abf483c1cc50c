// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for nil, shape and index checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// validateDims rejects negative dimensions.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("validateDims", ErrInvalidDimensions)
	}

	return nil
}

// offset bounds-checks (row, col) against s and returns the row-major
// offset row*s.Cols + col, or ErrOutOfRange.
func offset(s Shape, row, col int) (int, error) {
	if row < 0 || row >= s.Rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= s.Cols {
		return 0, ErrOutOfRange
	}

	return row*s.Cols + col, nil
}
