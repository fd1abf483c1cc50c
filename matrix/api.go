// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide the free binary addition operator over the Matrix contract.
//   - Keep dispatch singular: the LEFT operand's concrete variant runs the
//     algorithm and decides the result's Kind; the right operand is only
//     read through the contract.
//
// Any pairing is legal as long as shapes match:
//
//	heap  + heap  → heap
//	heap  + fixed → heap
//	fixed + heap  → fixed
//	fixed + fixed → fixed

package matrix

import "fmt"

// opAdd is the call-site tag for the free operator.
const opAdd = "Add"

// matrixErrorf wraps err with a facade tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a + b by forwarding to a.Add(b).
//
// Returns:
//   - a freshly allocated Matrix of a's Kind, owned by the caller.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrShapeMismatch if shapes differ (the no-result signal; the Matrix is nil).
//
// Complexity: O(r*c).
func Add[T Number](a, b Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := a.Add(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return res, nil
}

// Sum is an alias for Add.
func Sum[T Number](a, b Matrix[T]) (Matrix[T], error) { return Add(a, b) }

// Equal reports whether a and b have the same shape and identical elements.
// Variants may differ. A nil operand, or an At error on either side, yields false.
// Complexity: O(r*c).
func Equal[T Number](a, b Matrix[T]) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// ToRows copies m into a freshly allocated [][]T, row by row.
// Complexity: O(r*c).
func ToRows[T Number](m Matrix[T]) ([][]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	out := make([][]T, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToRows", err)
			}
		}
	}

	return out, nil
}
