// Package genmat is a small generic matrix value library built around one
// contract and two storage strategies.
//
// What is genmat?
//
//   - matrix/: Matrix[T] contract, HeapMatrix (runtime-sized, owned buffer),
//     FixedMatrix (shape in the type, inline cells) and the Add operator.
//   - cmd/genmat: demo orchestrator that builds matrices, adds them and prints them.
//
// Quick example:
//
//	a, _ := matrix.NewHeapFrom([][]float64{{1.5, 2}, {0, 1}, {4.5, 3}})
//	b, _ := matrix.NewFixedFrom[float64, matrix.Dims3x2]([][]float64{{0.5, 1}, {2, 3}, {1, 1}})
//	c, err := matrix.Add[float64](a, b) // c is a heap matrix: the left operand decides
//	if errors.Is(err, matrix.ErrShapeMismatch) {
//		// no result
//	}
//
// The left operand's variant performs every addition and determines the
// result's Kind; the right operand is read only through the contract, so any
// pairing of variants works as long as shapes match.
//
// SPDX-License-Identifier: MIT
package genmat
