// Package matrix is a small generic value library for rectangular matrices.
//
// The matrix package provides:
//
//   - Matrix[T], the contract every variant implements: bounds-checked
//     element access, LoadDefaults, Print, shape queries and Add.
//   - HeapMatrix[T], runtime-sized, owning one contiguous buffer with explicit
//     deep copy (Clone, CopyFrom), ownership transfer (Move, MoveFrom) and
//     idempotent teardown (Release).
//   - FixedMatrix[T, D], shape fixed by the type parameter D, cells inline.
//   - Add(a, b), the free operator: the left operand's variant performs the
//     sum and determines the result's Kind, so heap and fixed operands mix.
//
// Shape mismatch is the one recoverable domain error (ErrShapeMismatch).
// Out-of-range indices and use after Release/Move are reported as
// ErrOutOfRange and ErrReleased.
//
// Matrices are not safe for concurrent mutation.
package matrix
