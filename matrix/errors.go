// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation
// returns these sentinels (optionally wrapped with call-site context via %w)
// and tests match them with errors.Is. No operation panics on user input;
// panics are reserved for Must* helpers and invalid option values.

package matrix

import "errors"

// Every message is prefixed with "matrix: " for easy grepping.
// ErrShapeMismatch is the only domain-level recoverable condition; the rest
// report misuse that an unchecked implementation would leave undefined.

var (
	// ErrShapeMismatch is returned by Add when the operands' rows or columns differ.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates a negative dimension, or a fixed shape
	// that does not fit FixedCapacity.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrNilMatrix indicates that a nil Matrix (receiver or operand) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates element access on a HeapMatrix whose storage was
	// released or moved out.
	ErrReleased = errors.New("matrix: storage released")

	// ErrNilWriter indicates Print was called with a nil io.Writer.
	ErrNilWriter = errors.New("matrix: nil writer")

	// ErrRaggedRows indicates literal rows of unequal length.
	ErrRaggedRows = errors.New("matrix: ragged rows")
)
