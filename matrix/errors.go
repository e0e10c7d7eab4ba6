// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with call-site context); tests match them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) when context is needed.

var (
	// ErrInvalidDimensions indicates that a requested dimension is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when a buffer does not match rows*cols, or when
	// row slices handed to NewDenseRows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two operands with different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
