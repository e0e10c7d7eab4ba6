// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for nil and shape checks.
//  - Return sentinel errors wrapped only with the validator tag so call sites
//    can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
//
// Returns ErrNilMatrix if m == nil.
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDims checks that rows and cols are non-negative and that
// rows*cols fits in an int.
//
// Returns ErrInvalidDimensions otherwise.
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}
	if rows != 0 && cols > math.MaxInt/rows {
		return validatorErrorf("ValidateDims",
			fmt.Errorf("%d*%d overflows int: %w", rows, cols, ErrInvalidDimensions))
	}

	return nil
}

// ValidateBuffer checks the Dense invariant len(buf) == rows*cols.
//
// Errors:
//   - ErrInvalidDimensions if ValidateDims fails.
//   - ErrBadShape if the length does not match.
func ValidateBuffer(buf []uint8, rows, cols int) error {
	if err := ValidateDims(rows, cols); err != nil {
		return validatorErrorf("ValidateBuffer", err)
	}
	if len(buf) != rows*cols {
		return validatorErrorf("ValidateBuffer",
			fmt.Errorf("len %d != %d*%d: %w", len(buf), rows, cols, ErrBadShape))
	}

	return nil
}
