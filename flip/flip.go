// SPDX-License-Identifier: MIT

package flip

import (
	"fmt"

	"github.com/katalvlaran/bytegrid/matrix"
)

// operation tags used in error wrappers
const (
	opH = "flip.H"
	opV = "flip.V"
)

// flipErrorf wraps an underlying error with the operation tag.
func flipErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// H returns a new matrix whose columns are in reverse order within each row.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate a Dense of the same shape.
//   - Stage 2: *Dense → reverse each row on the flat buffers;
//     otherwise read m through At(i, cols-1-j).
//
// Behavior highlights:
//   - rows==0 or cols==0 returns an empty matrix of the same shape.
//   - cols==1 returns a copy equal to m.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - Any error from m.At on non-Dense implementations, wrapped with "flip.H".
func H(m matrix.Matrix) (*matrix.Dense, error) {
	res, err := alloc(m)
	if err != nil {
		return nil, flipErrorf(opH, err)
	}
	rows, cols := res.Shape()
	if rows == 0 || cols == 0 {
		return res, nil
	}

	dst := res.Raw()
	var i, j, base int
	if dm, ok := m.(*matrix.Dense); ok {
		src := dm.Raw()
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				dst[base+j] = src[base+cols-1-j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v uint8
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, cols-1-j); err != nil {
				return nil, flipErrorf(opH, err)
			}
			dst[base+j] = v
		}
	}

	return res, nil
}

// V returns a new matrix whose rows are in reverse order within each column.
// Edge cases mirror H with rows in place of cols: rows==1 returns a copy.
//
// On *Dense input every output row is a single copy() of the mirrored
// source row.
func V(m matrix.Matrix) (*matrix.Dense, error) {
	res, err := alloc(m)
	if err != nil {
		return nil, flipErrorf(opV, err)
	}
	rows, cols := res.Shape()
	if rows == 0 || cols == 0 {
		return res, nil
	}

	dst := res.Raw()
	var i, j, base int
	if dm, ok := m.(*matrix.Dense); ok {
		src := dm.Raw()
		for i = 0; i < rows; i++ {
			base = (rows - 1 - i) * cols
			copy(dst[i*cols:(i+1)*cols], src[base:base+cols])
		}
		return res, nil
	}

	var v uint8
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			if v, err = m.At(rows-1-i, j); err != nil {
				return nil, flipErrorf(opV, err)
			}
			dst[base+j] = v
		}
	}

	return res, nil
}

// Horizontal is H under an intention-revealing name.
func Horizontal(m matrix.Matrix) (*matrix.Dense, error) { return H(m) }

// Vertical is V under an intention-revealing name.
func Vertical(m matrix.Matrix) (*matrix.Dense, error) { return V(m) }

// alloc validates m and returns a zeroed Dense with its shape.
func alloc(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}

	return matrix.NewDense(m.Rows(), m.Cols())
}
