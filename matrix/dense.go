// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major byte buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loop orders fixed so every traversal is deterministic.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(1); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"  // method tag used in error wrappers
	ctxSet   = "Set" // method tag used in error wrappers
	ctxFrom  = "NewDenseFrom"
	ctxRows  = "NewDenseRows"
	ctxDense = "NewDense"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so errors.Is keeps matching.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major byte matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts
	data []uint8 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: ValidateDims (non-negative, rows*cols fits in int).
//   - Stage 2: allocate a zero-filled buffer of rows*cols bytes.
//
// Behavior highlights:
//   - 0×n, n×0 and 0×0 are legal and carry an empty buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxDense, rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// NewDenseFrom wraps buf as a rows×cols matrix without copying it.
//
// Implementation:
//   - Stage 1: ValidateBuffer(buf, rows, cols).
//   - Stage 2: adopt buf as the backing storage.
//
// Behavior highlights:
//   - Ownership of buf passes to the returned Dense; the caller must not
//     mutate buf afterwards unless it intends to mutate the matrix.
//   - A nil buf is accepted for any shape with rows*cols == 0.
//
// Errors:
//   - ErrInvalidDimensions on negative dims or when rows*cols overflows.
//   - ErrBadShape when len(buf) != rows*cols.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDenseFrom(buf []uint8, rows, cols int) (*Dense, error) {
	if err := ValidateBuffer(buf, rows, cols); err != nil {
		return nil, matrixErrorf(ctxFrom, err)
	}
	if buf == nil {
		buf = []uint8{}
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseRows copies a slice of equal-length rows into a new Dense.
// An empty input yields a 0×0 matrix. Ragged rows yield ErrBadShape.
func NewDenseRows(rows [][]uint8) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{data: []uint8{}}, nil
	}
	c := len(rows[0])
	buf := make([]uint8, r*c)
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxRows, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrBadShape))
		}
		copy(buf[i*c:(i+1)*c], rows[i])
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Raw returns the row-major backing slice. It is shared, not copied:
// treat it as read-only unless you own the matrix.
func (m *Dense) Raw() []uint8 { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the calling method tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (uint8, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v uint8) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	cp := make([]uint8, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether other has the same shape and the same cells.
// A nil other is never equal. *Dense operands are compared on their buffers;
// anything else goes through At.
func (m *Dense) Equal(other Matrix) bool {
	if ValidateNotNil(other) != nil || ValidateSameShape(m, other) != nil {
		return false
	}
	if od, ok := other.(*Dense); ok {
		return bytes.Equal(m.data, od.data)
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.Itoa(int(m.data[i*m.c+j])))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
