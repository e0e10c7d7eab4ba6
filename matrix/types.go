// SPDX-License-Identifier: MIT

package matrix

// Matrix is a two-dimensional grid of uint8 cells.
// Any implementation of these five methods can be handed to the flip kernels;
// *Dense is the canonical one.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the cell at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (uint8, error)

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v uint8) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
