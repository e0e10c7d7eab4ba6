// SPDX-License-Identifier: MIT

// Package matrix provides the dense 2D byte grid used across bytegrid.
//
// What & Why:
//
//	A Matrix is a rows×cols grid of uint8 cells. Dense stores it as one flat,
//	row-major buffer (offset = i*cols + j), which keeps it cache friendly and
//	lets kernels such as flip.H / flip.V walk whole rows with copy().
//
// Shapes:
//
//	Degenerate shapes are legal: 0×0, 0×n and n×0 matrices carry an empty
//	buffer. Only negative dimensions, or a buffer whose length is not
//	rows*cols, are rejected.
//
// Safety:
//
//	At and Set are bounds-checked and return ErrOutOfRange instead of
//	panicking. Raw exposes the backing slice for read-only fast paths.
//
// Complexity:
//
//	Rows/Cols/Shape/At/Set are O(1); Clone, Equal and NewDenseRows are O(r*c).
package matrix
