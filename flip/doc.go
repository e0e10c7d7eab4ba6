// SPDX-License-Identifier: MIT

// Package flip mirrors byte matrices across one axis.
//
//	H (horizontal): out[i][j] = in[i][cols-1-j]   columns reversed per row
//	V (vertical):   out[i][j] = in[rows-1-i][j]   rows reversed per column
//
//	in      H       V
//	1 2 3   3 2 1   4 5 6
//	4 5 6   6 5 4   1 2 3
//
// Both functions allocate a fresh *matrix.Dense of the same shape and never
// write to, or keep a reference to, their argument. They are safe to call
// concurrently on the same input.
//
// Complexity: Time O(rows*cols), Space O(rows*cols) for the result.
package flip
