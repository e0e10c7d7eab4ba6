// Package bytegrid flips dense 2D byte matrices.
//
// Everything is organized under a few subpackages:
//
//	matrix/    — Matrix interface and the row-major Dense []uint8 grid
//	flip/      — H (mirror columns) and V (mirror rows)
//	grayimage/ — image.Gray <-> matrix adapters, PNG/BMP/TIFF codecs
//	cmd/flipimg — command-line front end
//
// Quick example:
//
//	m, _ := matrix.NewDenseFrom([]uint8{1, 2, 3, 4, 5, 6}, 2, 3)
//	h, _ := flip.H(m) // [3 2 1] [6 5 4]
//	v, _ := flip.V(m) // [4 5 6] [1 2 3]
//
//	go get github.com/katalvlaran/bytegrid
package bytegrid
