// SPDX-License-Identifier: MIT

// Package grayimage bridges images and bytegrid matrices.
//
// An *image.Gray maps one-to-one onto a *matrix.Dense: image rows become
// matrix rows and each luminance byte becomes one cell. Any other image is
// first converted to 8-bit gray with golang.org/x/image/draw.
//
// Decode and Encode understand PNG, BMP and TIFF, so a file can be loaded,
// flipped with package flip, and written back:
//
//	img, format, _ := grayimage.Decode(r)
//	m := grayimage.FromImage(img)
//	out, _ := flip.H(m)
//	g, _ := grayimage.ToGray(out)
//	_ = grayimage.Encode(w, g, format)
package grayimage
