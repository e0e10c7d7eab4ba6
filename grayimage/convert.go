// SPDX-License-Identifier: MIT

package grayimage

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/bytegrid/matrix"
)

// FromGray copies the pixels of g into a new rows=height, cols=width matrix.
// Stride padding and a non-zero Rect.Min are honored. A nil g yields 0×0.
//
// Complexity: Time O(w*h), Space O(w*h).
func FromGray(g *image.Gray) *matrix.Dense {
	if g == nil {
		m, _ := matrix.NewDense(0, 0)
		return m
	}
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := make([]uint8, w*h)
	var y, off int
	for y = 0; w > 0 && y < h; y++ {
		off = g.PixOffset(b.Min.X, b.Min.Y+y)
		copy(buf[y*w:(y+1)*w], g.Pix[off:off+w])
	}
	// len(buf) == h*w by construction
	m, _ := matrix.NewDenseFrom(buf, h, w)

	return m
}

// FromImage converts any image to an 8-bit luminance matrix.
// *image.Gray takes the direct copy path; everything else is drawn onto a
// gray canvas first.
func FromImage(img image.Image) *matrix.Dense {
	if img == nil {
		return FromGray(nil)
	}
	if g, ok := img.(*image.Gray); ok {
		return FromGray(g)
	}

	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	Logger().Debug("grayimage: converted to gray",
		"from", fmt.Sprintf("%T", img), "width", b.Dx(), "height", b.Dy())

	return FromGray(g)
}

// ToGray renders m as an *image.Gray with width=cols and height=rows,
// anchored at (0,0).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - Any error returned by m.At for non-Dense implementations.
func ToGray(m matrix.Matrix) (*image.Gray, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("grayimage.ToGray: %w", err)
	}
	rows, cols := m.Rows(), m.Cols()
	g := image.NewGray(image.Rect(0, 0, cols, rows))

	if d, ok := m.(*matrix.Dense); ok {
		// NewGray stride == width, so the buffers line up exactly.
		copy(g.Pix, d.Raw())
		return g, nil
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("grayimage.ToGray: %w", err)
			}
			g.Pix[i*g.Stride+j] = v
		}
	}

	return g, nil
}
