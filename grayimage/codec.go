// SPDX-License-Identifier: MIT

package grayimage

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported format names, as reported by Decode and accepted by Encode.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// Decode reads a PNG, BMP or TIFF image and reports its format name.
// The decoders register themselves with image.Decode through the imports
// above.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("grayimage.Decode: %w", err)
	}
	b := img.Bounds()
	Logger().Debug("grayimage: decoded", "format", format, "width", b.Dx(), "height", b.Dy())

	return img, format, nil
}

// Encode writes img in the named format (case-insensitive; "tif" is an
// alias of "tiff").
func Encode(w io.Writer, img image.Image, format string) error {
	if img == nil {
		return fmt.Errorf("grayimage.Encode: %w", ErrNilImage)
	}

	var err error
	switch f := strings.ToLower(format); f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF, "tif":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("grayimage.Encode(%q): %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("grayimage.Encode(%s): %w", format, err)
	}
	Logger().Debug("grayimage: encoded", "format", format)

	return nil
}
