// SPDX-License-Identifier: MIT

package grayimage

import "errors"

var (
	// ErrUnknownFormat is returned by Encode for a format it cannot write.
	ErrUnknownFormat = errors.New("grayimage: unknown format")

	// ErrNilImage indicates a nil image argument.
	ErrNilImage = errors.New("grayimage: nil image")
)
