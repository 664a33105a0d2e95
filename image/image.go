/*
Package image implements the raster encoder and decoder for Piet codel
grids.

Each codel is rendered as an s by s block of identically colored pixels
taken from the fixed 20 color Piet palette, so a w by h program at codel
size s becomes a w*s by h*s image. The container is PNG, which is lossless,
so palette values survive a round trip exactly; no anti-aliasing or
interpolation is ever applied.
*/
package image

import (
	"errors"
	"fmt"
)

// maxPixels bounds the size of the image a single conversion is allowed to
// allocate. One byte per pixel in paletted form.
const maxPixels = 1 << 26

var (
	// ErrEmptyGrid is returned when asked to encode a grid with no
	// codels.
	ErrEmptyGrid = errors.New("image: empty grid")
)

// CodelSizeError reports a codel size that is not a positive integer.
type CodelSizeError int

func (e CodelSizeError) Error() string {
	return fmt.Sprintf("image: invalid codel size %d", int(e))
}

// SizeError reports an image whose pixel allocation would exceed the
// built-in limit.
type SizeError struct {
	Bytes int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("image: %d byte image exceeds %d byte limit", e.Bytes, e.Limit)
}

// ColorError reports a codel block that is not uniformly a single palette
// color. X and Y are block coordinates, not pixel coordinates.
type ColorError struct {
	X int
	Y int
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("image: unrecognized color in codel block (%d, %d)", e.X, e.Y)
}
