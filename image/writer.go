package image

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/dloscutoff/ascii-piet/grid"
	"github.com/dloscutoff/ascii-piet/palette"
)

// requestedBytes is px*s*s for the error report, saturating rather than
// wrapping when the true value does not fit in an int64.
func requestedBytes(px, s int64) int64 {
	for i := 0; i < 2; i++ {
		if px > math.MaxInt64/s {
			return math.MaxInt64
		}
		px *= s
	}
	return px
}

// Encode writes the codel grid g to w as a PNG image with the given codel
// size. Every codel becomes a size by size block of its exact palette
// color.
func Encode(w io.Writer, g *grid.Grid, size int) error {
	if size < 1 {
		return CodelSizeError(size)
	}
	if g.Width() == 0 || g.Height() == 0 {
		return ErrEmptyGrid
	}

	// Compared with division so a huge codel size cannot wrap the
	// product back under the limit.
	s := int64(size)
	px := int64(g.Width()) * int64(g.Height())
	if s > maxPixels/s || px > maxPixels/(s*s) {
		return &SizeError{
			Bytes: requestedBytes(px, s),
			Limit: maxPixels,
		}
	}

	m := image.NewPaletted(image.Rect(0, 0, g.Width()*size, g.Height()*size), palette.Palette())

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			// Color values double as palette indices
			i := uint8(g.At(x, y))
			for dy := 0; dy < size; dy++ {
				for dx := 0; dx < size; dx++ {
					m.SetColorIndex(x*size+dx, y*size+dy, i)
				}
			}
		}
	}

	return png.Encode(w, m)
}
