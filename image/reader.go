package image

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/dloscutoff/ascii-piet/grid"
	"github.com/dloscutoff/ascii-piet/palette"
)

type decoder struct {
	m    image.Image
	size int
}

// blockColor reduces the size by size pixel block at block coordinates
// (x, y) to its palette color. The block must be uniform and match a
// palette entry exactly; this only needs to round trip our own output.
func (d *decoder) blockColor(x, y int) (palette.Color, bool) {
	min := d.m.Bounds().Min
	r0, g0, b0, a0 := d.m.At(min.X+x*d.size, min.Y+y*d.size).RGBA()

	for dy := 0; dy < d.size; dy++ {
		for dx := 0; dx < d.size; dx++ {
			r, g, b, a := d.m.At(min.X+x*d.size+dx, min.Y+y*d.size+dy).RGBA()
			if r != r0 || g != g0 || b != b0 || a != a0 {
				return 0, false
			}
		}
	}

	for c := palette.Color(0); c < palette.NumColors; c++ {
		r, g, b, a := palette.RGBA(c).RGBA()
		if r == r0 && g == g0 && b == b0 && a == a0 {
			return c, true
		}
	}

	return 0, false
}

// Decode reads a PNG image of a Piet program from r and reduces it back to
// its codel grid at the given codel size.
func Decode(r io.Reader, size int) (*grid.Grid, error) {
	if size < 1 {
		return nil, CodelSizeError(size)
	}

	m, err := png.Decode(r)
	if err != nil {
		return nil, err
	}

	b := m.Bounds()
	if b.Dx()%size != 0 || b.Dy()%size != 0 {
		return nil, fmt.Errorf("image: %dx%d image is not a multiple of codel size %d", b.Dx(), b.Dy(), size)
	}

	d := decoder{
		m:    m,
		size: size,
	}

	g := grid.New(b.Dx()/size, b.Dy()/size)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, ok := d.blockColor(x, y)
			if !ok {
				return nil, &ColorError{
					X: x,
					Y: y,
				}
			}
			g.Set(x, y, c)
		}
	}

	return g, nil
}
