package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dloscutoff/ascii-piet/grid"
	"github.com/dloscutoff/ascii-piet/palette"
)

func parse(t *testing.T, input string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return g
}

func decodePNG(t *testing.T, b []byte) image.Image {
	t.Helper()
	m, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return m
}

func samePixel(c1, c2 color.Color) bool {
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestEncodeSinglePixel(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Encode(&b, parse(t, "?"), 1))

	m := decodePNG(t, b.Bytes())
	assert.Equal(t, 1, m.Bounds().Dx())
	assert.Equal(t, 1, m.Bounds().Dy())
	assert.True(t, samePixel(palette.RGBA(palette.White), m.At(0, 0)))
}

func TestEncodeWorkedExample(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Encode(&b, parse(t, "lldd @lldddTllddtF"), 1))

	m := decodePNG(t, b.Bytes())
	require.Equal(t, 6, m.Bounds().Dx())
	require.Equal(t, 3, m.Bounds().Dy())

	want := [][]palette.Color{
		{palette.Red, palette.Red, palette.DarkRed, palette.DarkRed, palette.Black, palette.Black},
		{palette.Red, palette.Red, palette.DarkRed, palette.DarkRed, palette.DarkRed, palette.LightRed},
		{palette.Red, palette.Red, palette.DarkRed, palette.DarkRed, palette.LightRed, palette.DarkYellow},
	}
	for y, row := range want {
		for x, c := range row {
			assert.True(t, samePixel(palette.RGBA(c), m.At(x, y)), "(%d, %d)", x, y)
		}
	}
}

// Every pixel of a codel block must be exactly the palette value with no
// bleed between adjacent blocks.
func TestEncodeBlockReplication(t *testing.T) {
	const size = 3

	var b bytes.Buffer
	require.NoError(t, Encode(&b, parse(t, "l \nit"), size))

	m := decodePNG(t, b.Bytes())
	require.Equal(t, 2*size, m.Bounds().Dx())
	require.Equal(t, 2*size, m.Bounds().Dy())

	want := [][]palette.Color{
		{palette.Red, palette.Black},
		{palette.Blue, palette.LightRed},
	}
	for y := 0; y < 2*size; y++ {
		for x := 0; x < 2*size; x++ {
			c := want[y/size][x/size]
			assert.True(t, samePixel(palette.RGBA(c), m.At(x, y)), "(%d, %d)", x, y)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"lldd @lldddTllddtF",
		"lldDlldddTllddtF",
		"?",
		"l\n\nl",
		"i\njj\nkkk",
	}
	for _, input := range inputs {
		for _, size := range []int{1, 2, 5} {
			g := parse(t, input)

			var b bytes.Buffer
			require.NoError(t, Encode(&b, g, size))

			h, err := Decode(&b, size)
			require.NoError(t, err, "%q size %d", input, size)

			require.Equal(t, g.Width(), h.Width())
			require.Equal(t, g.Height(), h.Height())
			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					assert.Equal(t, g.At(x, y), h.At(x, y), "%q size %d (%d, %d)", input, size, x, y)
				}
			}
		}
	}
}

func TestCodelSize(t *testing.T) {
	var b bytes.Buffer
	for _, size := range []int{0, -1} {
		err := Encode(&b, parse(t, "?"), size)
		assert.Equal(t, CodelSizeError(size), err)

		_, err = Decode(&b, size)
		assert.Equal(t, CodelSizeError(size), err)
	}
}

func TestEncodeTooLarge(t *testing.T) {
	var b bytes.Buffer
	err := Encode(&b, parse(t, "?"), 1<<14)
	serr, ok := err.(*SizeError)
	require.True(t, ok)
	assert.Equal(t, int64(1)<<28, serr.Bytes)
	assert.Equal(t, int64(maxPixels), serr.Limit)
	assert.Zero(t, b.Len())
}

// A codel size whose square wraps int64 must still be caught by the size
// guard rather than reaching allocation.
func TestEncodeCodelSizeOverflow(t *testing.T) {
	shift := uint(32)
	size := 1 << shift
	if size == 0 {
		t.Skip("requires 64-bit int")
	}

	var b bytes.Buffer
	err := Encode(&b, parse(t, "?"), size)
	serr, ok := err.(*SizeError)
	require.True(t, ok, "%v", err)
	assert.Equal(t, int64(maxPixels), serr.Limit)
	assert.Zero(t, b.Len())
}

func TestDecodeNonPaletteColor(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	m.Set(0, 0, color.NRGBA{0x01, 0x02, 0x03, 0xff})

	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, m))

	_, err := Decode(&b, 1)
	cerr, ok := err.(*ColorError)
	require.True(t, ok)
	assert.Equal(t, 0, cerr.X)
	assert.Equal(t, 0, cerr.Y)
}

func TestDecodeNonUniformBlock(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 2, 2), palette.Palette())
	m.SetColorIndex(0, 0, uint8(palette.Red))
	m.SetColorIndex(1, 0, uint8(palette.Blue))
	m.SetColorIndex(0, 1, uint8(palette.Red))
	m.SetColorIndex(1, 1, uint8(palette.Red))

	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, m))

	_, err := Decode(&b, 2)
	cerr, ok := err.(*ColorError)
	require.True(t, ok)
	assert.Equal(t, 0, cerr.X)
	assert.Equal(t, 0, cerr.Y)
}

func TestDecodeBadDimensions(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Encode(&b, parse(t, "lld"), 1))

	_, err := Decode(&b, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a multiple of codel size")
}
