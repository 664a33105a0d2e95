/*
Package palette implements the fixed 20 color Piet palette and its
bidirectional mapping to the ASCII-Piet character set.

Each color has two printable ASCII representatives; the second, end-of-line
variant marks the last codel of a row. The two variants of a color differ
only in ASCII bit 0x20, with the black and white pairs shifted back into
printable range, which is why the bulk of the alphabet pairs a lowercase
letter with its uppercase form.
*/
package palette

import "image/color"

// Color is one of the 20 Piet codel colors.
type Color int

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	LightYellow
	White
)

// NumColors is the number of colors in the Piet palette.
const NumColors = 20

var names = [NumColors]string{
	"black",
	"dark blue",
	"dark green",
	"dark cyan",
	"dark red",
	"dark magenta",
	"dark yellow",
	"blue",
	"green",
	"cyan",
	"red",
	"magenta",
	"yellow",
	"light blue",
	"light green",
	"light cyan",
	"light red",
	"light magenta",
	"light yellow",
	"white",
}

func (c Color) String() string {
	if c < 0 || c >= NumColors {
		return "unknown"
	}
	return names[c]
}

// Standard Piet palette; dark colors use 0xc0 in place of 0x00, light
// colors use 0xc0 in place of 0xff.
var rgba = [NumColors]color.RGBA{
	Black:        {0x00, 0x00, 0x00, 0xff},
	DarkBlue:     {0x00, 0x00, 0xc0, 0xff},
	DarkGreen:    {0x00, 0xc0, 0x00, 0xff},
	DarkCyan:     {0x00, 0xc0, 0xc0, 0xff},
	DarkRed:      {0xc0, 0x00, 0x00, 0xff},
	DarkMagenta:  {0xc0, 0x00, 0xc0, 0xff},
	DarkYellow:   {0xc0, 0xc0, 0x00, 0xff},
	Blue:         {0x00, 0x00, 0xff, 0xff},
	Green:        {0x00, 0xff, 0x00, 0xff},
	Cyan:         {0x00, 0xff, 0xff, 0xff},
	Red:          {0xff, 0x00, 0x00, 0xff},
	Magenta:      {0xff, 0x00, 0xff, 0xff},
	Yellow:       {0xff, 0xff, 0x00, 0xff},
	LightBlue:    {0xc0, 0xc0, 0xff, 0xff},
	LightGreen:   {0xc0, 0xff, 0xc0, 0xff},
	LightCyan:    {0xc0, 0xff, 0xff, 0xff},
	LightRed:     {0xff, 0xc0, 0xc0, 0xff},
	LightMagenta: {0xff, 0xc0, 0xff, 0xff},
	LightYellow:  {0xff, 0xff, 0xc0, 0xff},
	White:        {0xff, 0xff, 0xff, 0xff},
}

// The 40 character alphabet; first the normal character for each color,
// then its end-of-line variant.
var chars = [NumColors][2]byte{
	Black:        {' ', '@'},
	DarkBlue:     {'a', 'A'},
	DarkGreen:    {'b', 'B'},
	DarkCyan:     {'c', 'C'},
	DarkRed:      {'d', 'D'},
	DarkMagenta:  {'e', 'E'},
	DarkYellow:   {'f', 'F'},
	Blue:         {'i', 'I'},
	Green:        {'j', 'J'},
	Cyan:         {'k', 'K'},
	Red:          {'l', 'L'},
	Magenta:      {'m', 'M'},
	Yellow:       {'n', 'N'},
	LightBlue:    {'q', 'Q'},
	LightGreen:   {'r', 'R'},
	LightCyan:    {'s', 'S'},
	LightRed:     {'t', 'T'},
	LightMagenta: {'u', 'U'},
	LightYellow:  {'v', 'V'},
	White:        {'?', '_'},
}

// Reverse lookup, derived once from the chars table. Values are the color
// shifted up by one so the zero value means unrecognized; negative means
// the end-of-line variant.
var byChar [256]int8

func init() {
	for c := Color(0); c < NumColors; c++ {
		byChar[chars[c][0]] = int8(c) + 1
		byChar[chars[c][1]] = -(int8(c) + 1)
	}
}

// Char returns the ASCII character representing c; if eol is true the
// end-of-line variant is returned.
func Char(c Color, eol bool) byte {
	if eol {
		return chars[c][1]
	}
	return chars[c][0]
}

// FromChar maps a character back to its color. It reports whether the
// character is the end-of-line variant and whether it is one of the 40
// recognized characters at all.
func FromChar(ch byte) (c Color, eol bool, ok bool) {
	switch v := byChar[ch]; {
	case v > 0:
		return Color(v - 1), false, true
	case v < 0:
		return Color(-v - 1), true, true
	}
	return 0, false, false
}

// IsEndOfLine reports whether ch is the end-of-line variant of one of the
// palette colors.
func IsEndOfLine(ch byte) bool {
	return byChar[ch] < 0
}

// RGBA returns the RGB value of c in the standard Piet palette.
func RGBA(c Color) color.RGBA {
	return rgba[c]
}

// Palette returns the full palette as a color.Palette ordered by Color
// value, so a Color doubles as a palette index.
func Palette() color.Palette {
	p := make(color.Palette, NumColors)
	for i := range rgba {
		p[i] = rgba[i]
	}
	return p
}
