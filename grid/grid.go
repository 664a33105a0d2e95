/*
Package grid implements parsing of ASCII-encoded Piet programs into a
rectangular grid of codels and the reduction of a grid back to its minimal
textual form.

A row of the program ends either at a physical line break or at an
end-of-line character, whichever comes first; a line break behaves exactly
as if the preceding character had used its end-of-line variant. Rows
shorter than the longest row are padded on the right with black codels, so
trailing black codels never need to be written.
*/
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dloscutoff/ascii-piet/palette"
)

// Programs are usually tiny but nothing stops a single packed line from
// being the whole program.
const maxLine = 1 << 20

var (
	// ErrEmptyProgram is returned by Parse for input containing no
	// codels at all, either empty input or line breaks only. Such a
	// program has no well-defined image and is rejected rather than
	// rendered.
	ErrEmptyProgram = errors.New("grid: program contains no codels")

	// ErrLineTooLong is returned by Parse when a single input line
	// exceeds the maxLine cap.
	ErrLineTooLong = errors.New("grid: input line too long")
)

// UnknownCharError reports a character outside the 40 character alphabet,
// with its 1-based position in the input text.
type UnknownCharError struct {
	Line   int
	Column int
	Char   byte
}

func (e *UnknownCharError) Error() string {
	return fmt.Sprintf("grid: unknown character %q at line %d, column %d", e.Char, e.Line, e.Column)
}

// Grid is a rectangular array of codel colors. Once built it is only read.
type Grid struct {
	width int
	rows  [][]palette.Color
}

// New returns a width by height grid of black codels.
func New(width, height int) *Grid {
	rows := make([][]palette.Color, height)
	for y := range rows {
		rows[y] = make([]palette.Color, width)
	}
	return &Grid{
		width: width,
		rows:  rows,
	}
}

// Width returns the number of codels per row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// At returns the color of the codel at (x, y).
func (g *Grid) At(x, y int) palette.Color {
	return g.rows[y][x]
}

// Set sets the color of the codel at (x, y).
func (g *Grid) Set(x, y int, c palette.Color) {
	g.rows[y][x] = c
}

// Parse reads an ASCII-encoded Piet program from r and builds its codel
// grid. Input may use end-of-line characters, physical line breaks, or a
// mixture of both to delimit rows; CRLF line endings are accepted and a
// trailing line break is ignored. Empty lines become rows of black codels.
func Parse(r io.Reader) (*Grid, error) {
	var (
		rows   [][]palette.Color
		width  int
		codels int
	)

	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLine)
	for lineno := 1; s.Scan(); lineno++ {
		line := s.Bytes()

		var row []palette.Color
		for i := 0; i < len(line); i++ {
			c, eol, ok := palette.FromChar(line[i])
			if !ok {
				return nil, &UnknownCharError{
					Line:   lineno,
					Column: i + 1,
					Char:   line[i],
				}
			}
			row = append(row, c)
			codels++
			if eol {
				rows = append(rows, row)
				if len(row) > width {
					width = len(row)
				}
				row = nil
			}
		}

		// The line break ends the current row unless an end-of-line
		// character just did. An empty line still counts as a row;
		// it pads out to all black below.
		if len(row) > 0 || len(line) == 0 {
			rows = append(rows, row)
			if len(row) > width {
				width = len(row)
			}
		}
	}
	if err := s.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, ErrLineTooLong
		}
		return nil, err
	}

	if codels == 0 {
		return nil, ErrEmptyProgram
	}

	for y, row := range rows {
		for len(row) < width {
			row = append(row, palette.Black)
		}
		rows[y] = row
	}

	return &Grid{
		width: width,
		rows:  rows,
	}, nil
}

// MinimalText reduces the grid to its shortest textual form. Trailing
// black codels are dropped from every row, the last remaining codel of a
// row is written as its end-of-line variant, rows of nothing but black
// become empty lines, and rows are joined with line breaks.
func (g *Grid) MinimalText() string {
	out := make([]byte, 0, g.width*len(g.rows)+len(g.rows))
	for y, row := range g.rows {
		if y > 0 {
			out = append(out, '\n')
		}
		end := len(row)
		for end > 0 && row[end-1] == palette.Black {
			end--
		}
		for x := 0; x < end; x++ {
			out = append(out, palette.Char(row[x], x == end-1))
		}
	}
	return string(out)
}
