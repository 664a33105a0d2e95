/*
Package asciipiet converts between ASCII-encoded Piet programs and Piet
raster images.
*/
package asciipiet

import (
	"bytes"
	"io"
	"log"

	"github.com/dloscutoff/ascii-piet/grid"
	"github.com/dloscutoff/ascii-piet/image"
)

type Translator struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Translator {
	return &Translator{
		logger: logger,
	}
}

func (t *Translator) encode(r io.Reader, size int) ([]byte, error) {
	g, err := grid.Parse(r)
	if err != nil {
		return nil, err
	}

	t.logger.Printf("program size is %d by %d (%d codels)\n", g.Width(), g.Height(), g.Width()*g.Height())
	t.logger.Printf("generating image with codel size %d\n", size)

	// Encode into memory first so nothing is written on error
	var b bytes.Buffer
	if err := image.Encode(&b, g, size); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Encode reads an ASCII-encoded Piet program from r and writes it to w as
// a PNG image with the given codel size. On error nothing is written.
func (t *Translator) Encode(r io.Reader, w io.Writer, size int) error {
	b, err := t.encode(r, size)
	if err != nil {
		return err
	}

	t.logger.Printf("writing PNG file as raw bytes (%d bytes)\n", len(b))

	_, err = w.Write(b)
	return err
}

// EncodeHexdump is Encode except the PNG image is written as an xxd style
// hexdump instead of raw bytes.
func (t *Translator) EncodeHexdump(r io.Reader, w io.Writer, size int) error {
	b, err := t.encode(r, size)
	if err != nil {
		return err
	}

	t.logger.Printf("writing PNG file as hexdump (%d bytes)\n", len(b))

	_, err = io.WriteString(w, Hexdump(b)+"\n")
	return err
}

// Decode reads a PNG image of a Piet program from r and writes its
// minimal ASCII encoding to w. The image must have been produced at the
// given codel size. On error nothing is written.
func (t *Translator) Decode(r io.Reader, w io.Writer, size int) error {
	g, err := image.Decode(r, size)
	if err != nil {
		return err
	}

	t.logger.Printf("program size is %d by %d (%d codels)\n", g.Width(), g.Height(), g.Width()*g.Height())

	_, err = io.WriteString(w, g.MinimalText()+"\n")
	return err
}
