package main

import (
	"bytes"
	"io"
	"io/ioutil"
	"log"
	"os"

	asciipiet "github.com/dloscutoff/ascii-piet"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// First optional argument is the input file, defaulting to stdin.
func openInput(c *cli.Context, logger *log.Logger) (io.ReadCloser, error) {
	if c.NArg() > 0 {
		logger.Printf("source file: %s\n", c.Args().Get(0))
		return os.Open(c.Args().Get(0))
	}
	logger.Println("source file: <stdin>")
	return os.Stdin, nil
}

// Second optional argument is the output file; empty means stdout.
func destination(c *cli.Context, logger *log.Logger) string {
	if c.NArg() > 1 {
		logger.Printf("destination file: %s\n", c.Args().Get(1))
		return c.Args().Get(1)
	}
	logger.Println("destination file: <stdout>")
	return ""
}

// The destination file is only created once the conversion has succeeded,
// so a failed conversion never clobbers an existing file.
func writeOutput(file string, b []byte) error {
	if file == "" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return ioutil.WriteFile(file, b, 0644)
}

func main() {
	app := cli.NewApp()

	app.Name = "asciipiet"
	app.Usage = "ASCII-encoded Piet conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "encode",
			Usage:     "Convert ASCII-encoded Piet to a PNG image",
			ArgsUsage: "[INFILE [OUTFILE]]",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"s"},
					EnvVars: []string{"ASCIIPIET_CODEL_SIZE"},
					Value:   1,
					Usage:   "output an image with the given codel size",
				},
				&cli.BoolFlag{
					Name:    "xxd",
					Aliases: []string{"x"},
					Usage:   "output as xxd hexdump instead of raw bytes",
				},
			},
			Action: func(c *cli.Context) error {
				logger := newLogger(c)
				logger.Println("converting from ASCII-encoded Piet to PNG")

				in, err := openInput(c, logger)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer in.Close()
				file := destination(c, logger)

				t := asciipiet.New(logger)

				var out bytes.Buffer
				if c.Bool("xxd") {
					err = t.EncodeHexdump(in, &out, c.Int("size"))
				} else {
					err = t.Encode(in, &out, c.Int("size"))
				}
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := writeOutput(file, out.Bytes()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "decode",
			Usage:     "Convert a PNG image back to ASCII-encoded Piet",
			ArgsUsage: "[INFILE [OUTFILE]]",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"s"},
					EnvVars: []string{"ASCIIPIET_CODEL_SIZE"},
					Value:   1,
					Usage:   "codel size the image was generated with",
				},
			},
			Action: func(c *cli.Context) error {
				logger := newLogger(c)
				logger.Println("converting from PNG to ASCII-encoded Piet")

				in, err := openInput(c, logger)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer in.Close()
				file := destination(c, logger)

				t := asciipiet.New(logger)

				var out bytes.Buffer
				if err := t.Decode(in, &out, c.Int("size")); err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := writeOutput(file, out.Bytes()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
