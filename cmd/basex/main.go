// Command basex encodes and decodes arbitrary base encoded data.
//
// It reads its whole input from standard input and writes the result to
// standard output: raw bytes in, symbol text out when encoding; a symbol
// string in (trailing whitespace ignored), raw bytes out when decoding.
// Any failure is reported on standard error and the process exits
// non-zero.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/basex-go/basex"
	"github.com/basex-go/basex/alphabet"
	"github.com/basex-go/basex/compress"
)

func main() {
	app := &cli.App{
		Name:  "basex",
		Usage: "encode/decode arbitrary base encoded data on stdin/stdout",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "decode",
				Aliases: []string{"d"},
				Usage:   "decode input instead of encoding it",
			},
			&cli.StringFlag{
				Name:    "alphabet",
				Aliases: []string{"a"},
				Value:   "bitcoin",
				Usage:   "alphabet to convert with: bitcoin, monero, ripple, flickr or custom(abc...xyz)",
			},
			&cli.StringFlag{
				Name:    "compress",
				Aliases: []string{"z"},
				Value:   "none",
				Usage:   "compress the payload before encoding (and decompress after decoding): none, zstd, s2 or lz4",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(c *cli.Context) error {
	alpha, err := alphabet.Parse(c.String("alphabet"))
	if err != nil {
		return err
	}

	compType, err := compress.ParseType(c.String("compress"))
	if err != nil {
		return err
	}
	codec, err := compress.GetCodec(compType)
	if err != nil {
		return err
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	if c.Bool("decode") {
		return runDecode(input, alpha, codec)
	}

	return runEncode(input, alpha, codec)
}

func runEncode(input []byte, alpha alphabet.Alphabet, codec compress.Codec) error {
	payload, err := codec.Compress(input)
	if err != nil {
		return fmt.Errorf("failed to compress payload: %w", err)
	}

	output := basex.Encode(payload, alpha).String()
	if _, err := os.Stdout.WriteString(output); err != nil {
		return fmt.Errorf("failed to write stdout: %w", err)
	}

	return nil
}

func runDecode(input []byte, alpha alphabet.Alphabet, codec compress.Codec) error {
	trimmed := strings.TrimRight(string(input), " \t\r\n")

	payload, err := basex.Decode(trimmed, alpha).Bytes()
	if err != nil {
		return err
	}

	output, err := codec.Decompress(payload)
	if err != nil {
		return fmt.Errorf("failed to decompress payload: %w", err)
	}

	if _, err := os.Stdout.Write(output); err != nil {
		return fmt.Errorf("failed to write stdout: %w", err)
	}

	return nil
}
