package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/arloliu/microdots/bitmatrix"
	"github.com/arloliu/microdots/codec"
	"github.com/arloliu/microdots/format"
	"github.com/arloliu/microdots/persist"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "mdots"
	app.Usage = "Anoto microdot pattern utility"
	app.Version = "1.0.0"

	app.Commands = []*cli.Command{
		{
			Name:      "encode",
			Usage:     "Generate a pattern file for a section",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "rows", Value: 64, Usage: "pattern rows"},
				&cli.IntFlag{Name: "cols", Value: 64, Usage: "pattern columns"},
				&cli.IntFlag{Name: "sx", Usage: "section x coordinate"},
				&cli.IntFlag{Name: "sy", Usage: "section y coordinate"},
				&cli.StringFlag{Name: "compression", Value: "zstd", Usage: "payload compression (none, zstd, s2, lz4)"},
				&cli.BoolFlag{Name: "json", Usage: "write the JSON interchange form"},
			},
			Action: encodeAction,
		},
		{
			Name:      "decode",
			Usage:     "Decode position, section and rotation from a pattern file",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "x", Usage: "sub-window left column"},
				&cli.IntFlag{Name: "y", Usage: "sub-window top row"},
				&cli.IntFlag{Name: "rows", Usage: "sub-window rows (0 = to the bottom edge)"},
				&cli.IntFlag{Name: "cols", Usage: "sub-window columns (0 = to the right edge)"},
				&cli.BoolFlag{Name: "json", Usage: "read the JSON interchange form"},
			},
			Action: decodeAction,
		},
		{
			Name:      "info",
			Usage:     "Print the header of a pattern file",
			ArgsUsage: "FILE",
			Action:    infoAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func encodeAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	cdc, err := codec.NewAnoto6x6()
	if err != nil {
		return err
	}

	m, err := cdc.EncodeBitMatrix(c.Int("rows"), c.Int("cols"),
		codec.Section{X: c.Int("sx"), Y: c.Int("sy")})
	if err != nil {
		return err
	}

	var data []byte
	if c.Bool("json") {
		data, err = persist.MarshalJSON(m)
	} else {
		var comp format.CompressionType
		if comp, err = compressionFromName(c.String("compression")); err == nil {
			data, err = persist.Marshal(m, persist.WithCompression(comp))
		}
	}
	if err != nil {
		return err
	}

	return os.WriteFile(c.Args().First(), data, 0o644)
}

func decodeAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	m, err := readPattern(c.Args().First(), c.Bool("json"))
	if err != nil {
		return err
	}

	rows, cols := c.Int("rows"), c.Int("cols")
	if rows == 0 {
		rows = m.Rows() - c.Int("y")
	}
	if cols == 0 {
		cols = m.Cols() - c.Int("x")
	}
	if m, err = m.Sub(c.Int("y"), c.Int("x"), rows, cols); err != nil {
		return err
	}

	cdc, err := codec.NewAnoto6x6()
	if err != nil {
		return err
	}

	pos, err := cdc.DecodePosition(m)
	if err != nil {
		return err
	}
	fmt.Printf("position: %s\n", pos)

	sec, err := cdc.DecodeSection(m, pos)
	if err != nil {
		return err
	}
	fmt.Printf("section:  %s\n", sec)

	if rot, err := cdc.DecodeRotation(m); err != nil {
		fmt.Printf("rotation: undetermined (%v)\n", err)
	} else {
		fmt.Printf("rotation: %s\n", rot)
	}

	return nil
}

func infoAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	if len(data) < format.HeaderSize {
		return fmt.Errorf("file too short for a pattern header: %d bytes", len(data))
	}

	var h persist.Header
	if err := h.Parse(data[:format.HeaderSize]); err != nil {
		return err
	}

	fmt.Printf("shape:       %dx%d\n", h.Rows, h.Cols)
	fmt.Printf("compression: %s\n", h.Compression)
	fmt.Printf("payload:     %d bytes\n", h.PayloadLen)
	fmt.Printf("digest:      %016x\n", h.Digest)

	return nil
}

func readPattern(path string, asJSON bool) (*bitmatrix.BitMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if asJSON {
		return persist.UnmarshalJSON(data)
	}

	return persist.Unmarshal(data)
}

func compressionFromName(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type: %s", name)
	}
}
