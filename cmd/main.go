package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/GeekHorse/Pinto"
	"github.com/GeekHorse/Pinto/rgba"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/gocarina/gocsv"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:  "pinto",
		Usage: "Convert images to and from Pinto text",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log what the codec does to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode raw RGBA pixels from stdin",
				Action:    encodeImage,
				ArgsUsage: "WIDTH HEIGHT",
				Flags:     []cli.Flag{wrapFlag},
			},
			{
				Name:      "decode",
				Usage:     "Decode an image and write its raw RGBA pixels to stdout",
				Action:    decodeImage,
				ArgsUsage: "PINTO_FILE",
				Flags:     []cli.Flag{downsizeFlag},
			},
			{
				Name:      "size",
				Usage:     "Print the dimensions of an image",
				Action:    printSize,
				ArgsUsage: "PINTO_FILE",
			},
			{
				Name:      "palette",
				Usage:     "Print the colors of an image as CSV",
				Action:    printPalette,
				ArgsUsage: "PINTO_FILE",
			},
			{
				Name:      "import",
				Usage:     "Encode a PNG, JPEG or BMP file, reducing its colors if needed",
				Action:    importImage,
				ArgsUsage: "IMAGE_FILE",
				Flags: []cli.Flag{
					wrapFlag,
					&cli.UintFlag{
						Name:  "max-size",
						Value: pinto.MaxDimension,
						Usage: "shrink images with a side longer than this",
					},
					&cli.UintFlag{
						Name:  "alpha-threshold",
						Value: 128,
						Usage: "pixels with less alpha than this become transparent",
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Decode an image and save it as a PNG file",
				Action:    exportImage,
				ArgsUsage: "PINTO_FILE PNG_FILE",
				Flags:     []cli.Flag{downsizeFlag},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

var wrapFlag = &cli.IntFlag{
	Name:  "wrap",
	Usage: "break the output into lines of this many characters (0 for one line)",
}

var downsizeFlag = &cli.BoolFlag{
	Name:  "downsize",
	Usage: "halve the image's size, anti-aliasing it",
}

func newCodec(context *cli.Context) *pinto.Codec {
	logger := log.New(io.Discard, "", 0)
	if context.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return pinto.New(pinto.Options{Logger: logger})
}

func fail(err error) error {
	return cli.Exit(fmt.Sprintf("ERROR: %s", err), 1)
}

func requireArgs(context *cli.Context, count int) {
	if context.NArg() != count {
		cli.ShowCommandHelpAndExit(context, context.Command.Name, 1)
	}
}

// readText reads a whole Pinto file. "-" reads stdin.
func readText(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func loadImage(context *cli.Context, path string) (*pinto.Image, error) {
	encoded, err := readText(path)
	if err != nil {
		return nil, err
	}

	img, err := newCodec(context).DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	if context.Bool("downsize") {
		return pinto.Downsize(img)
	}
	return img, nil
}

func writeText(context *cli.Context, encoded string) error {
	_, err := fmt.Fprintln(os.Stdout, pinto.Wrap(encoded, context.Int("wrap")))
	return err
}

func encodeImage(context *cli.Context) error {
	requireArgs(context, 2)

	width, err := strconv.Atoi(context.Args().Get(0))
	if err != nil {
		return fail(fmt.Errorf("bad width: %w", err))
	}
	height, err := strconv.Atoi(context.Args().Get(1))
	if err != nil {
		return fail(fmt.Errorf("bad height: %w", err))
	}

	img, err := rgba.Read(os.Stdin, width, height)
	if err != nil {
		return fail(err)
	}

	encoded, err := newCodec(context).Encode(img)
	if err != nil {
		return fail(err)
	}
	if err = writeText(context, encoded); err != nil {
		return fail(err)
	}
	return nil
}

func decodeImage(context *cli.Context) error {
	requireArgs(context, 1)

	img, err := loadImage(context, context.Args().First())
	if err != nil {
		return fail(err)
	}
	if err = rgba.Write(os.Stdout, img); err != nil {
		return fail(err)
	}
	return nil
}

func printSize(context *cli.Context) error {
	requireArgs(context, 1)

	encoded, err := readText(context.Args().First())
	if err != nil {
		return fail(err)
	}
	header, err := newCodec(context).Inspect(encoded)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%dx%d\n", header.Width, header.Height)
	return nil
}

func printPalette(context *cli.Context) error {
	requireArgs(context, 1)

	encoded, err := readText(context.Args().First())
	if err != nil {
		return fail(err)
	}
	header, err := newCodec(context).Inspect(encoded)
	if err != nil {
		return fail(err)
	}

	if err = gocsv.Marshal(paletteRows(header.Palette), os.Stdout); err != nil {
		return fail(err)
	}
	return nil
}

func importImage(context *cli.Context) error {
	requireArgs(context, 1)

	src, err := imgio.Open(context.Args().First())
	if err != nil {
		return fail(err)
	}

	img, err := prepareImage(src, context.Uint("max-size"), context.Uint("alpha-threshold"))
	if err != nil {
		return fail(err)
	}

	encoded, err := newCodec(context).Encode(img)
	if err != nil {
		return fail(err)
	}
	if err = writeText(context, encoded); err != nil {
		return fail(err)
	}
	return nil
}

func exportImage(context *cli.Context) error {
	requireArgs(context, 2)

	img, err := loadImage(context, context.Args().Get(0))
	if err != nil {
		return fail(err)
	}
	if err = imgio.Save(context.Args().Get(1), img, imgio.PNGEncoder()); err != nil {
		return fail(err)
	}
	return nil
}
