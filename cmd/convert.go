package main

import (
	goerrors "errors"
	"image"
	"image/color"

	"github.com/GeekHorse/Pinto"
	"github.com/GeekHorse/Pinto/palette"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/nfnt/resize"
)

// paletteRow is one line of the `palette` command's CSV output.
type paletteRow struct {
	Index int    `csv:"index"`
	Red   uint8  `csv:"red"`
	Green uint8  `csv:"green"`
	Blue  uint8  `csv:"blue"`
	Hex   string `csv:"hex"`
}

func paletteRows(colors palette.Palette) []*paletteRow {
	rows := make([]*paletteRow, len(colors))
	for i, c := range colors {
		rows[i] = &paletteRow{Index: i, Red: c.R, Green: c.G, Blue: c.B, Hex: c.String()}
	}
	return rows
}

// prepareImage turns an arbitrary image into one the codec accepts: no side
// longer than `maxSize`, every pixel either opaque or transparent, and few
// enough colors.
func prepareImage(src image.Image, maxSize, alphaThreshold uint) (*pinto.Image, error) {
	if maxSize == 0 || maxSize > pinto.MaxDimension {
		maxSize = pinto.MaxDimension
	}

	bounds := src.Bounds()
	if bounds.Dx() > int(maxSize) || bounds.Dy() > int(maxSize) {
		// Nearest neighbor keeps the edges hard, and adds no new colors.
		src = resize.Thumbnail(maxSize, maxSize, src, resize.NearestNeighbor)
	}

	img, err := pinto.FromImage(src)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(img.RGBA); i += 4 {
		if uint(img.RGBA[i+3]) < alphaThreshold {
			copy(img.RGBA[i:i+4], []byte{0, 0, 0, 0})
		} else {
			img.RGBA[i+3] = 0xFF
		}
	}

	_, _, err = palette.Quantize(img.RGBA, img.Width, img.Height)
	if goerrors.Is(err, pinto.ErrImageTooManyColors) {
		reduceColors(img)
		return img, nil
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// reduceColors maps every opaque pixel onto a median cut palette of at most
// palette.MaxColors colors.
func reduceColors(img *pinto.Image) {
	q := quantize.MedianCutQuantizer{}
	quantized := q.Quantize(make(color.Palette, 0, palette.MaxColors), img)

	opaque := make(color.Palette, len(quantized))
	for i, c := range quantized {
		nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
		nrgba.A = 0xFF
		opaque[i] = nrgba
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			img.Set(x, y, opaque[opaque.Index(c)])
		}
	}
}
