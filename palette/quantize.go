package palette

import (
	"github.com/GeekHorse/Pinto/errors"
	"github.com/boljen/go-bitmap"
)

// Transparent marks a pixel with no palette color in an [IndexMap].
const Transparent int8 = -1

// IndexMap holds one entry per pixel, in raster order: either a palette index
// or [Transparent].
type IndexMap []int8

// Quantize reduces every opaque pixel of a tightly packed RGBA buffer to a
// palette color. Colors get palette indexes in the order they're first seen.
//
// Pixels must be fully opaque or fully transparent; any other alpha value is
// an ImagePartialTransparency error. Needing more than [MaxColors] colors is
// an ImageTooManyColors error.
func Quantize(pixels []byte, width, height int) (Palette, IndexMap, error) {
	if width < 1 || height < 1 {
		return nil, nil, errors.Newf(
			errors.Precondition, "invalid dimensions %dx%d", width, height)
	}

	pixelCount := width * height
	if len(pixels) != pixelCount*4 {
		return nil, nil, errors.Newf(
			errors.Precondition,
			"expected %d bytes of pixel data for %dx%d, got %d",
			pixelCount*4,
			width,
			height,
			len(pixels),
		)
	}

	colors := make(Palette, 0, MaxColors)
	indexes := make(IndexMap, pixelCount)

	// Every color seen so far, keyed by its three levels. A miss here means
	// the color is definitely new and the palette doesn't need to be searched.
	seen := bitmap.New(Levels * Levels * Levels)
	lastIndex := -1

	for i := 0; i < pixelCount; i++ {
		offset := i * 4
		alpha := pixels[offset+3]

		switch alpha {
		case 0:
			indexes[i] = Transparent
			continue
		case 0xFF:
		default:
			return nil, nil, errors.Newf(
				errors.ImagePartialTransparency,
				"pixel (%d, %d) has alpha %d",
				i%width,
				i/width,
				alpha,
			)
		}

		c := NewColor(pixels[offset], pixels[offset+1], pixels[offset+2])
		index := -1
		if lastIndex >= 0 && c == colors[lastIndex] {
			index = lastIndex
		} else if seen.Get(c.key()) {
			index = colors.IndexOf(c)
		}

		if index < 0 {
			if len(colors) == MaxColors {
				return nil, nil, errors.Newf(
					errors.ImageTooManyColors,
					"pixel (%d, %d) would be color number %d",
					i%width,
					i/width,
					MaxColors+1,
				)
			}
			seen.Set(c.key(), true)
			index = len(colors)
			colors = append(colors, c)
		}
		indexes[i] = int8(index)
		lastIndex = index
	}
	return colors, indexes, nil
}
