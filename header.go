package pinto

import (
	"github.com/GeekHorse/Pinto/errors"
	"github.com/GeekHorse/Pinto/palette"
	"github.com/GeekHorse/Pinto/utilities/text"
)

// Header is the part of an encoded image that comes before the color layers.
type Header struct {
	Width   int
	Height  int
	Palette palette.Palette
	// Shorthand is true if the header was the single-digit form.
	Shorthand bool
}

// PixelCount returns the number of pixels in the image.
func (h Header) PixelCount() int {
	return h.Width * h.Height
}

func writeHeader(output *text.Buffer, width, height int, colors palette.Palette) error {
	if class, ok := shorthandClass(width, height, colors); ok {
		return output.AddChar(text.Digit(class))
	}

	if err := output.AddChar(fullHeaderMarker); err != nil {
		return err
	}
	for _, value := range []int{width, height, len(colors)} {
		if err := output.AddValue(value); err != nil {
			return err
		}
	}

	for _, c := range colors {
		for _, level := range c.Levels() {
			if err := output.AddChar(text.Digit(int(level))); err != nil {
				return err
			}
		}
	}
	return nil
}

func readHeader(input *text.Buffer) (Header, error) {
	ch, err := input.GetChar()
	if err != nil {
		return Header{}, err
	}

	if ch >= '0' && ch < '0'+shorthandClasses {
		side := ShorthandSide(int(ch - '0'))
		return Header{
			Width:     side,
			Height:    side,
			Palette:   palette.Palette{palette.Black},
			Shorthand: true,
		}, nil
	}
	if ch != fullHeaderMarker {
		return Header{}, errors.Newf(errors.FormatInvalid, "unknown header type %q", ch)
	}

	width, err := input.GetValue()
	if err != nil {
		return Header{}, err
	}
	height, err := input.GetValue()
	if err != nil {
		return Header{}, err
	}
	if !validDimension(width) || !validDimension(height) {
		return Header{}, errors.Newf(
			errors.FormatInvalid, "invalid image dimensions %dx%d", width, height)
	}

	colorCount, err := input.GetValue()
	if err != nil {
		return Header{}, err
	}
	if colorCount > palette.MaxColors {
		return Header{}, errors.Newf(
			errors.FormatInvalid,
			"palette has %d colors, can't exceed %d",
			colorCount,
			palette.MaxColors,
		)
	}

	colors := make(palette.Palette, colorCount)
	for i := range colors {
		var levels [3]uint8
		for channel := range levels {
			level, err := input.UpdateValue(0)
			if err != nil {
				return Header{}, err
			}
			levels[channel] = uint8(level)
		}
		colors[i] = palette.FromLevels(levels[0], levels[1], levels[2])
	}

	return Header{Width: width, Height: height, Palette: colors}, nil
}
