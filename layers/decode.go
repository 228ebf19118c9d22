package layers

import (
	"github.com/GeekHorse/Pinto/errors"
	"github.com/GeekHorse/Pinto/palette"
	"github.com/GeekHorse/Pinto/utilities/text"
)

// Decode reads the run lengths of every palette color from `input` and paints
// them into `pixels`, a tightly packed RGBA buffer. Painted pixels are fully
// opaque; pixels no layer covers are left untouched.
//
// A run that reaches or goes past the last pixel is a FormatInvalid error, as
// is running out of text before a color's [EndMarker].
func Decode(input *text.Buffer, colors palette.Palette, pixels []byte) error {
	pixelCount := len(pixels) / 4

	for colorIndex, color := range colors {
		offset := 0
		state := Off

		for {
			ch, err := input.PeekChar()
			if err != nil {
				return err
			}
			if ch == EndMarker {
				// Only peeked, so this can't fail.
				_, _ = input.GetChar()
				break
			}

			length, err := input.GetValue()
			if err != nil {
				return err
			}
			if offset+length >= pixelCount {
				return errors.Newf(
					errors.FormatInvalid,
					"%s run of %d pixels for color %d starts at pixel %d of %d",
					state,
					length,
					colorIndex,
					offset,
					pixelCount,
				)
			}

			if state == On {
				paint(pixels, offset, offset+length, color)
			}
			offset += length
			state = state.Toggle()
		}

		if state == On {
			paint(pixels, offset, pixelCount, color)
		}
	}
	return nil
}

func paint(pixels []byte, start, end int, color palette.Color) {
	for i := start * 4; i < end*4; i += 4 {
		pixels[i] = color.R
		pixels[i+1] = color.G
		pixels[i+2] = color.B
		pixels[i+3] = 0xFF
	}
}
