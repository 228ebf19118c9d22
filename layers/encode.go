package layers

import (
	"github.com/GeekHorse/Pinto/errors"
	"github.com/GeekHorse/Pinto/palette"
	"github.com/GeekHorse/Pinto/utilities/text"
)

// Encode writes the run lengths of every color from 0 to `colorCount - 1` to
// `output`.
func Encode(indexes palette.IndexMap, colorCount int, output *text.Buffer) error {
	if colorCount < 0 || colorCount > palette.MaxColors {
		return errors.Newf(
			errors.Precondition, "color count %d not in [0, %d]", colorCount, palette.MaxColors)
	}

	// The pixels are grouped once; membership only changes at run boundaries.
	runs := GroupRuns(indexes)
	for color := 0; color < colorCount; color++ {
		if err := encodeColor(runs, int8(color), output); err != nil {
			return err
		}
	}
	return nil
}

func encodeColor(runs []IndexRun, color int8, output *text.Buffer) error {
	state := Off
	count := 0

	for _, run := range runs {
		switch {
		case state == Off && run.Index == color,
			state == On && run.Index < color:
			if err := output.AddValue(count); err != nil {
				return err
			}
			state = state.Toggle()
			count = run.Length
		default:
			count += run.Length
		}
	}
	return output.AddChar(EndMarker)
}
