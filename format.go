package pinto

import (
	"github.com/GeekHorse/Pinto/palette"
)

const (
	// MaxDimension is the largest width or height an image can have.
	MaxDimension = 4096

	// fullHeaderMarker starts a header that spells out the dimensions and the
	// palette.
	fullHeaderMarker = 'a'

	// A shorthand header is one digit k in [0, 9] for a pure black square
	// image with sides of shorthandBaseSide << k pixels.
	shorthandBaseSide = 8
	shorthandClasses  = 10
)

// ShorthandSide returns the side length of the square image described by
// shorthand header `class`.
func ShorthandSide(class int) int {
	return shorthandBaseSide << class
}

// shorthandClass returns the shorthand header digit for an image, if there is
// one.
func shorthandClass(width, height int, colors palette.Palette) (int, bool) {
	if width != height || !colors.IsShorthand() {
		return 0, false
	}
	for class := 0; class < shorthandClasses; class++ {
		if ShorthandSide(class) == width {
			return class, true
		}
	}
	return 0, false
}

func validDimension(size int) bool {
	return size >= 1 && size <= MaxDimension
}
