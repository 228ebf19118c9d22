package pinto

import (
	"image"

	"github.com/GeekHorse/Pinto/errors"
	"github.com/disintegration/gift"
)

// Downsize returns a copy of `img` at half its width and height, averaging
// each 2x2 block of pixels into one. Decoded images only use a handful of
// colors with hard edges, so this is a cheap way to get anti-aliased output.
//
// An odd last row or column is dropped. Images narrower or shorter than two
// pixels are an ImageTooSmall error.
func Downsize(img *Image) (*Image, error) {
	if img == nil {
		return nil, errors.NewWithMessage(errors.Precondition, "image is nil")
	}

	width := img.Width / 2
	height := img.Height / 2
	if width == 0 || height == 0 {
		return nil, errors.Newf(
			errors.ImageTooSmall, "can't halve a %dx%d image", img.Width, img.Height)
	}

	source := img.NRGBA().SubImage(image.Rect(0, 0, width*2, height*2))
	filter := gift.New(gift.Resize(width, height, gift.BoxResampling))

	result, err := Init(width, height)
	if err != nil {
		return nil, err
	}
	filter.Draw(result.NRGBA(), source)
	return result, nil
}
