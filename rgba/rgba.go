// Package rgba reads and writes raw RGBA pixel streams: four bytes per pixel,
// row by row, with no header. This is what tools like ImageMagick produce
// with `convert image.png rgba:-`.
package rgba

import (
	"fmt"
	"io"

	"github.com/GeekHorse/Pinto"
	"github.com/GeekHorse/Pinto/errors"
)

// Read reads exactly `width * height` pixels from `r`. A stream that ends
// early is a StandardLibraryError wrapping the underlying I/O error.
func Read(r io.Reader, width, height int) (*pinto.Image, error) {
	img, err := pinto.Init(width, height)
	if err != nil {
		return nil, err
	}

	if _, err = io.ReadFull(r, img.RGBA); err != nil {
		img.Free()
		return nil, errors.NewFromError(
			errors.StandardLibraryError,
			fmt.Errorf("reading %dx%d pixels: %w", width, height, err),
		)
	}
	return img, nil
}

// Write writes every pixel of `img` to `w`.
func Write(w io.Writer, img *pinto.Image) error {
	if img == nil {
		return errors.NewWithMessage(errors.Precondition, "image is nil")
	}

	if _, err := w.Write(img.RGBA); err != nil {
		return errors.NewFromError(errors.StandardLibraryError, err)
	}
	return nil
}
