package pinto

import (
	"image"
	"image/color"

	"github.com/GeekHorse/Pinto/errors"
	"github.com/GeekHorse/Pinto/utilities/text"
)

// Image is a raster of non-premultiplied 8-bit RGBA pixels, stored row by row
// with no padding between rows.
//
// Image implements [image.Image] and [draw.Image], so it can be used anywhere
// the standard library expects an image.
type Image struct {
	Width  int
	Height int
	RGBA   []byte
}

// Init allocates a fully transparent image. Dimensions must be in
// [1, MaxDimension]; anything else is a precondition error.
func Init(width, height int) (*Image, error) {
	return initImage(width, height, text.DefaultAlloc)
}

func initImage(width, height int, alloc text.AllocFunc) (*Image, error) {
	if !validDimension(width) || !validDimension(height) {
		return nil, errors.Newf(
			errors.Precondition,
			"image dimensions must be in [1, %d], got %dx%d",
			MaxDimension,
			width,
			height,
		)
	}

	size := width * height * 4
	pixels, err := alloc(size)
	if err != nil {
		return nil, errors.NewFromError(errors.MemoryAllocationFailed, err)
	}
	if len(pixels) < size {
		return nil, errors.Newf(
			errors.MemoryAllocationFailed,
			"allocator returned %d bytes, wanted %d",
			len(pixels),
			size,
		)
	}

	pixels = pixels[:size]
	// Allocators don't have to hand back zeroed memory.
	for i := range pixels {
		pixels[i] = 0
	}
	return &Image{Width: width, Height: height, RGBA: pixels}, nil
}

// Free releases the pixel data. It's safe to call on a nil or already freed
// image.
func (img *Image) Free() {
	if img == nil {
		return
	}
	img.Width = 0
	img.Height = 0
	img.RGBA = nil
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (img *Image) PixOffset(x, y int) int {
	return (y*img.Width + x) * 4
}

// ColorModel implements [image.Image].
func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements [image.Image].
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements [image.Image]. Points outside the image are transparent.
func (img *Image) At(x, y int) color.Color {
	return img.NRGBAAt(x, y)
}

// NRGBAAt returns the pixel at (x, y) without converting it to an interface.
func (img *Image) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return color.NRGBA{}
	}
	i := img.PixOffset(x, y)
	s := img.RGBA[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Set implements [draw.Image]. Points outside the image are ignored.
func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	converted := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := img.PixOffset(x, y)
	s := img.RGBA[i : i+4 : i+4]
	s[0] = converted.R
	s[1] = converted.G
	s[2] = converted.B
	s[3] = converted.A
}

// NRGBA returns a standard library view of the image. The two share pixel
// data, so changes to one are visible in the other.
func (img *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.RGBA,
		Stride: img.Width * 4,
		Rect:   img.Bounds(),
	}
}

// FromImage copies any image into a new [Image]. The copy starts at (0, 0)
// regardless of where `src` starts.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	img, err := Init(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := 0; y < img.Height; y++ {
			start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(img.RGBA[img.PixOffset(0, y):], nrgba.Pix[start:start+img.Width*4])
		}
		return img, nil
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			img.Set(x, y, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return img, nil
}
