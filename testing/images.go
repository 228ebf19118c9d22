package testing

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/GeekHorse/Pinto"
	"github.com/GeekHorse/Pinto/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// CreateImage creates a fully transparent image, failing the test if that
// isn't possible.
func CreateImage(width, height int, t *testing.T) *pinto.Image {
	img, err := pinto.Init(width, height)
	require.NoErrorf(t, err, "failed to create %dx%d image", width, height)
	return img
}

// AddRun paints `length` opaque pixels of one color, starting at pixel index
// `start` in raster order.
func AddRun(img *pinto.Image, start, length int, r, g, b uint8) {
	for i := start; i < start+length; i++ {
		copy(img.RGBA[i*4:], []byte{r, g, b, 0xFF})
	}
}

// RandomImageOptions controls what [CreateRandomImage] draws.
type RandomImageOptions struct {
	// MaxColors is the most colors drawn. Colors are picked at random, so
	// two may reduce to the same palette entry.
	MaxColors int
	// BlackOnly draws every mark in black.
	BlackOnly bool
	// SimpleSizes restricts sides to powers of two from 8 to 4096.
	SimpleSizes bool
	// Square forces the height to match the width.
	Square bool
	// MaxSize is the largest side when SimpleSizes is false.
	MaxSize int
}

// CreateRandomImage creates a transparent image and draws random dots, lines
// and rectangles on it.
func CreateRandomImage(rng *rand.Rand, options RandomImageOptions, t *testing.T) *pinto.Image {
	var width, height int
	if options.SimpleSizes {
		width = 1 << (rng.Intn(10) + 3)
		height = 1 << (rng.Intn(10) + 3)
	} else {
		width = rng.Intn(options.MaxSize) + 1
		height = rng.Intn(options.MaxSize) + 1
	}
	if options.Square {
		height = width
	}

	img := CreateImage(width, height, t)

	colorCount := rng.Intn(options.MaxColors) + 1
	for i := 0; i < colorCount; i++ {
		var rgb [3]uint8
		if !options.BlackOnly {
			rng.Read(rgb[:])
		}

		marks := rng.Intn(100) + 1
		for j := 0; j < marks; j++ {
			x1, y1 := rng.Intn(width), rng.Intn(height)
			x2, y2 := x1+1, y1+1

			switch rng.Intn(4) {
			case 1:
				y2 = rng.Intn(height) + 1
			case 2:
				x2 = rng.Intn(width) + 1
			case 3:
				x2 = rng.Intn(width) + 1
				y2 = rng.Intn(height) + 1
			}
			if x2 < x1 {
				x1, x2 = x2, x1
			}
			if y2 < y1 {
				y1, y2 = y2, y1
			}

			for y := y1; y < y2; y++ {
				AddRun(img, y*width+x1, x2-x1, rgb[0], rgb[1], rgb[2])
			}
		}
	}
	return img
}

// Quantized returns what decoding an encoded copy of `img` should give: every
// channel of an opaque pixel reduced, and transparent pixels zeroed.
func Quantized(img *pinto.Image) []byte {
	expected := make([]byte, len(img.RGBA))
	for i := 0; i < len(img.RGBA); i += 4 {
		if img.RGBA[i+3] == 0 {
			continue
		}
		expected[i] = palette.Reduce(img.RGBA[i])
		expected[i+1] = palette.Reduce(img.RGBA[i+1])
		expected[i+2] = palette.Reduce(img.RGBA[i+2])
		expected[i+3] = 0xFF
	}
	return expected
}

// VerifyRoundTrip encodes and decodes an image with `codec`, and checks the
// result against [Quantized]. It returns the encoded text.
func VerifyRoundTrip(codec *pinto.Codec, img *pinto.Image, t *testing.T) string {
	encoded, err := codec.Encode(img)
	require.NoErrorf(t, err, "failed to encode %dx%d image", img.Width, img.Height)

	decoded, err := codec.DecodeString(encoded)
	require.NoErrorf(t, err, "failed to decode %dx%d image", img.Width, img.Height)
	defer decoded.Free()

	assert.Equal(t, img.Width, decoded.Width, "width is wrong")
	assert.Equal(t, img.Height, decoded.Height, "height is wrong")
	if !assert.Equal(t, len(img.RGBA), len(decoded.RGBA), "pixel data is wrong size") {
		return encoded
	}

	expected := Quantized(img)
	if bytes.Equal(expected, decoded.RGBA) {
		return encoded
	}
	for i := 0; i < len(expected); i += 4 {
		if !bytes.Equal(expected[i:i+4], decoded.RGBA[i:i+4]) {
			assert.Failf(
				t,
				"decoded image is wrong",
				"pixel (%d, %d) is %v, expected %v",
				(i/4)%img.Width,
				(i/4)/img.Width,
				decoded.RGBA[i:i+4],
				expected[i:i+4],
			)
			break
		}
	}
	return encoded
}

// LoadRawImage returns a stream over a copy of an image's raw RGBA bytes.
//
//   - Writes to the stream do not affect `img`.
//   - While the stream can be written to, its size is fixed. Attempting to
//     write past the end triggers an error.
func LoadRawImage(img *pinto.Image, t *testing.T) io.ReadWriteSeeker {
	require.Greater(t, len(img.RGBA), 0, "image has no pixel data")

	raw := make([]byte, len(img.RGBA))
	copy(raw, img.RGBA)
	return bytesextra.NewReadWriteSeeker(raw)
}
