package pinto_test

import (
	"bytes"
	"log"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/GeekHorse/Pinto"
	"github.com/GeekHorse/Pinto/palette"
	ptesting "github.com/GeekHorse/Pinto/testing"
	"github.com/GeekHorse/Pinto/utilities/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodingTestCase struct {
	Width    int
	Height   int
	Runs     [][5]int // start, length, red, green, blue
	Expected string
	Name     string
}

var encodingTestCases = []encodingTestCase{
	{1, 1, nil, "a110", "1x1 transparent"},
	{1, 1, [][5]int{{0, 1, 255, 255, 255}}, "a111;;;0^", "1x1 white"},
	{1, 1, [][5]int{{0, 1, 0, 0, 0}}, "a1110000^", "1x1 black"},
	{8, 8, [][5]int{{0, 64, 0, 0, 0}}, "00^", "8x8 black"},
	{7, 7, [][5]int{{0, 49, 0, 0, 0}}, "a7710000^", "7x7 black"},
	{16, 16, [][5]int{{0, 256, 0, 0, 0}}, "10^", "16x16 black"},
	{16, 16, [][5]int{{1, 255, 0, 0, 0}}, "11^", "16x16 black after transparent"},
	{8, 8, [][5]int{{0, 64, 255, 255, 255}}, "a881;;;0^", "8x8 white"},
	{16, 8, [][5]int{{0, 128, 0, 0, 0}}, "ag810000^", "16x8 black"},
	{
		4, 1,
		[][5]int{{0, 1, 255, 0, 0}, {1, 1, 0, 255, 0}, {2, 1, 255, 0, 0}},
		"a412;000;003^11^",
		"overdraw",
	},
}

func createImage(width, height int, runs [][5]int, t *testing.T) *pinto.Image {
	img := ptesting.CreateImage(width, height, t)
	for _, run := range runs {
		ptesting.AddRun(img, run[0], run[1], uint8(run[2]), uint8(run[3]), uint8(run[4]))
	}
	return img
}

func TestEncode__Vectors(t *testing.T) {
	for _, test := range encodingTestCases {
		t.Run(
			test.Name,
			func(t *testing.T) {
				img := createImage(test.Width, test.Height, test.Runs, t)
				encoded := ptesting.VerifyRoundTrip(pinto.New(pinto.Options{}), img, t)
				assert.Equal(t, test.Expected, encoded)
			},
		)
	}
}

func TestEncode__LargestShorthand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 4096x4096 image in short mode")
	}

	img := createImage(pinto.MaxDimension, pinto.MaxDimension, nil, t)
	ptesting.AddRun(img, 0, len(img.RGBA)/4, 0, 0, 0)

	encoded, err := pinto.Encode(img)
	require.NoError(t, err)
	assert.Equal(t, "90^", encoded)
}

func TestEncode__LargeImages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 4096x4096 images in short mode")
	}

	const pixels = pinto.MaxDimension * pinto.MaxDimension
	tests := map[string][][5]int{
		"transparent":             nil,
		"white":                   {{0, pixels, 255, 255, 255}},
		"first pixel transparent": {{1, pixels - 1, 255, 255, 255}},
		"last pixel transparent":  {{0, pixels - 1, 255, 255, 255}},
		"first pixel black":       {{0, 1, 0, 0, 0}, {1, pixels - 1, 255, 255, 255}},
		"last pixel black":        {{0, pixels - 1, 255, 255, 255}, {pixels - 1, 1, 0, 0, 0}},
	}

	codec := pinto.New(pinto.Options{})
	for name, runs := range tests {
		t.Run(
			name,
			func(t *testing.T) {
				img := createImage(pinto.MaxDimension, pinto.MaxDimension, runs, t)
				ptesting.VerifyRoundTrip(codec, img, t)
			},
		)
	}
}

func TestEncode__Quantization(t *testing.T) {
	img := ptesting.CreateImage(1, 14, t)
	for channel := 0; channel < 3; channel++ {
		for i, value := range []uint8{0x01, 0x40, 0x80, 0xC0} {
			offset := (channel*4 + i) * 4
			img.RGBA[offset+channel] = value
			img.RGBA[offset+3] = 0xFF
		}
	}
	ptesting.AddRun(img, 12, 1, 0, 0, 0)
	ptesting.AddRun(img, 13, 1, 255, 255, 255)

	encoded, err := pinto.Encode(img)
	require.NoError(t, err)
	decoded, err := pinto.DecodeString(encoded)
	require.NoError(t, err)

	for channel := 0; channel < 3; channel++ {
		for i, value := range []uint8{0x00, 0x41, 0x82, 0xC3} {
			offset := (channel*4 + i) * 4
			assert.Equalf(
				t, value, decoded.RGBA[offset+channel], "channel %d, pixel %d", channel, i)
		}
	}
	assert.Equal(t, []byte{0, 0, 0, 0xFF}, decoded.RGBA[12*4:13*4])
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, decoded.RGBA[13*4:])
}

func TestEncode__BadImages(t *testing.T) {
	pixel := []byte{0, 0, 0, 0}
	for _, size := range [][2]int{{0, 1}, {1, 0}, {pinto.MaxDimension + 1, 1}, {1, pinto.MaxDimension + 1}, {-1, -1}} {
		_, err := pinto.Encode(&pinto.Image{Width: size[0], Height: size[1], RGBA: pixel})
		assert.ErrorIsf(t, err, pinto.ErrImageBadSize, "%dx%d", size[0], size[1])
	}

	_, err := pinto.Encode(nil)
	assert.ErrorIs(t, err, pinto.ErrPrecondition)

	img := ptesting.CreateImage(32, 32, t)
	img.RGBA[3] = 1
	_, err = pinto.Encode(img)
	assert.ErrorIs(t, err, pinto.ErrImagePartialTransparency)

	img = ptesting.CreateImage(32, 32, t)
	img.RGBA[len(img.RGBA)-1] = 1
	_, err = pinto.Encode(img)
	assert.ErrorIs(t, err, pinto.ErrImagePartialTransparency)

	img = ptesting.CreateImage(8, 8, t)
	for i := 0; i < 64; i++ {
		ptesting.AddRun(img, i, 1, palette.Reduce(uint8(i*4)), 0, 0)
	}
	_, err = pinto.Encode(img)
	assert.ErrorIs(t, err, pinto.ErrImageTooManyColors)
}

func TestDecode__GoodFormats(t *testing.T) {
	formats := []string{
		"a441000?64^",
		"   \n\t_a4~4` |\\  !\"1[0~]0{0?_64^}  ",
		pinto.Wrap("a441000?64^", 3),
	}

	expected := make([]byte, 4*4*4)
	for i := 4; i < 8; i++ {
		expected[i*4+3] = 0xFF
	}

	for _, format := range formats {
		img, err := pinto.DecodeString(format)
		require.NoErrorf(t, err, "failed to decode %q", format)
		assert.Equal(t, 4, img.Width)
		assert.Equal(t, 4, img.Height)
		assert.Equal(t, expected, img.RGBA)
	}
}

var badFormats = []string{
	"Z0410000121812^",
	"a0410000121812^",
	"a^410000121812^",
	"a4010000121812^",
	"a4^10000121812^",
	"a44^0000121812^",
	"a44#00000121812^",
	"a441^000121812^",
	"a4410^00121812^",
	"a44100^0121812^",
	"a4410000121813^",
	"a4410000121814^",
	"a4410000121812#",
	"a441000##",
	"a441000<^",
	"a441000=^",
	"a441000=1^",
	"a441000>^",
	"a441000>1^",
	"a441000>11^",
	"a441000?04",
	"a441000?84",
	"a441000?^",
	"a441000@004",
	"a441000@084",
	"a441000@^",
	"a441000@0^",
	"a441000?60",
	"a441000?6^",
	"a441000@060",
	"a441000@06^",
	"a4410000121812^0",
	"a=101=1001000^",
	"a1=1011000^",
}

func TestDecode__BadFormats(t *testing.T) {
	formats := append([]string{}, badFormats...)

	// Every truncation of a valid encoding is invalid too.
	const valid = "a4410000121812^"
	_, err := pinto.DecodeString(valid)
	require.NoError(t, err, "base case for truncation tests is broken")
	for i := 0; i < len(valid); i++ {
		formats = append(formats, valid[:i])
	}

	for _, format := range formats {
		img, err := pinto.DecodeString(format)
		assert.ErrorIsf(t, err, pinto.ErrFormatInvalid, "format %q", format)
		assert.Nilf(t, img, "format %q", format)
	}
}

func TestDecode__TooLong(t *testing.T) {
	img, err := pinto.DecodeString("a?1>;;;;")
	assert.ErrorIs(t, err, pinto.ErrFormatInvalid, "expands fine but isn't an image")
	assert.Nil(t, img)

	_, err = pinto.DecodeString("aa?1>;;;;")
	assert.ErrorIs(t, err, pinto.ErrFormatTooLong)
}

func TestDecodeText__ReleasesBuffer(t *testing.T) {
	input, err := text.FromString("00^")
	require.NoError(t, err)

	img, err := pinto.DecodeText(input)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Width)
	assert.Equal(t, 0, input.Len(), "buffer wasn't released")

	_, err = pinto.DecodeText(nil)
	assert.ErrorIs(t, err, pinto.ErrPrecondition)
}

func TestEncodeText(t *testing.T) {
	img := createImage(16, 16, [][5]int{{0, 256, 0, 0, 0}}, t)

	output, err := pinto.New(pinto.Options{}).EncodeText(img)
	require.NoError(t, err)
	assert.Equal(t, "10^", output.String())

	decoded, err := pinto.DecodeText(output)
	require.NoError(t, err)
	assert.Equal(t, img.RGBA, decoded.RGBA)
}

func TestInspect(t *testing.T) {
	header, err := pinto.Inspect("30^")
	require.NoError(t, err)
	assert.Equal(
		t,
		pinto.Header{Width: 64, Height: 64, Palette: palette.Palette{palette.Black}, Shorthand: true},
		header,
	)
	assert.Equal(t, 64*64, header.PixelCount())

	header, err = pinto.Inspect("a412;000;003^11^")
	require.NoError(t, err)
	assert.Equal(t, 4, header.Width)
	assert.Equal(t, 1, header.Height)
	assert.False(t, header.Shorthand)
	assert.Equal(
		t,
		palette.Palette{{R: 0xFF}, {G: 0xFF}},
		header.Palette,
	)

	// Only the header has to be valid.
	_, err = pinto.Inspect("a4410000121813^")
	assert.NoError(t, err)

	_, err = pinto.Inspect("Z")
	assert.ErrorIs(t, err, pinto.ErrFormatInvalid)
}

func TestRandomImages(t *testing.T) {
	tests := []struct {
		Name    string
		Count   int
		Options ptesting.RandomImageOptions
	}{
		{"simple square", 10, ptesting.RandomImageOptions{MaxColors: 1, BlackOnly: true, SimpleSizes: true, Square: true}},
		{"simple", 10, ptesting.RandomImageOptions{MaxColors: 1, BlackOnly: true, SimpleSizes: true}},
		{"small", 2000, ptesting.RandomImageOptions{MaxColors: 3, MaxSize: 32}},
		{"worst case", 20, ptesting.RandomImageOptions{MaxColors: palette.MaxColors, MaxSize: 512}},
	}

	rng := rand.New(rand.NewSource(1))
	codec := pinto.New(pinto.Options{})

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				count := test.Count
				if testing.Short() {
					count = (count + 9) / 10
				}
				for i := 0; i < count; i++ {
					img := ptesting.CreateRandomImage(rng, test.Options, t)
					ptesting.VerifyRoundTrip(codec, img, t)
					if t.Failed() {
						return
					}
				}
			},
		)
	}
}

func TestCodec__AllocationFailures(t *testing.T) {
	img := createImage(
		5, 4,
		[][5]int{{0, 7, 255, 0, 0}, {7, 3, 0, 0, 255}, {12, 6, 255, 0, 0}},
		t,
	)

	var encoded string
	for failOn := 0; ; failOn++ {
		require.Less(t, failOn, 1000, "encoding never succeeded")

		allocator := &ptesting.FailingAllocator{FailOn: failOn}
		codec := pinto.New(pinto.Options{TextGrowth: 1, Alloc: allocator.Alloc})

		result, err := codec.Encode(img)
		if err == nil {
			encoded = result
			break
		}
		assert.ErrorIs(t, err, pinto.ErrMemoryAllocationFailed)
		assert.Empty(t, result)
	}

	for failOn := 0; ; failOn++ {
		require.Less(t, failOn, 1000, "decoding never succeeded")

		allocator := &ptesting.FailingAllocator{FailOn: failOn}
		codec := pinto.New(pinto.Options{TextGrowth: 1, Alloc: allocator.Alloc})

		decoded, err := codec.DecodeString(encoded)
		if err == nil {
			assert.Equal(t, ptesting.Quantized(img), decoded.RGBA)
			break
		}
		assert.ErrorIs(t, err, pinto.ErrMemoryAllocationFailed)
		assert.Nil(t, decoded)
	}
}

func TestCodec__DirtyAllocator(t *testing.T) {
	codec := pinto.New(pinto.Options{TextGrowth: 3, Alloc: ptesting.DirtyAlloc})
	img := createImage(9, 3, [][5]int{{2, 20, 10, 20, 30}}, t)
	ptesting.VerifyRoundTrip(codec, img, t)
}

func TestCodec__Logging(t *testing.T) {
	var output bytes.Buffer
	codec := pinto.New(pinto.Options{Logger: log.New(&output, "", 0)})

	img := createImage(2, 2, [][5]int{{0, 4, 0, 0, 0}}, t)
	_, err := codec.Encode(img)
	require.NoError(t, err)
	_, err = codec.DecodeString("Z")
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "encoded 2x2 image: 1 colors")
	assert.Contains(t, lines[1], "decode failed: Format Invalid Error")
}

func TestCodec__Concurrent(t *testing.T) {
	codec := pinto.New(pinto.Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for j := 0; j < 20; j++ {
				img := ptesting.CreateRandomImage(
					rng, ptesting.RandomImageOptions{MaxColors: 8, MaxSize: 64}, t)
				ptesting.VerifyRoundTrip(codec, img, t)
			}
		}(int64(i))
	}
	wg.Wait()
}

func TestStrError(t *testing.T) {
	assert.Equal(t, "Format Invalid Error", pinto.StrError(pinto.CodeOf(pinto.ErrFormatInvalid)))
	assert.Equal(t, "Success", pinto.StrError(pinto.CodeOf(nil)))
	assert.Equal(t, "Unknown Error", pinto.StrError(-1))
	assert.Equal(t, "Unknown Error", pinto.StrError(1000))
}
