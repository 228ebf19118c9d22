package pinto

import (
	"github.com/GeekHorse/Pinto/errors"
	"github.com/GeekHorse/Pinto/layers"
	"github.com/GeekHorse/Pinto/palette"
	"github.com/GeekHorse/Pinto/utilities/compression"
	"github.com/GeekHorse/Pinto/utilities/text"
)

// EncodeText converts an image to Pinto text and returns it in a buffer owned
// by the caller.
//
// Every pixel must be fully opaque or fully transparent, and the image can use
// at most 63 colors after each channel is reduced to 64 levels. Dimensions
// outside [1, MaxDimension] are an ImageBadSize error.
func (c *Codec) EncodeText(img *Image) (*text.Buffer, error) {
	output, err := c.encode(img)
	if err != nil {
		c.logger.Printf("encode failed: %s", err)
		return nil, err
	}
	return output, nil
}

// Encode is [Codec.EncodeText] returning a string.
func (c *Codec) Encode(img *Image) (string, error) {
	output, err := c.EncodeText(img)
	if err != nil {
		return "", err
	}
	return string(output.Release()), nil
}

func (c *Codec) encode(img *Image) (*text.Buffer, error) {
	if img == nil {
		return nil, errors.NewWithMessage(errors.Precondition, "image is nil")
	}
	if !validDimension(img.Width) || !validDimension(img.Height) {
		return nil, errors.Newf(
			errors.ImageBadSize,
			"image dimensions must be in [1, %d], got %dx%d",
			MaxDimension,
			img.Width,
			img.Height,
		)
	}

	colors, indexes, err := palette.Quantize(img.RGBA, img.Width, img.Height)
	if err != nil {
		return nil, err
	}

	stream, err := c.newText()
	if err != nil {
		return nil, err
	}
	if err = writeHeader(stream, img.Width, img.Height, colors); err != nil {
		return nil, err
	}
	if err = layers.Encode(indexes, len(colors), stream); err != nil {
		return nil, err
	}

	output, err := c.newText()
	if err != nil {
		return nil, err
	}
	if err = compression.Deflate(stream.Bytes(), output); err != nil {
		return nil, err
	}

	c.logger.Printf(
		"encoded %dx%d image: %d colors, %d characters deflated to %d",
		img.Width,
		img.Height,
		len(colors),
		stream.Len(),
		output.Len(),
	)
	return output, nil
}

// DecodeString converts Pinto text back into an image. Characters outside the
// format's alphabet, like line breaks, are ignored.
func (c *Codec) DecodeString(s string) (*Image, error) {
	input, err := c.newText()
	if err == nil {
		err = input.AddString(s)
	}
	if err != nil {
		c.logger.Printf("decode failed: %s", err)
		return nil, err
	}
	return c.DecodeText(input)
}

// DecodeText converts Pinto text back into an image. The buffer is consumed
// from its cursor to the end and released, whether or not decoding succeeds.
//
// Any malformed or truncated text, and any text left over after the last
// color, is a FormatInvalid error. Text that expands past [text.MaxLength]
// characters is a FormatTooLong error.
func (c *Codec) DecodeText(input *text.Buffer) (*Image, error) {
	if input == nil {
		return nil, errors.NewWithMessage(errors.Precondition, "text is nil")
	}
	defer input.Release()

	img, err := c.decode(input)
	if err != nil {
		c.logger.Printf("decode failed: %s", err)
		return nil, err
	}
	return img, nil
}

func (c *Codec) inflateHeader(input *text.Buffer) (*text.Buffer, Header, error) {
	stream, err := c.newText()
	if err != nil {
		return nil, Header{}, err
	}
	if err = compression.Inflate(input, stream); err != nil {
		return nil, Header{}, err
	}

	header, err := readHeader(stream)
	if err != nil {
		return nil, Header{}, err
	}
	return stream, header, nil
}

func (c *Codec) decode(input *text.Buffer) (*Image, error) {
	stream, header, err := c.inflateHeader(input)
	if err != nil {
		return nil, err
	}

	img, err := initImage(header.Width, header.Height, c.alloc)
	if err != nil {
		return nil, err
	}

	if err = layers.Decode(stream, header.Palette, img.RGBA); err != nil {
		img.Free()
		return nil, err
	}
	if !stream.AtEnd() {
		img.Free()
		return nil, errors.Newf(
			errors.FormatInvalid,
			"%d characters left over after the last color",
			stream.Remaining(),
		)
	}

	c.logger.Printf(
		"decoded %dx%d image: %d colors from %d characters",
		header.Width,
		header.Height,
		len(header.Palette),
		stream.Len(),
	)
	return img, nil
}

// Inspect decodes only the header of Pinto text, giving an image's size and
// palette without painting any pixels.
func (c *Codec) Inspect(s string) (Header, error) {
	input, err := text.FromString(s)
	if err != nil {
		return Header{}, err
	}

	_, header, err := c.inflateHeader(input)
	if err != nil {
		c.logger.Printf("inspect failed: %s", err)
		return Header{}, err
	}
	return header, nil
}

// Encode converts an image to Pinto text with the default codec.
func Encode(img *Image) (string, error) {
	return defaultCodec.Encode(img)
}

// DecodeString converts Pinto text to an image with the default codec.
func DecodeString(s string) (*Image, error) {
	return defaultCodec.DecodeString(s)
}

// DecodeText converts a buffer of Pinto text to an image with the default
// codec.
func DecodeText(input *text.Buffer) (*Image, error) {
	return defaultCodec.DecodeText(input)
}

// Inspect reads the header of Pinto text with the default codec.
func Inspect(s string) (Header, error) {
	return defaultCodec.Inspect(s)
}
