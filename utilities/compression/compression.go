package compression

import (
	"github.com/GeekHorse/Pinto/utilities/text"
)

// DeflateString is a convenience function wrapping [Deflate]. It functions
// identically, except it takes and returns the text as strings instead of
// buffers.
func DeflateString(s string) (string, error) {
	output, err := text.New(0, nil)
	if err != nil {
		return "", err
	}

	if err = Deflate([]byte(s), output); err != nil {
		return "", err
	}
	return string(output.Release()), nil
}

// InflateString takes deflated text and expands it to the original characters.
// Characters that aren't part of the format are ignored, like they are
// everywhere else.
func InflateString(s string) (string, error) {
	input, err := text.FromString(s)
	if err != nil {
		return "", err
	}

	output, err := text.New(0, nil)
	if err != nil {
		return "", err
	}

	if err = Inflate(input, output); err != nil {
		return "", err
	}
	return string(output.Release()), nil
}
