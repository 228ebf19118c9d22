package pinto

import (
	"strings"
)

// Wrap breaks encoded text into lines of at most `width` characters. Decoding
// ignores the line breaks. A `width` less than 1 returns `s` unchanged.
func Wrap(s string, width int) string {
	if width < 1 || len(s) <= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + len(s)/width)
	for len(s) > width {
		builder.WriteString(s[:width])
		builder.WriteByte('\n')
		s = s[width:]
	}
	builder.WriteString(s)
	return builder.String()
}
