// Package palette reduces 8-bit color channels to the 64 levels the Pinto
// format can represent, and builds the indexed form of an image.
package palette

import (
	"fmt"
	"image/color"
)

// MaxColors is the largest number of opaque colors one image can use.
const MaxColors = 63

// Levels is the number of distinct values a reduced channel can take.
const Levels = 64

// Reduce maps an 8-bit channel value onto the nearest of the 64 representable
// levels. The top six bits are kept and the low two bits are replaced with a
// copy of the top two, so 0 and 255 come out unchanged.
func Reduce(x uint8) uint8 {
	return (x & 0xFC) | (x >> 6)
}

// Expand turns a 6-bit level (0-63) back into an 8-bit channel value. For any
// level v, Expand(v) == Reduce(Expand(v)).
func Expand(level uint8) uint8 {
	level &= 0x3F
	return (level << 2) | (level >> 4)
}

// Color is an opaque color whose channels have already been reduced.
type Color struct {
	R, G, B uint8
}

// Black is the only color the shorthand header can describe.
var Black = Color{}

// NewColor reduces the three channels of an arbitrary color.
func NewColor(r, g, b uint8) Color {
	return Color{R: Reduce(r), G: Reduce(g), B: Reduce(b)}
}

// FromLevels builds a color from three 6-bit levels, as stored in the text
// format.
func FromLevels(r, g, b uint8) Color {
	return Color{R: Expand(r), G: Expand(g), B: Expand(b)}
}

// Levels returns the 6-bit level of each channel.
func (c Color) Levels() [3]uint8 {
	return [3]uint8{c.R >> 2, c.G >> 2, c.B >> 2}
}

// key packs the three levels into an 18-bit number.
func (c Color) key() int {
	return int(c.R>>2)<<12 | int(c.G>>2)<<6 | int(c.B>>2)
}

// RGBA implements [color.Color]. The alpha is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is an ordered list of colors. The order is significant: it's the
// order colors were first seen in, and it decides which layer is painted over
// which when decoding.
type Palette []Color

// IndexOf returns the index of `c` in the palette, or -1 if it's not there.
func (p Palette) IndexOf(c Color) int {
	for i, entry := range p {
		if entry == c {
			return i
		}
	}
	return -1
}

// IsShorthand returns true if the palette is the single pure black color that
// the one-character header implies.
func (p Palette) IsShorthand() bool {
	return len(p) == 1 && p[0] == Black
}
