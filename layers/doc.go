// Package layers implements the layered run-length stage of the Pinto format.
//
// Each palette color gets its own stream of run lengths, written in palette
// order. A stream alternates between "off" runs (pixels skipped) and "on" runs
// (pixels painted with the color), always starting with an off run, and ends
// with [EndMarker]. The last run of a stream is never written: a stream ending
// while off leaves the rest of the image alone, and one ending while on paints
// everything up to the last pixel.
//
// For color c, a pixel is "on" if it's color c, or if it's any color with a
// higher index and the current on run started at color c. Later colors paint
// over earlier ones when decoding, so extending a run over higher colors never
// changes the result, and it lets neighboring regions share one long run.
// Transparent pixels and lower colors always end an on run.
package layers
