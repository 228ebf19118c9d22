// Package compression implements the dictionary compressor used on the final
// Pinto text.
//
// The run-length stage produces long, very repetitive streams: neighbouring
// rows of an image tend to produce the same run values, and every color layer
// ends with the same marker. A general purpose compressor would do well on this
// but its output is binary, which defeats the point of a printable format. The
// scheme here is a small LZ77 variant whose tokens are themselves written in
// the format's own alphabet, so the compressed text can still be copied,
// pasted, and line-wrapped.
//
// Any run of at least four characters that already occurred within the last
// 4095 characters is replaced with a back-reference:
//
//	?DL     distance 1-63, both D and L written as variable-length values
//	@ddL    distance 64-4095, written as exactly two base 64 digits, then
//	        L as a variable-length value
//
// Everything else is copied through as a literal. A match of exactly four
// characters at a distance of 64 or more would take four characters to encode,
// so it's left as literals. For example:
//
//	AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA
//	A?1;
//
// The literal "A" followed by "copy 63 characters starting 1 back".
//
// The longest match always wins, and among matches of the same length the
// closest one is used. This choice is part of the format: two encoders that
// pick different matches produce different (though equally decodable) text, and
// existing encodings are compared byte for byte in tests.
//
// Back-references may overlap the text they produce. The decoder copies one
// character at a time, which is what allows "A?1;" to expand a single "A" into
// 64 of them.
package compression
