package text

// Digits is the value-to-character table for base 64 digits.
const Digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ:;"

const (
	// tierBase is the character just before the first compact tier prefix;
	// a value v in [64, 896) is written as tierBase+v/64 followed by a digit.
	tierBase       = '"'
	firstTierChar  = '#'
	lastTierChar   = '/'
	marker2Digits  = '<'
	marker3Digits  = '='
	marker4Digits  = '>'
	compactTierMax = 64 * 14
)

// MaxValue is the largest integer that can be written with the variable-length
// encoding.
const MaxValue = 64*64*64*64 - 1

// Digit returns the character for a value in [0, 63].
func Digit(value int) byte {
	return Digits[value&63]
}

// DigitValue returns the value of a digit character. The second return value
// is false if `ch` isn't a digit.
func DigitValue(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 36, true
	case ch == ':':
		return 62, true
	case ch == ';':
		return 63, true
	}
	return 0, false
}

// IsAccepted returns true if a [Buffer] stores `ch` rather than discarding it.
func IsAccepted(ch byte) bool {
	if ch < '#' || ch > 'z' {
		return false
	}
	switch ch {
	case '[', '\\', ']', '_', '`':
		return false
	}
	return true
}

// EncodedLen returns the number of characters [AppendValue] writes for
// `value`.
func EncodedLen(value int) int {
	switch {
	case value < 64:
		return 1
	case value < compactTierMax:
		return 2
	case value < 64*64:
		return 3
	case value < 64*64*64:
		return 4
	}
	return 5
}

// AppendValue appends the variable-length encoding of `value` to `dst` and
// returns the extended slice. `value` must be in [0, MaxValue]; callers are
// responsible for range checks.
func AppendValue(dst []byte, value int) []byte {
	switch {
	case value < 64:
		return append(dst, Digit(value))
	case value < compactTierMax:
		return append(dst, byte(tierBase+value/64), Digit(value))
	case value < 64*64:
		return append(dst, marker2Digits, Digit(value>>6), Digit(value))
	case value < 64*64*64:
		return append(dst, marker3Digits, Digit(value>>12), Digit(value>>6), Digit(value))
	}
	return append(
		dst, marker4Digits, Digit(value>>18), Digit(value>>12), Digit(value>>6), Digit(value))
}
