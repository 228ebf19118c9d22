package text

import (
	"github.com/GeekHorse/Pinto/errors"
)

// MaxLength is the hard ceiling on the number of characters a [Buffer] can
// hold. It matches the largest image (4096 x 4096) and keeps a small crafted
// input from expanding into an unbounded amount of memory.
const MaxLength = 4096 * 4096

// DefaultGrowth is the smallest number of characters a buffer grows by when it
// runs out of room, unless configured otherwise.
const DefaultGrowth = 1024

// AllocFunc allocates a zeroed byte slice of exactly `size` bytes.
type AllocFunc func(size int) ([]byte, error)

// DefaultAlloc allocates with make() and never fails.
func DefaultAlloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Buffer is an append-only sequence of format characters with a forward read
// cursor. The zero value is not usable; create one with [New].
type Buffer struct {
	data   []byte
	index  int
	growth int
	alloc  AllocFunc
}

// New creates an empty buffer that grows `growth` characters at a time,
// getting its memory from `alloc`. A `growth` less than 1 selects
// [DefaultGrowth] and a nil `alloc` selects [DefaultAlloc].
func New(growth int, alloc AllocFunc) (*Buffer, error) {
	if growth < 1 {
		growth = DefaultGrowth
	}
	if alloc == nil {
		alloc = DefaultAlloc
	}

	buffer := &Buffer{growth: growth, alloc: alloc}
	if err := buffer.reserve(1); err != nil {
		return nil, err
	}
	return buffer, nil
}

// FromString creates a buffer with default settings holding the accepted
// characters of `s`.
func FromString(s string) (*Buffer, error) {
	buffer, err := New(DefaultGrowth, nil)
	if err != nil {
		return nil, err
	}
	if err = buffer.AddString(s); err != nil {
		return nil, err
	}
	return buffer, nil
}

// reserve makes sure there's room for `extra` more characters without touching
// the ceiling check; callers do that first.
func (b *Buffer) reserve(extra int) error {
	needed := len(b.data) + extra
	if needed <= cap(b.data) {
		return nil
	}

	// At least one growth unit, or half the current capacity if that's more.
	step := b.growth
	if half := cap(b.data) / 2; half > step {
		step = half
	}
	newSize := cap(b.data) + step
	if newSize > MaxLength {
		newSize = MaxLength
	}
	if newSize < needed {
		newSize = needed
	}

	newData, err := b.alloc(newSize)
	if err != nil {
		return errors.NewFromError(errors.MemoryAllocationFailed, err)
	}
	if len(newData) < newSize {
		return errors.Newf(
			errors.MemoryAllocationFailed,
			"allocator returned %d bytes, wanted %d",
			len(newData),
			newSize,
		)
	}

	used := copy(newData, b.data)
	b.data = newData[:used:newSize]
	return nil
}

// AddChar appends one character. Characters that aren't part of the format
// are silently dropped. Going past [MaxLength] is a FormatTooLong error.
func (b *Buffer) AddChar(ch byte) error {
	if !IsAccepted(ch) {
		return nil
	}

	if len(b.data)+1 > MaxLength {
		return errors.Newf(
			errors.FormatTooLong, "text can't exceed %d characters", MaxLength)
	}

	if err := b.reserve(1); err != nil {
		return err
	}
	b.data = append(b.data, ch)
	return nil
}

// AddString appends every character of `s` with [Buffer.AddChar].
func (b *Buffer) AddString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := b.AddChar(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// Write implements [io.Writer] on top of [Buffer.AddChar]. The returned count
// includes characters that were dropped.
func (b *Buffer) Write(p []byte) (int, error) {
	for i, ch := range p {
		if err := b.AddChar(ch); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// AddValue appends the variable-length encoding of `value`.
func (b *Buffer) AddValue(value int) error {
	if value < 0 || value > MaxValue {
		return errors.Newf(
			errors.Precondition, "value %d not in [0, %d]", value, MaxValue)
	}

	var scratch [5]byte
	for _, ch := range AppendValue(scratch[:0], value) {
		if err := b.AddChar(ch); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of characters stored.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Remaining returns the number of characters not yet read.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.index
}

// AtEnd returns true if every character has been read.
func (b *Buffer) AtEnd() bool {
	return b.index == len(b.data)
}

// Bytes returns the stored characters. The slice aliases the buffer and is only
// valid until the next append.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns a copy of the stored characters.
func (b *Buffer) String() string {
	return string(b.data)
}

// Release hands the stored characters over to the caller and empties the
// buffer. Calling it again returns nil.
func (b *Buffer) Release() []byte {
	data := b.data
	b.data = nil
	b.index = 0
	return data
}

func errUnexpectedEnd(what string) error {
	return errors.Newf(errors.FormatInvalid, "unexpected end of text reading %s", what)
}

// PeekChar returns the next unread character without consuming it.
func (b *Buffer) PeekChar() (byte, error) {
	if b.AtEnd() {
		return 0, errUnexpectedEnd("character")
	}
	return b.data[b.index], nil
}

// GetChar consumes and returns the next unread character.
func (b *Buffer) GetChar() (byte, error) {
	if b.AtEnd() {
		return 0, errUnexpectedEnd("character")
	}
	ch := b.data[b.index]
	b.index++
	return ch, nil
}

// UpdateValue consumes one digit and returns `value*64 + digit`. This is the
// building block for every multi-digit number in the format.
func (b *Buffer) UpdateValue(value int) (int, error) {
	if b.AtEnd() {
		return 0, errUnexpectedEnd("digit")
	}

	ch := b.data[b.index]
	digit, ok := DigitValue(ch)
	if !ok {
		return 0, errors.Newf(
			errors.FormatInvalid, "%q at offset %d is not a digit", ch, b.index)
	}
	b.index++
	return value*64 + digit, nil
}

// GetValue consumes and decodes one variable-length integer.
func (b *Buffer) GetValue() (int, error) {
	ch, err := b.PeekChar()
	if err != nil {
		return 0, err
	}

	value := 0
	digits := 1

	switch {
	case ch >= firstTierChar && ch <= lastTierChar:
		b.index++
		value = int(ch - tierBase)
	case ch == marker2Digits:
		b.index++
		digits = 2
	case ch == marker3Digits:
		b.index++
		digits = 3
	case ch == marker4Digits:
		b.index++
		digits = 4
	}

	for ; digits > 0; digits-- {
		value, err = b.UpdateValue(value)
		if err != nil {
			return 0, err
		}
	}
	return value, nil
}

// Expand appends `length` characters copied from `distance` characters before
// the current end. Characters are copied one at a time in increasing order, so
// when `length` is greater than `distance` the copy repeats its own output:
// "ABCDE" expanded with distance 2 and length 5 becomes "ABCDEDEDED".
func (b *Buffer) Expand(distance, length int) error {
	if distance <= 0 {
		return errors.Newf(errors.FormatInvalid, "invalid back-reference distance %d", distance)
	}
	if length <= 0 {
		return errors.Newf(errors.FormatInvalid, "invalid back-reference length %d", length)
	}
	if distance > len(b.data) {
		return errors.Newf(
			errors.FormatInvalid,
			"back-reference distance %d reaches before start of %d characters",
			distance,
			len(b.data),
		)
	}
	if len(b.data)+length > MaxLength {
		return errors.Newf(
			errors.FormatTooLong,
			"expanding %d characters would exceed %d",
			length,
			MaxLength,
		)
	}

	if err := b.reserve(length); err != nil {
		return err
	}

	end := len(b.data)
	source := end - distance
	b.data = b.data[:end+length]
	for i := 0; i < length; i++ {
		b.data[end+i] = b.data[source+i]
	}
	return nil
}
