package compression

import (
	"github.com/GeekHorse/Pinto/errors"
	"github.com/GeekHorse/Pinto/utilities/text"
)

const (
	// MinMatch is the shortest run of characters replaced by a back-reference.
	MinMatch = 4
	// WindowSize is one more than the farthest a back-reference can reach.
	WindowSize = 64 * 64
	// NearMarker introduces a back-reference with a distance under 64.
	NearMarker = '?'
	// FarMarker introduces a back-reference with a two-digit distance.
	FarMarker = '@'

	nearDistanceLimit = 64
)

// matchFinder looks up earlier occurrences of the four characters at a
// position. Positions sharing the same four characters are chained together
// from most to least recent, so walking a chain visits candidates in order of
// increasing distance.
type matchFinder struct {
	source   []byte
	head     map[uint32]int32
	prev     []int32
	inserted int
}

func newMatchFinder(source []byte) *matchFinder {
	return &matchFinder{
		source: source,
		head:   make(map[uint32]int32),
		prev:   make([]int32, len(source)),
	}
}

func (m *matchFinder) key(position int) uint32 {
	s := m.source[position : position+MinMatch]
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

// insertUpTo adds every position before `limit` to the chains.
func (m *matchFinder) insertUpTo(limit int) {
	for ; m.inserted < limit; m.inserted++ {
		position := m.inserted
		if position+MinMatch > len(m.source) {
			continue
		}

		k := m.key(position)
		if previous, ok := m.head[k]; ok {
			m.prev[position] = previous
		} else {
			m.prev[position] = -1
		}
		m.head[k] = int32(position)
	}
}

// longest returns the longest match for the text starting at `position`, and
// its distance. Only a strictly longer match replaces the current best, so the
// nearest of several equally long matches is kept. A length of 0 means nothing
// matched.
func (m *matchFinder) longest(position int) (int, int) {
	m.insertUpTo(position)

	candidate, ok := m.head[m.key(position)]
	if !ok {
		return 0, 0
	}

	source := m.source
	maxLength := len(source) - position
	bestLength := 0
	bestDistance := 0

	for j := int(candidate); j >= 0 && position-j < WindowSize; j = int(m.prev[j]) {
		length := MinMatch
		for position+length < len(source) && source[j+length] == source[position+length] {
			length++
		}

		if length > bestLength {
			bestLength = length
			bestDistance = position - j
			if bestLength == maxLength {
				break
			}
		}
	}
	return bestLength, bestDistance
}

// Deflate compresses `input` and appends the result to `output`.
//
// `input` may only contain characters a [text.Buffer] accepts, other than the
// two back-reference markers; anything else is a precondition error since the
// decoder could not reproduce it.
func Deflate(input []byte, output *text.Buffer) error {
	for i, ch := range input {
		if !text.IsAccepted(ch) || ch == NearMarker || ch == FarMarker {
			return errors.Newf(
				errors.Precondition, "can't deflate character %q at offset %d", ch, i)
		}
	}

	finder := newMatchFinder(input)

	i := 0
	for i <= len(input)-MinMatch {
		length, distance := finder.longest(i)

		// No match, or a match that would take as many characters to encode as
		// it replaces.
		if length == 0 || (length == MinMatch && distance >= nearDistanceLimit) {
			if err := output.AddChar(input[i]); err != nil {
				return err
			}
			i++
			continue
		}

		if err := writeBackReference(output, distance, length); err != nil {
			return err
		}
		i += length
	}

	for ; i < len(input); i++ {
		if err := output.AddChar(input[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeBackReference(output *text.Buffer, distance, length int) error {
	if distance < nearDistanceLimit {
		if err := output.AddChar(NearMarker); err != nil {
			return err
		}
		if err := output.AddValue(distance); err != nil {
			return err
		}
		return output.AddValue(length)
	}

	for _, ch := range []byte{FarMarker, text.Digit(distance >> 6), text.Digit(distance)} {
		if err := output.AddChar(ch); err != nil {
			return err
		}
	}
	return output.AddValue(length)
}
