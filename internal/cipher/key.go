package cipher

import (
	"errors"
	"math/bits"
)

// minKeyLength is the shortest significant bit length a keyword may have.
const minKeyLength = 3

// degenerateKeys lists the all-ones pattern for every key length.
// A key equal to one of these would tile into a run of identical bits.
//
//nolint:gochecknoglobals
var degenerateKeys = [...]uint8{0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}

// Key is a validated keyword: its byte value and the bit length of that value.
// The zero Key is not valid; obtain one through NewKey or ParseKeyword.
type Key struct {
	value  uint8
	length uint
}

// BitLength returns the 1-indexed position of the highest set bit of v, or 0 for v == 0.
func BitLength(v uint8) uint {
	return uint(bits.Len8(v))
}

// NewKey validates value as a key.
// Values shorter than three significant bits or made only of ones are rejected with a *KeywordError.
func NewKey(value uint8) (Key, error) {
	length := BitLength(value)

	if length < minKeyLength || isDegenerate(value) {
		return Key{}, &KeywordError{
			Keyword: FormatHex(uint64(value), KeywordDigits),
			Value:   value,
			Length:  length,
		}
	}

	return Key{value: value, length: length}, nil
}

// ParseKeyword parses a 2-hex-digit keyword and validates it with NewKey.
// A rejection reports the keyword as it was given.
func ParseKeyword(keyword string) (Key, error) {
	key, err := NewKey(uint8(ParseHex(keyword, KeywordDigits)))

	var kerr *KeywordError
	if errors.As(err, &kerr) {
		kerr.Keyword = keyword
	}

	return key, err
}

// Value returns the key byte.
func (k Key) Value() uint8 {
	return k.value
}

// Length returns the number of significant bits of the key byte.
func (k Key) Length() uint {
	return k.length
}

// Keystream tiles the key pattern across a full block.
//
// The pattern is placed reps = 64/L times from the most significant end. The low rem = 64%L
// bits are filled with the top rem bits of the pattern, not with a wrapped copy of its start.
func (k Key) Keystream() Block {
	if k.length < minKeyLength {
		panic("cipher: keystream of an invalid key")
	}

	length := k.length
	reps := BlockBits / length
	rem := BlockBits % length
	pattern := uint64(k.value)

	var stream uint64

	for i := reps; i > 0; i-- {
		stream |= shiftLeft(pattern, length*i+rem-length)
	}

	stream |= shiftRight(pattern, length-rem)

	return Block(stream)
}

func isDegenerate(value uint8) bool {
	for _, d := range degenerateKeys {
		if value == d {
			return true
		}
	}

	return false
}
