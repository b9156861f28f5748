package cipher

import "fmt"

const (
	// BlockDigits is the number of hex digits in a plaintext or ciphertext block.
	BlockDigits = 16
	// KeywordDigits is the number of hex digits in a keyword.
	KeywordDigits = 2
	// SignatureDigits is the number of hex digits in a signature.
	SignatureDigits = 1
)

// ParseHex interprets the first digits characters of s as a big-endian hexadecimal number.
// Callers are expected to validate s beforehand; characters outside 0-9a-fA-F contribute
// their low four bits.
func ParseHex(s string, digits int) uint64 {
	var acc uint64

	for i := range digits {
		acc = acc<<4 | uint64(hexDigit(s[i]))
	}

	return acc
}

// FormatHex renders v as zero-padded lowercase hexadecimal of the given width.
func FormatHex(v uint64, width int) string {
	return fmt.Sprintf("%0*x", width, v)
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return c & 0xF
	}
}
