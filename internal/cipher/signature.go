package cipher

import "strings"

// SignatureBits is the number of parity bits in a signature.
const SignatureBits = 4

// Signature is the 4-bit parity signature of a ciphertext block.
type Signature uint8

// Bit positions checked by each signature bit, counted from the least significant bit.
//
//nolint:gochecknoglobals
var (
	// b0Positions holds the even positions 2..62. Position 0 is excluded.
	b0Positions = stride(2, 62, 2)
	// b1Positions holds the multiples of three in 0..63.
	b1Positions = stride(0, 63, 3)
	// b2Positions holds the contiguous range 12..25.
	b2Positions = stride(12, 25, 1)
	// b3Positions holds the positions 2^n-1.
	b3Positions = []uint{0, 1, 3, 7, 15, 31, 63}
)

// Parity returns 1 if an odd number of the given bit positions are set in b, 0 otherwise.
func Parity(b Block, positions []uint) uint8 {
	var count uint8

	for _, pos := range positions {
		count += b.Bit(pos)
	}

	return count % 2
}

// B0 is the parity of the even positions 2..62.
func B0(b Block) uint8 {
	return Parity(b, b0Positions)
}

// B1 is the parity of the positions divisible by three.
func B1(b Block) uint8 {
	return Parity(b, b1Positions)
}

// B2 is the parity of positions 12..25.
func B2(b Block) uint8 {
	return Parity(b, b2Positions)
}

// B3 is the parity of positions 0, 1, 3, 7, 15, 31 and 63.
func B3(b Block) uint8 {
	return Parity(b, b3Positions)
}

// SignatureBitsOf returns B0 through B3 of b, in that order.
func SignatureBitsOf(b Block) [SignatureBits]uint8 {
	return [SignatureBits]uint8{B0(b), B1(b), B2(b), B3(b)}
}

// Sign computes the signature of a ciphertext block.
func Sign(b Block) Signature {
	return combine(SignatureBitsOf(b))
}

// ParseSignature parses a single hex digit into a Signature.
func ParseSignature(s string) Signature {
	return Signature(ParseHex(s, SignatureDigits))
}

// String renders the signature as a single uppercase hex digit.
func (s Signature) String() string {
	return strings.ToUpper(FormatHex(uint64(s), SignatureDigits))
}

func combine(sigBits [SignatureBits]uint8) Signature {
	var sig Signature

	for i, bit := range sigBits {
		sig |= Signature(bit&1) << i
	}

	return sig
}

// stride returns first, first+step, ... up to and including last.
func stride(first, last, step uint) []uint {
	positions := make([]uint, 0, (last-first)/step+1)

	for pos := first; pos <= last; pos += step {
		positions = append(positions, pos)
	}

	return positions
}
