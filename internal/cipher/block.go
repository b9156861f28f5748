package cipher

// BlockBits is the width of a block in bits.
const BlockBits = 64

// Block is one 64-bit unit of plaintext or ciphertext.
type Block uint64

// ParseBlock parses 16 hex digits into a Block.
func ParseBlock(s string) Block {
	return Block(ParseHex(s, BlockDigits))
}

// String renders the block as 16 lowercase hex digits.
func (b Block) String() string {
	return FormatHex(uint64(b), BlockDigits)
}

// Bit returns bit i of the block, counted from the least significant bit.
func (b Block) Bit(i uint) uint8 {
	return uint8(shiftRight(uint64(b), i) & 1)
}

// shiftLeft shifts v left by n, which must be below the block width.
func shiftLeft(v uint64, n uint) uint64 {
	checkShift(n)

	return v << n
}

// shiftRight shifts v right by n, which must be below the block width.
func shiftRight(v uint64, n uint) uint64 {
	checkShift(n)

	return v >> n
}

func checkShift(n uint) {
	if n >= BlockBits {
		panic("cipher: shift amount out of range")
	}
}
