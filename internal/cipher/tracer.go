package cipher

// Direction tells a Tracer which operation produced an event.
type Direction int

const (
	// Encoding is plaintext to ciphertext.
	Encoding Direction = iota
	// Decoding is ciphertext to plaintext.
	Decoding
)

func (d Direction) String() string {
	if d == Decoding {
		return "decode"
	}

	return "encode"
}

// Tracer observes the intermediate values of an operation.
// Events arrive in the order the engine computes them; none arrive after a rejection.
type Tracer interface {
	// Input receives the parsed plaintext (encoding) or ciphertext (decoding).
	Input(dir Direction, b Block)
	// Key receives the accepted keyword.
	Key(keyword string, k Key)
	// Keystream receives the expanded key.
	Keystream(b Block)
	// Output receives the XOR of keystream and input.
	Output(dir Direction, b Block)
	// Signature receives the four parity bits of the ciphertext and their combination.
	Signature(bits [SignatureBits]uint8, sig Signature)
}

type nopTracer struct{}

func (nopTracer) Input(Direction, Block) {}
func (nopTracer) Key(string, Key) {}
func (nopTracer) Keystream(Block) {}
func (nopTracer) Output(Direction, Block) {}
func (nopTracer) Signature([SignatureBits]uint8, Signature) {}
