package cipher

// Engine encodes and decodes blocks. It holds no mutable state and is safe for concurrent use,
// provided its Tracer is.
type Engine struct {
	tracer Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithTracer attaches a Tracer that observes every operation.
func WithTracer(t Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	engine := &Engine{tracer: nopTracer{}}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Encoded is the result of encoding a block.
type Encoded struct {
	Ciphertext Block
	Signature  Signature
}

// Encode encrypts 16 hex digits of plaintext under a 2-hex-digit keyword and signs the result.
// Inputs must already be validated for length and character class.
// An invalid keyword yields a *KeywordError and nothing else is computed.
func (e *Engine) Encode(plaintext, keyword string) (Encoded, error) {
	plain := ParseBlock(plaintext)
	e.tracer.Input(Encoding, plain)

	key, err := ParseKeyword(keyword)
	if err != nil {
		return Encoded{}, err
	}

	keystream := e.expand(keyword, key)

	ciphertext := keystream ^ plain
	e.tracer.Output(Encoding, ciphertext)

	return Encoded{Ciphertext: ciphertext, Signature: e.sign(ciphertext)}, nil
}

// Decode verifies and decrypts 16 hex digits of ciphertext.
// The keyword is checked before the ciphertext is read, and the signature is checked before
// any plaintext is derived. Rejections yield a *KeywordError or a *SignatureError.
func (e *Engine) Decode(ciphertext, keyword, signature string) (Block, error) {
	key, err := ParseKeyword(keyword)
	if err != nil {
		return 0, err
	}

	keystream := e.expand(keyword, key)

	cipherBlock := ParseBlock(ciphertext)
	e.tracer.Input(Decoding, cipherBlock)

	expected := e.sign(cipherBlock)

	if provided := ParseSignature(signature); provided != expected {
		return 0, &SignatureError{Expected: expected, Provided: provided}
	}

	plain := keystream ^ cipherBlock
	e.tracer.Output(Decoding, plain)

	return plain, nil
}

func (e *Engine) expand(keyword string, key Key) Block {
	e.tracer.Key(keyword, key)

	keystream := key.Keystream()
	e.tracer.Keystream(keystream)

	return keystream
}

func (e *Engine) sign(ciphertext Block) Signature {
	sigBits := SignatureBitsOf(ciphertext)
	sig := combine(sigBits)

	e.tracer.Signature(sigBits, sig)

	return sig
}
