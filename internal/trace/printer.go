package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/vigsig/internal/cipher"
)

// Printer writes cipher trace events to a writer.
// The first write error is kept and reported by Err; later events are dropped.
type Printer struct {
	w    io.Writer
	dump bool
	err  error
}

// NewPrinter creates a Printer. With dump set, blocks are followed by their bit/nibble dump.
func NewPrinter(w io.Writer, dump bool) *Printer {
	return &Printer{w: w, dump: dump}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

// Input prints the parsed plaintext or ciphertext.
func (p *Printer) Input(dir cipher.Direction, b cipher.Block) {
	if dir == cipher.Decoding {
		p.printf("Cipher as hex number: %x\n", uint64(b))
	} else {
		p.printf("Plaintext as hex number: %016x\n", uint64(b))
	}

	p.block(b)
}

// Key prints the accepted keyword, its bit length and its bits.
func (p *Printer) Key(keyword string, k cipher.Key) {
	p.printf("Generate key from input: %s, Key length: %d Keyword: %08b\n", keyword, k.Length(), k.Value())
}

// Keystream prints the expanded key.
func (p *Printer) Keystream(b cipher.Block) {
	if !p.dump {
		p.printf("Keystream: %016x\n", uint64(b))

		return
	}

	p.block(b)
}

// Output prints the XOR result, labelled by what it is.
func (p *Printer) Output(dir cipher.Direction, b cipher.Block) {
	label := "Ciphertext"
	if dir == cipher.Decoding {
		label = "Plaintext"
	}

	if !p.dump {
		p.printf("%s: %016x\n", label, uint64(b))

		return
	}

	p.printf("%s\n", label)
	p.block(b)
}

// Signature prints each parity bit on its own line.
func (p *Printer) Signature(bits [cipher.SignatureBits]uint8, _ cipher.Signature) {
	for i, bit := range bits {
		p.printf("B%d : %d\n", i, bit)
	}
}

func (p *Printer) block(b cipher.Block) {
	if !p.dump || p.err != nil {
		return
	}

	p.err = Dump(p.w, b)
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("writing trace: %w", err)
	}
}

// Dump writes the bits of b in groups of four, most significant first, and the hex digit of
// each group on the line below.
func Dump(w io.Writer, b cipher.Block) error {
	const nibbles = cipher.BlockBits / 4

	var buf strings.Builder

	buf.WriteByte(' ')

	for i := cipher.BlockBits - 1; i >= 0; i-- {
		buf.WriteByte('0' + byte(uint64(b)>>i&1))

		if i%4 == 0 {
			buf.WriteByte(' ')
		}
	}

	buf.WriteString("\n    ")

	for i := nibbles - 1; i >= 0; i-- {
		fmt.Fprintf(&buf, "%x    ", uint64(b)>>(4*i)&0xf)
	}

	buf.WriteByte('\n')

	if _, err := io.WriteString(w, buf.String()); err != nil {
		return fmt.Errorf("writing block dump: %w", err)
	}

	return nil
}
