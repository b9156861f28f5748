package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/idelchi/vigsig/internal/cipher"
)

// EncodeHeader echoes an encode request.
func EncodeHeader(w io.Writer, plaintext, keyword string) error {
	return write(w, "\nEncoding plaintext: %s with key %s\n", plaintext, keyword)
}

// DecodeHeader echoes a decode request.
func DecodeHeader(w io.Writer, ciphertext, keyword, signature string) error {
	return write(w, "\nDecoding: %s with signature %s and key: %s\n", ciphertext, signature, keyword)
}

// Encoded writes the ciphertext, keyword and signature of a successful encode.
func Encoded(w io.Writer, keyword string, result cipher.Encoded) error {
	return write(w, "Ciphertext with signature: %16x  %s %s\n\n", uint64(result.Ciphertext), keyword, result.Signature)
}

// Decoded writes the recovered plaintext of a trusted decode.
func Decoded(w io.Writer, plaintext cipher.Block) error {
	return write(w, " Original plaintext: %016X\n\n", uint64(plaintext))
}

// Rejected writes the verdict for an engine rejection.
// It returns the rejection unchanged when it is neither an invalid keyword nor a signature mismatch.
func Rejected(w io.Writer, rejection error) error {
	var kerr *cipher.KeywordError

	switch {
	case errors.As(rejection, &kerr):
		return write(w, "%s\n", kerr.Error())
	case errors.Is(rejection, cipher.ErrSignatureMismatch):
		return write(w, "Message is not from a trusted source!\n")
	default:
		return rejection
	}
}

func write(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	return nil
}
