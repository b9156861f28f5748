package cipher

import (
	"errors"
	"fmt"
)

var (
	// ErrKeywordInvalid is returned when a keyword is too short or made only of ones.
	ErrKeywordInvalid = errors.New("keyword is invalid")
	// ErrSignatureMismatch is returned when a provided signature differs from the one computed
	// from the ciphertext.
	ErrSignatureMismatch = errors.New("message is not from a trusted source")
)

// KeywordError describes a rejected keyword.
type KeywordError struct {
	// Keyword as it was given
	Keyword string

	// Parsed key byte
	Value uint8

	// Significant bit length of Value
	Length uint
}

func (e *KeywordError) Error() string {
	return fmt.Sprintf("%v: %s, %x", ErrKeywordInvalid, e.Keyword, e.Value)
}

func (e *KeywordError) Unwrap() error {
	return ErrKeywordInvalid
}

// SignatureError describes a signature that does not match its ciphertext.
type SignatureError struct {
	Expected Signature
	Provided Signature
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("%v: expected signature %s, got %s", ErrSignatureMismatch, e.Expected, e.Provided)
}

func (e *SignatureError) Unwrap() error {
	return ErrSignatureMismatch
}
