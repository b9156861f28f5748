package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Op names a cipher operation.
type Op string

const (
	// OpEncode encrypts and signs a plaintext block.
	OpEncode Op = "enc"
	// OpDecode verifies and decrypts a ciphertext block.
	OpDecode Op = "dec"
)

var (
	// ErrInputLength is returned when a field has the wrong number of characters.
	ErrInputLength = errors.New("wrong number of hex digits")
	// ErrInputDigits is returned when a field contains characters other than hex digits.
	ErrInputDigits = errors.New("invalid hex digits")
	// ErrUnknownOperation is returned for an operation other than enc or dec.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Request is one encode or decode request as entered on the command line, in a session or in a
// batch file. Text is the plaintext for enc and the ciphertext for dec.
type Request struct {
	Op        Op     `json:"op"                  validate:"oneof=enc dec"`
	Text      string `json:"text"                validate:"len=16,hexdigits"`
	Keyword   string `json:"keyword"             validate:"len=2,hexdigits"`
	Signature string `json:"signature,omitempty"`
}

type signatureField struct {
	Signature string `json:"signature" validate:"len=1,hexdigits"`
}

// Validate checks the request against the input contract of the cipher engine.
// Length failures take precedence over character failures, across all fields.
// The signature is only checked for decode requests.
func (r Request) Validate() error {
	validate, err := sharedValidator()
	if err != nil {
		return err
	}

	var failures []validator.FieldError

	if err := collect(validate.Struct(r), &failures); err != nil {
		return fmt.Errorf("validating request: %w", err)
	}

	if r.Op == OpDecode {
		if err := collect(validate.Struct(signatureField{Signature: r.Signature}), &failures); err != nil {
			return fmt.Errorf("validating signature: %w", err)
		}
	}

	return classify(failures)
}

// collect appends field failures from err and returns any other error.
func collect(err error, failures *[]validator.FieldError) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	*failures = append(*failures, verrs...)

	return nil
}

func classify(failures []validator.FieldError) error {
	if len(failures) == 0 {
		return nil
	}

	var length, digits []string

	for _, failure := range failures {
		switch failure.Tag() {
		case "oneof":
			return fmt.Errorf("%w: %q", ErrUnknownOperation, failure.Value())
		case "len":
			length = append(length, fmt.Sprintf("%s %q must be %s digits", failure.Field(), failure.Value(), failure.Param()))
		default:
			digits = append(digits, fmt.Sprintf("%s %q", failure.Field(), failure.Value()))
		}
	}

	if len(length) > 0 {
		return fmt.Errorf("%w: %s", ErrInputLength, strings.Join(length, ", "))
	}

	return fmt.Errorf("%w: %s", ErrInputDigits, strings.Join(digits, ", "))
}
