package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// sharedValidator returns the validator with the custom tags registered, built once.
//
//nolint:gochecknoglobals
var sharedValidator = sync.OnceValues(newValidator)

func newValidator() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("hexdigits", validateHexDigits); err != nil {
		return nil, fmt.Errorf("registering hexdigits validation: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("json"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return validate, nil
}

// validateHexDigits reports whether every character of the field is an ASCII hex digit.
// Length is checked separately so that the two failures can be told apart.
func validateHexDigits(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	for _, c := range []byte(field.String()) {
		if !isHexDigit(c) {
			return false
		}
	}

	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
