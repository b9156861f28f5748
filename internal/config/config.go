// Package config holds the command-line configuration and the validated shape of a cipher request.
package config

import (
	"fmt"
)

// Config holds the settings resolved from flags and VIGSIG_* environment variables.
type Config struct {
	// Common flags
	Verbose bool
	Show    bool `yaml:"-"`
	Quiet   bool

	// Trace output
	Trace bool
	Dump  bool

	// Batch flags
	Parallel int `validate:"gte=1"`
	Output   string
	Stats    bool

	// Positional arguments
	Request Request  `mapstructure:"-" validate:"-" yaml:"-"`
	Files   []string `mapstructure:"-" yaml:"-"`
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate, err := sharedValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
