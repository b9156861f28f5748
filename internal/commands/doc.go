// Package commands provides the command-line interface for the vigsig tool.
//
// It implements commands for:
//   - encryption of a single block
//   - decryption of a single block
//   - the interactive enc/dec session
//   - batch processing of request files
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/idelchi/vigsig/internal/config"
)

// preRun returns a PreRunE handler that validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		return cfg.Validate()
	}
}

// runE wraps run so that --show prints the resolved configuration instead of running.
func runE(cfg *config.Config, run func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Show {
			return show(cmd, cfg)
		}

		return run(cmd)
	}
}

func show(cmd *cobra.Command, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), string(data)); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	return nil
}
