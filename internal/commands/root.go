package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/vigsig/internal/config"
)

// EnvPrefix is the prefix of the environment variables that back every flag.
const EnvPrefix = "VIGSIG"

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "vigsig [flags] command [flags]",
		Short: "Vigenere cipher with signature",
		Long: `Encrypts 64-bit blocks with a repeating key pattern derived from a two digit hex keyword,
and signs each ciphertext with four parity bits so tampered messages are rejected.`,
		Version:           version,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bind(cmd, cfg)
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")
	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewSessionCommand(cfg),
		NewBatchCommand(cfg),
	)

	return root
}

// bind resolves flags and VIGSIG_* environment variables into cfg.
func bind(cmd *cobra.Command, cfg *config.Config) error {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("parallel", runtime.NumCPU())

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}
