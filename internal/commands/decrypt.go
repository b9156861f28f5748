package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/vigsig/internal/config"
	"github.com/idelchi/vigsig/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] ciphertext keyword signature",
		Aliases: []string{"dec"},
		Short:   "Verify and decrypt a signed 16 digit hex block",
		Long: `Verifies the signature of the ciphertext and prints the plaintext.
Exits with an error and prints no plaintext when the signature does not match.`,
		Example: "  vigsig decrypt e6ecda59f5523e08 73 9",
		Args:    cobra.ExactArgs(3), //nolint:mnd
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Request = config.Request{Op: config.OpDecode, Text: args[0], Keyword: args[1], Signature: args[2]}

			return preRun(cfg)(cmd, args)
		},
		RunE: runE(cfg, func(cmd *cobra.Command) error {
			return logic.RunDecrypt(cfg, cmd.OutOrStdout())
		}),
	}

	traceFlags(cmd)

	return cmd
}
