package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/vigsig/internal/config"
	"github.com/idelchi/vigsig/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] plaintext keyword",
		Aliases: []string{"enc"},
		Short:   "Encrypt and sign a 16 digit hex block",
		Example: "  vigsig encrypt 0123456789abcdef 73",
		Args:    cobra.ExactArgs(2), //nolint:mnd
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Request = config.Request{Op: config.OpEncode, Text: args[0], Keyword: args[1]}

			return preRun(cfg)(cmd, args)
		},
		RunE: runE(cfg, func(cmd *cobra.Command) error {
			return logic.RunEncrypt(cfg, cmd.OutOrStdout())
		}),
	}

	traceFlags(cmd)

	return cmd
}

func traceFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("trace", "t", false, "Print every step of the computation")
	cmd.Flags().BoolP("dump", "b", false, "Print blocks as bit and nibble dumps when tracing")
}
