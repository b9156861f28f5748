package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/vigsig/internal/config"
	"github.com/idelchi/vigsig/internal/logic"
)

// NewSessionCommand creates a new cobra command for the interactive session.
func NewSessionCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session [flags]",
		Aliases: []string{"repl"},
		Short:   "Read enc, dec and quit commands from standard input",
		Long: `Reads one command per line:

  enc <plaintext> <keyword>
  dec <ciphertext> <keyword> <signature>
  quit

and prints the full trace of each computation.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: runE(cfg, func(cmd *cobra.Command) error {
			return logic.RunSession(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		}),
	}

	cmd.Flags().BoolP("dump", "b", true, "Print blocks as bit and nibble dumps")

	return cmd
}
