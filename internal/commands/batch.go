package commands

import (
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/vigsig/internal/config"
	"github.com/idelchi/vigsig/internal/logic"
)

// NewBatchCommand creates a new cobra command for the batch subcommand.
func NewBatchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] files...",
		Short: "Run enc and dec requests from JSONC files",
		Long: `Each file holds a JSON array of requests, comments and trailing commas allowed:

  [
    {"op": "enc", "text": "0123456789abcdef", "keyword": "73"},
    {"op": "dec", "text": "e6ecda59f5523e08", "keyword": "73", "signature": "9"},
  ]

Requests are processed in parallel. The report lists one result per request, in input order.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Files = args

			return preRun(cfg)(cmd, args)
		},
		RunE: runE(cfg, func(cmd *cobra.Command) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return logic.RunBatch(ctx, cfg, cmd.OutOrStdout())
		}),
	}

	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("stats", false, "Print statistics to stderr")

	return cmd
}
