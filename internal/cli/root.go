// Package cli wires the loom commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRootCommand builds the loom command tree.
func NewRootCommand(version string) *cobra.Command {
	var verbose bool
	var logger *zap.Logger

	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "Extract source files from literate markdown documents",
		Long: `Loom tangles literate markdown documents: fenced code blocks carrying
:tangle directives are expanded (noweb <<references>>, per-language body
transforms), grouped by destination file, and written out in document order.

Destinations are truncated once per run, so re-tangling an unchanged
document is byte-for-byte idempotent.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	tangleCmd := &cobra.Command{
		Use:   "tangle <path> [target]",
		Short: "Tangle a document, or every document under a directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTangle(cmd, args, logger)
		},
	}
	tangleCmd.Flags().StringP("lang", "l", "", "Only tangle blocks of this language")
	tangleCmd.Flags().Bool("comments", false, "Decorate output with traceability comments")
	tangleCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	loadCmd := &cobra.Command{
		Use:   "load <doc> <companion>",
		Short: "Re-tangle a document if its companion file is stale, then run the companion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunLoad(cmd, args, logger)
		},
	}

	cleanCmd := &cobra.Command{
		Use:   "clean <file>",
		Short: "Strip loom marker comments from a previously tangled file",
		Args:  cobra.ExactArgs(1),
		RunE:  RunClean,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("loom %s\n", version)
		},
	}

	rootCmd.AddCommand(
		tangleCmd,
		loadCmd,
		cleanCmd,
		versionCmd,
	)

	return rootCmd
}
