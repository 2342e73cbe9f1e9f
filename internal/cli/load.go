package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loom-dev/loom/internal/tangle"
)

// RunLoad re-tangles the document when the companion file is missing or
// older than the document, then executes the companion with stdio passed
// through. The staleness check is a convenience on top of the tangle core.
func RunLoad(cmd *cobra.Command, args []string, logger *zap.Logger) error {
	docPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path %q: %w", args[0], err)
	}
	companion, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("failed to resolve path %q: %w", args[1], err)
	}

	summary, err := ensureCompanion(afero.NewOsFs(), docPath, companion, logger)
	if err != nil {
		return err
	}
	if summary != nil {
		fmt.Printf("retangled %s: %d block(s), %s\n",
			docPath, summary.Blocks, SummarizePaths(summary.Paths, 8))
	}

	run := exec.Command(companion)
	run.Stdin = os.Stdin
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	if err := run.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", companion, err)
	}
	return nil
}

// ensureCompanion re-tangles docPath when companion is stale, with the
// companion as the run target so blocks without a tangle path of their own
// accumulate there. It returns nil when the companion was already fresh.
func ensureCompanion(fs afero.Fs, docPath, companion string, logger *zap.Logger) (*RunSummary, error) {
	stale, err := tangle.Stale(fs, docPath, companion)
	if err != nil {
		return nil, err
	}
	if !stale {
		return nil, nil
	}

	summary, err := tangleDocument(fs, docPath, companion, "", false, nil, logger)
	if err != nil {
		return nil, err
	}

	exists, err := afero.Exists(fs, companion)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", companion, err)
	}
	if !exists {
		return nil, fmt.Errorf("companion %s was not produced by tangling %s", companion, docPath)
	}
	return summary, nil
}
