package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/loom-dev/loom/internal/tangle"
)

// RunClean strips loom marker comments from a tangled file in place.
func RunClean(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path %q: %w", args[0], err)
	}

	removed, err := tangle.Clean(afero.NewOsFs(), path)
	if err != nil {
		return err
	}
	if removed == 0 {
		fmt.Printf("no marker lines in %s\n", path)
		return nil
	}
	fmt.Printf("removed %d marker line(s) from %s\n", removed, path)
	return nil
}
