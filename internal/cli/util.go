package cli

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// LoadIgnoreRules reads .loomignore from rootPath. A missing file is fine.
func LoadIgnoreRules(fs afero.Fs, rootPath string) ([]string, error) {
	ignorePath := filepath.Join(rootPath, ".loomignore")
	f, err := fs.Open(ignorePath)
	if err != nil {
		if exists, statErr := afero.Exists(fs, ignorePath); statErr == nil && !exists {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .loomignore: %w", err)
	}
	defer f.Close()

	rules := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse .loomignore: %w", err)
	}

	return rules, nil
}

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}
