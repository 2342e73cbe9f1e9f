package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loom-dev/loom/internal/config"
	"github.com/loom-dev/loom/internal/document"
	"github.com/loom-dev/loom/internal/ignore"
	"github.com/loom-dev/loom/internal/tangle"
)

func RunTangle(cmd *cobra.Command, args []string, logger *zap.Logger) error {
	target := ""
	if len(args) > 1 {
		target = args[1]
	}
	lang, err := OptionalStringFlag(cmd, "lang")
	if err != nil {
		return err
	}
	comments, err := cmd.Flags().GetBool("comments")
	if err != nil {
		return fmt.Errorf("failed to read --comments flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path %q: %w", args[0], err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to access path %q: %w", path, err)
	}

	fs := afero.NewOsFs()
	start := time.Now()

	if info.IsDir() {
		if target != "" {
			return fmt.Errorf("target override is only supported for single documents")
		}
		return tangleTree(fs, path, lang, comments, asJSON, logger, start)
	}

	if target != "" {
		if target, err = filepath.Abs(target); err != nil {
			return fmt.Errorf("failed to resolve target %q: %w", target, err)
		}
	}
	summary, err := tangleDocument(fs, path, target, lang, comments, nil, logger)
	if err != nil {
		return err
	}
	summary.DurationMS = time.Since(start).Milliseconds()
	return PrintRunSummary(*summary, asJSON)
}

// tangleDocument tangles one markdown document from its saved on-disk
// contents, applying the optional .loom.yml next to it. When base is
// non-nil (directory mode passes the tree-root config), the document's own
// config is layered on top of it.
func tangleDocument(fs afero.Fs, path, target, lang string, comments bool, base *config.Config, logger *zap.Logger) (*RunSummary, error) {
	cfg, err := config.Load(fs, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	if base != nil {
		cfg = config.Merge(base, cfg)
	}

	doc, err := document.ScanFile(fs, path)
	if err != nil {
		return nil, err
	}

	result, err := tangle.Tangle(fs, doc, tangle.Options{
		Target:     target,
		Language:   lang,
		Comments:   comments || cfg.Comments,
		Extensions: cfg.Extensions,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	ReportIssues(result.Issues)

	return &RunSummary{
		Mode:     "tangle",
		Document: path,
		Blocks:   result.BlockCount,
		Paths:    result.Paths,
		Issues:   len(result.Issues),
	}, nil
}

// tangleTree walks root and tangles every markdown document not excluded by
// .loomignore rules, aggregating per-document summaries.
func tangleTree(fs afero.Fs, root, lang string, comments, asJSON bool, logger *zap.Logger, start time.Time) error {
	rules, err := LoadIgnoreRules(fs, root)
	if err != nil {
		return err
	}
	matcher := ignore.NewMatcher(rules)

	rootCfg, err := config.Load(fs, root)
	if err != nil {
		return err
	}

	total := RunSummary{Mode: "tangle-tree", RootPath: root}
	walkErr := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}
		if matcher.ShouldIgnore(relPath, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || !isMarkdown(path) {
			return nil
		}

		summary, err := tangleDocument(fs, path, "", lang, comments, rootCfg, logger)
		if err != nil {
			return err
		}
		total.Documents++
		total.Blocks += summary.Blocks
		total.Issues += summary.Issues
		total.Paths = append(total.Paths, summary.Paths...)
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("failed to tangle %s: %w", root, walkErr)
	}

	total.DurationMS = time.Since(start).Milliseconds()
	return PrintRunSummary(total, asJSON)
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
