package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/loom-dev/loom/internal/tangle"
)

type RunSummary struct {
	Mode       string   `json:"mode"`
	Document   string   `json:"document,omitempty"`
	RootPath   string   `json:"root_path,omitempty"`
	Documents  int      `json:"documents,omitempty"`
	Blocks     int      `json:"blocks"`
	Issues     int      `json:"issues,omitempty"`
	DurationMS int64    `json:"duration_ms"`
	Paths      []string `json:"paths,omitempty"`
}

var (
	headlineColor = color.New(color.Bold)
	issueColor    = color.New(color.FgYellow)
)

func PrintRunSummary(summary RunSummary, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	if summary.Mode == "tangle-tree" {
		headlineColor.Printf("tangled %d block(s) from %d document(s) in %dms\n",
			summary.Blocks, summary.Documents, summary.DurationMS)
	} else {
		headlineColor.Printf("tangled %d block(s) in %dms\n", summary.Blocks, summary.DurationMS)
	}
	if len(summary.Paths) > 0 {
		fmt.Printf("files (%d): %s\n", len(summary.Paths), SummarizePaths(summary.Paths, 8))
	}
	if summary.Issues > 0 {
		issueColor.Printf("issues: %d (details on stderr)\n", summary.Issues)
	}
	return nil
}

// ReportIssues prints per-block problems to stderr, one line each.
func ReportIssues(issues []tangle.Issue) {
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", issue.Severity, issue.Block, issue.Message)
	}
}

func SummarizePaths(paths []string, max int) string {
	if len(paths) <= max {
		return strings.Join(paths, ", ")
	}
	return fmt.Sprintf("%s ... (+%d more)", strings.Join(paths[:max], ", "), len(paths)-max)
}
