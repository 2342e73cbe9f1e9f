// Package tangle drives the extraction pipeline: collect blocks, expand
// references, transform bodies, group by destination, emit files.
package tangle

import (
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/loom-dev/loom/internal/document"
	"github.com/loom-dev/loom/internal/emit"
	"github.com/loom-dev/loom/internal/expand"
	"github.com/loom-dev/loom/internal/transform"
)

// Options control one tangle run.
type Options struct {
	// Target is the default destination for blocks without a tangle
	// directive of their own. Empty means such blocks are excluded.
	Target string

	// Language restricts the run to blocks of one language. Empty means all.
	Language string

	// Comments is the run-wide decoration flag; a block is only decorated
	// when this is set and the block itself carries comments: yes.
	Comments bool

	// Extensions overrides the language -> extension table.
	Extensions map[string]string

	Logger *zap.Logger
}

// Result summarizes one tangle run.
type Result struct {
	// BlockCount is the number of blocks written to destinations.
	BlockCount int `json:"blocks"`

	// Paths lists produced files in order of first creation.
	Paths []string `json:"paths"`

	// Issues lists per-block problems that were skipped over.
	Issues []Issue `json:"issues,omitempty"`
}

// Tangle runs the whole pipeline over one scanned document. Resolution and
// directive problems degrade per block into Result.Issues; filesystem errors
// abort the run, leaving files flushed before the failure as they are.
func Tangle(fs afero.Fs, doc *document.Document, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	expander := expand.New(doc)
	registry := transform.NewDefaultRegistry()
	grouper := NewGrouper(doc, opts.Target, opts.Extensions)

	issues := scanIssues(doc)
	for i := range doc.Blocks {
		block := &doc.Blocks[i]
		if opts.Language != "" && block.Language != opts.Language {
			continue
		}
		if strings.TrimSpace(block.Params.GetDefault("tangle", "")) == "no" {
			log.Debug("block excluded", zap.String("block", block.Name))
			continue
		}

		body, err := expander.Expand(block)
		if err != nil {
			issues = append(issues, Issue{Block: block.Name, Severity: "error", Message: err.Error()})
			log.Warn("expansion failed", zap.String("block", block.Name), zap.Error(err))
			continue
		}
		body = registry.Apply(block.Language, body, block.Params)

		grouper.Add(ExpandedBlock{Block: *block, ExpandedBody: body})
	}
	issues = append(issues, grouper.Issues()...)

	emitter := emit.New(fs, log, opts.Comments)
	written := 0
	for _, bucket := range grouper.Buckets() {
		for _, eb := range bucket.Blocks {
			if err := emitter.EmitBlock(bucket.Path, bucket.Language, eb.Block, eb.ExpandedBody); err != nil {
				return nil, err
			}
			written++
		}
	}

	result := &Result{BlockCount: written, Paths: emitter.Paths(), Issues: issues}
	log.Info("tangle complete",
		zap.String("document", doc.Path),
		zap.Int("blocks", result.BlockCount),
		zap.Int("files", len(result.Paths)),
		zap.Int("issues", len(result.Issues)))
	return result, nil
}

// scanIssues converts scanner warnings so they surface in the run result.
func scanIssues(doc *document.Document) []Issue {
	if len(doc.Issues) == 0 {
		return nil
	}
	out := make([]Issue, 0, len(doc.Issues))
	for _, issue := range doc.Issues {
		out = append(out, Issue{Block: issue.Block, Severity: issue.Severity, Message: issue.Message})
	}
	return out
}
