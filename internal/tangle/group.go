package tangle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/loom-dev/loom/internal/document"
)

// ExpandedBlock pairs a scanned block with its expanded, transformed body.
type ExpandedBlock struct {
	document.Block
	ExpandedBody string
}

// Bucket is the ordered set of blocks destined for one output file.
// Insertion order equals document order; distinct buckets never merge.
type Bucket struct {
	Path     string
	Language string
	Blocks   []ExpandedBlock
}

// Issue records a per-block problem that degraded gracefully instead of
// aborting the run.
type Issue struct {
	Block    string `json:"block"`
	Severity string `json:"severity"` // warning | error
	Message  string `json:"message"`
}

// Grouper buckets expanded blocks by resolved destination path. The first
// occurrence of a path fixes bucket order; later blocks with the same path
// append. Grouping state is returned to the caller, never package-global.
type Grouper struct {
	basePath   string // document path without extension
	docDir     string
	target     string // orchestration-supplied default destination
	extensions map[string]string

	order  []string
	byPath map[string]*Bucket
	issues []Issue
}

// NewGrouper builds a grouper for one document. target may be empty; then
// blocks without a tangle destination of their own are excluded.
func NewGrouper(doc *document.Document, target string, extensions map[string]string) *Grouper {
	return &Grouper{
		basePath:   doc.BasePath(),
		docDir:     doc.Dir(),
		target:     target,
		extensions: extensions,
		byPath:     make(map[string]*Bucket),
	}
}

// Add resolves the block's destination and appends the block to its bucket.
// Blocks without a destination are dropped. A block whose path is already
// claimed by a different language is recorded as an ambiguity issue and
// skipped; the first language to claim a path owns it.
func (g *Grouper) Add(block ExpandedBlock) {
	path, ok := g.resolve(block.Block)
	if !ok {
		return
	}

	bucket, exists := g.byPath[path]
	if !exists {
		bucket = &Bucket{Path: path, Language: block.Language}
		g.byPath[path] = bucket
		g.order = append(g.order, path)
	} else if bucket.Language != block.Language {
		g.issues = append(g.issues, Issue{
			Block:    block.Name,
			Severity: "error",
			Message: fmt.Sprintf("destination %s already claimed by language %q, refusing to mix in %q",
				path, bucket.Language, block.Language),
		})
		return
	}
	bucket.Blocks = append(bucket.Blocks, block)
}

// Buckets returns the buckets in first-path-occurrence order.
func (g *Grouper) Buckets() []*Bucket {
	out := make([]*Bucket, 0, len(g.order))
	for _, path := range g.order {
		out = append(out, g.byPath[path])
	}
	return out
}

// Issues returns the ambiguities recorded while grouping.
func (g *Grouper) Issues() []Issue {
	return g.issues
}

// resolve maps the block's tangle directive to a destination path:
// "yes" derives the path from the document stem plus the language extension,
// an explicit value is used verbatim (relative values resolve against the
// document's directory), and an absent value falls back to the run target.
func (g *Grouper) resolve(block document.Block) (string, bool) {
	value := strings.TrimSpace(block.Params.GetDefault("tangle", ""))
	switch value {
	case "no":
		return "", false
	case "yes":
		return g.basePath + "." + extensionFor(block.Language, g.extensions), true
	case "":
		if g.target != "" {
			return g.target, true
		}
		return "", false
	default:
		if !filepath.IsAbs(value) {
			return filepath.Join(g.docDir, value), true
		}
		return value, true
	}
}
