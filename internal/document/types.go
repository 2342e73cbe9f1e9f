package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Param is one directive attached to a block, in the order it was written.
type Param struct {
	Key   string
	Value string
}

// ParamSet is the ordered directive list of a block with keyed access.
// The first occurrence of a key wins for single-value lookups.
type ParamSet []Param

// Get returns the first value for key.
func (p ParamSet) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// GetDefault returns the first value for key, or fallback when absent.
func (p ParamSet) GetDefault(key, fallback string) string {
	if value, ok := p.Get(key); ok {
		return value
	}
	return fallback
}

// Has reports whether key appears at all, regardless of value.
func (p ParamSet) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// All returns every value for key in order, for repeatable directives.
func (p ParamSet) All(key string) []string {
	var out []string
	for _, param := range p {
		if param.Key == key {
			out = append(out, param.Value)
		}
	}
	return out
}

// Link points back at the fence that produced a block. It stays valid after
// scanning finishes, so emission can reference it long after the walk.
type Link struct {
	Path string
	Line int
}

// Block is one fenced code block captured from a document. Blocks are
// immutable once scanned; expansion works on derived copies of the body.
type Block struct {
	Language string
	Name     string
	Params   ParamSet
	Body     string
	Link     Link
}

// Issue captures a non-fatal problem encountered while scanning.
type Issue struct {
	Block    string `json:"block"`
	Severity string `json:"severity"` // warning | error
	Message  string `json:"message"`
}

// Document holds the ordered blocks scanned from one markdown file.
type Document struct {
	Path   string
	Blocks []Block
	Issues []Issue

	byName map[string]int
}

// New builds a document from pre-scanned blocks, indexing them by name.
// When two blocks share a name the first binding wins and the duplicate is
// recorded as a warning.
func New(path string, blocks []Block) *Document {
	doc := &Document{Path: path, Blocks: blocks, byName: make(map[string]int, len(blocks))}
	for i, block := range blocks {
		if prev, dup := doc.byName[block.Name]; dup {
			doc.Issues = append(doc.Issues, Issue{
				Block:    block.Name,
				Severity: "warning",
				Message: fmt.Sprintf("duplicate block name, references resolve to the block at line %d",
					doc.Blocks[prev].Link.Line),
			})
			continue
		}
		doc.byName[block.Name] = i
	}
	return doc
}

// Named returns the block registered under name.
func (d *Document) Named(name string) (*Block, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}
	return &d.Blocks[i], true
}

// BasePath returns the document path without its extension, the stem used
// for tangle: yes destinations.
func (d *Document) BasePath() string {
	return strings.TrimSuffix(d.Path, filepath.Ext(d.Path))
}

// Dir returns the directory holding the document; relative destination
// paths resolve against it.
func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}
