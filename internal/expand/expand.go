// Package expand resolves noweb-style references inside block bodies.
package expand

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/loom-dev/loom/internal/document"
)

// referenceRe matches a noweb reference token, e.g. <<helpers>>.
var referenceRe = regexp.MustCompile(`<<([^<>\r\n]+)>>`)

var (
	// ErrUnknownReference marks a <<name>> pointing at no block.
	ErrUnknownReference = errors.New("unknown block reference")
	// ErrCycle marks a reference chain that reaches a block already being
	// expanded, directly or mutually.
	ErrCycle = errors.New("reference cycle")
)

// Expander substitutes <<name>> tokens with the expanded body of the named
// block. Resolution is document-wide, not limited to the referring block's
// language.
type Expander struct {
	doc *document.Document
}

func New(doc *document.Document) *Expander {
	return &Expander{doc: doc}
}

// Expand returns the block body with every reference replaced, recursively:
// a referenced block's own references resolve before substitution.
// Expansion only applies when the block carries noweb: yes; otherwise the
// body is returned verbatim, tokens intact.
func (e *Expander) Expand(block *document.Block) (string, error) {
	if block.Params.GetDefault("noweb", "") != "yes" {
		return block.Body, nil
	}
	visiting := map[string]bool{block.Name: true}
	return e.expand(block.Body, []string{block.Name}, visiting)
}

func (e *Expander) expand(body string, chain []string, visiting map[string]bool) (string, error) {
	var firstErr error
	out := referenceRe.ReplaceAllStringFunc(body, func(token string) string {
		if firstErr != nil {
			return token
		}
		name := strings.TrimSpace(referenceRe.FindStringSubmatch(token)[1])

		ref, ok := e.doc.Named(name)
		if !ok {
			firstErr = fmt.Errorf("%w: <<%s>>", ErrUnknownReference, name)
			return token
		}
		if visiting[name] {
			firstErr = fmt.Errorf("%w: %s", ErrCycle, chainString(chain, name))
			return token
		}

		visiting[name] = true
		expanded, err := e.expand(ref.Body, appendChain(chain, name), visiting)
		delete(visiting, name)
		if err != nil {
			firstErr = err
			return token
		}
		return expanded
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func appendChain(chain []string, name string) []string {
	out := make([]string, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, name)
}

func chainString(chain []string, name string) string {
	return strings.Join(appendChain(chain, name), " -> ")
}
