package expand

import (
	"errors"
	"strings"
	"testing"

	"github.com/loom-dev/loom/internal/document"
)

func noweb() document.ParamSet {
	return document.ParamSet{{Key: "noweb", Value: "yes"}}
}

func newDoc(blocks ...document.Block) *document.Document {
	return document.New("doc.md", blocks)
}

func TestExpandSubstitutesReference(t *testing.T) {
	doc := newDoc(
		document.Block{Name: "A", Body: "alpha body\n"},
		document.Block{Name: "B", Body: "before\n<<A>>\nafter\n", Params: noweb()},
	)

	b, _ := doc.Named("B")
	got, err := New(doc).Expand(b)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if !strings.Contains(got, "alpha body") {
		t.Fatalf("expected referenced body in output, got %q", got)
	}
	if strings.Contains(got, "<<A>>") {
		t.Fatalf("reference token survived expansion: %q", got)
	}
}

func TestExpandIsRecursive(t *testing.T) {
	doc := newDoc(
		document.Block{Name: "leaf", Body: "deep\n"},
		document.Block{Name: "mid", Body: "<<leaf>>\n"},
		document.Block{Name: "top", Body: "<<mid>>\n", Params: noweb()},
	)

	top, _ := doc.Named("top")
	got, err := New(doc).Expand(top)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if !strings.Contains(got, "deep") || strings.Contains(got, "<<") {
		t.Fatalf("nested reference not fully expanded: %q", got)
	}
}

func TestExpandDisabledLeavesTokensVerbatim(t *testing.T) {
	doc := newDoc(
		document.Block{Name: "A", Body: "alpha\n"},
		document.Block{Name: "B", Body: "<<A>>\n"},
	)

	b, _ := doc.Named("B")
	got, err := New(doc).Expand(b)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if got != "<<A>>\n" {
		t.Fatalf("expected verbatim body without noweb, got %q", got)
	}
}

func TestExpandUnknownReference(t *testing.T) {
	doc := newDoc(
		document.Block{Name: "B", Body: "<<missing>>\n", Params: noweb()},
	)

	b, _ := doc.Named("B")
	_, err := New(doc).Expand(b)
	if !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("error should name the reference: %v", err)
	}
}

func TestExpandDetectsSelfCycle(t *testing.T) {
	doc := newDoc(
		document.Block{Name: "self", Body: "x <<self>> y\n", Params: noweb()},
	)

	b, _ := doc.Named("self")
	_, err := New(doc).Expand(b)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestExpandDetectsMutualCycle(t *testing.T) {
	doc := newDoc(
		document.Block{Name: "A", Body: "<<B>>\n", Params: noweb()},
		document.Block{Name: "B", Body: "<<A>>\n"},
	)

	a, _ := doc.Named("A")
	_, err := New(doc).Expand(a)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
	if !strings.Contains(err.Error(), "A -> B -> A") {
		t.Fatalf("error should report the chain, got %v", err)
	}
}

func TestExpandSiblingReferencesShareNoState(t *testing.T) {
	// The same block referenced twice is not a cycle.
	doc := newDoc(
		document.Block{Name: "part", Body: "p\n"},
		document.Block{Name: "B", Body: "<<part>>\n<<part>>\n", Params: noweb()},
	)

	b, _ := doc.Named("B")
	got, err := New(doc).Expand(b)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if strings.Count(got, "p\n") != 2 {
		t.Fatalf("expected both references expanded, got %q", got)
	}
}
