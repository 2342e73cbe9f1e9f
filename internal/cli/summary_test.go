package cli

import "testing"

func TestSummarizePaths(t *testing.T) {
	paths := []string{"a.go", "b.go", "c.go"}

	if got := SummarizePaths(paths, 8); got != "a.go, b.go, c.go" {
		t.Fatalf("unexpected summary: %q", got)
	}
	if got := SummarizePaths(paths, 2); got != "a.go, b.go ... (+1 more)" {
		t.Fatalf("unexpected truncated summary: %q", got)
	}
}

func TestIsMarkdown(t *testing.T) {
	if !isMarkdown("doc.md") || !isMarkdown("DOC.MD") || !isMarkdown("notes.markdown") {
		t.Fatalf("markdown extensions not recognized")
	}
	if isMarkdown("doc.org") || isMarkdown("doc") {
		t.Fatalf("non-markdown path accepted")
	}
}
