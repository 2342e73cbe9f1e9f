package transform

import (
	"strings"
	"testing"

	"github.com/loom-dev/loom/internal/document"
)

func TestGenericTransformerTrims(t *testing.T) {
	r := NewDefaultRegistry()

	got := r.Apply("go", "\n\nfunc main() {}\n\n\n", nil)
	if got != "func main() {}\n" {
		t.Fatalf("expected trimmed body with trailing newline, got %q", got)
	}

	if got := r.Apply("go", "no newline", nil); got != "no newline\n" {
		t.Fatalf("expected trailing newline appended, got %q", got)
	}

	if got := r.Apply("go", "\n\n", nil); got != "" {
		t.Fatalf("expected empty body to stay empty, got %q", got)
	}
}

func TestGenericPreservesIndentation(t *testing.T) {
	body := "\tindented\n    spaced\n"
	if got := (Generic{}).Transform(body, nil); got != body {
		t.Fatalf("generic transformer restructured the body: %q", got)
	}
}

func TestPythonVarInjection(t *testing.T) {
	r := NewDefaultRegistry()
	params := document.ParamSet{
		{Key: "var", Value: "greeting=hello world"},
		{Key: "var", Value: "count=3"},
	}

	got := r.Apply("python", "print(greeting * count)\n", params)
	lines := strings.Split(got, "\n")
	if lines[0] != `greeting = "hello world"` {
		t.Fatalf("expected quoted string binding first, got %q", lines[0])
	}
	if lines[1] != "count = 3" {
		t.Fatalf("expected numeric binding unquoted, got %q", lines[1])
	}
	if lines[2] != "print(greeting * count)" {
		t.Fatalf("expected original body after bindings, got %q", lines[2])
	}
}

func TestShellVarInjection(t *testing.T) {
	r := NewDefaultRegistry()
	params := document.ParamSet{
		{Key: "var", Value: "msg=it's here"},
	}

	got := r.Apply("bash", "echo \"$msg\"\n", params)
	if !strings.HasPrefix(got, `msg='it'\''s here'`+"\n") {
		t.Fatalf("expected quoted shell binding, got %q", got)
	}
}

func TestNoExpandSuppressesLanguageTransformer(t *testing.T) {
	r := NewDefaultRegistry()
	params := document.ParamSet{
		{Key: "var", Value: "x=1"},
		{Key: "no-expand", Value: ""},
	}

	got := r.Apply("python", "print(x)\n", params)
	if strings.Contains(got, "x = 1") {
		t.Fatalf("no-expand should suppress var injection, got %q", got)
	}
	if got != "print(x)\n" {
		t.Fatalf("expected generic pass only, got %q", got)
	}
}

func TestUnregisteredLanguageFallsBack(t *testing.T) {
	r := NewDefaultRegistry()
	params := document.ParamSet{{Key: "var", Value: "x=1"}}

	got := r.Apply("fortran", "body\n", params)
	if got != "body\n" {
		t.Fatalf("expected generic fallback for unregistered language, got %q", got)
	}
}

func TestMalformedVarsDropped(t *testing.T) {
	params := document.ParamSet{
		{Key: "var", Value: "novalue"},
		{Key: "var", Value: "=noname"},
		{Key: "var", Value: "ok=1"},
	}
	bindings := varBindings(params)
	if len(bindings) != 1 || bindings[0].Name != "ok" {
		t.Fatalf("expected only the valid binding, got %+v", bindings)
	}
}
