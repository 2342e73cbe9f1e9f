package cli

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func TestEnsureCompanionTanglesIntoCompanion(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := "```sh setup\necho hi\n```\n"
	if err := afero.WriteFile(fs, "/p/init.md", []byte(src), 0644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	summary, err := ensureCompanion(fs, "/p/init.md", "/p/init.sh", zap.NewNop())
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if summary == nil || summary.Blocks != 1 {
		t.Fatalf("expected one tangled block, got %+v", summary)
	}

	data, err := afero.ReadFile(fs, "/p/init.sh")
	if err != nil {
		t.Fatalf("companion not produced: %v", err)
	}
	if string(data) != "echo hi\n" {
		t.Fatalf("unexpected companion content: %q", data)
	}
}

func TestEnsureCompanionSkipsFreshCompanion(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/p/init.md", []byte("```sh\necho hi\n```\n"), 0644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := ensureCompanion(fs, "/p/init.md", "/p/init.sh", zap.NewNop()); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}

	past := time.Now().Add(-time.Hour)
	if err := fs.Chtimes("/p/init.md", past, past); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}

	summary, err := ensureCompanion(fs, "/p/init.md", "/p/init.sh", zap.NewNop())
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if summary != nil {
		t.Fatalf("fresh companion must not be retangled, got %+v", summary)
	}
}

func TestEnsureCompanionReportsEmptyTangle(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/p/init.md", []byte("```sh :tangle no\necho hi\n```\n"), 0644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := ensureCompanion(fs, "/p/init.md", "/p/init.sh", zap.NewNop()); err == nil {
		t.Fatalf("expected error when tangling produces no companion")
	}
}
