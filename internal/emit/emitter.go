// Package emit materializes expanded blocks into destination files.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/loom-dev/loom/internal/document"
)

// outputState tracks per-destination bookkeeping for one run. It exists only
// for the run's duration; nothing is persisted besides the files themselves.
type outputState struct {
	language       string
	shebangWritten bool
	executable     bool
}

// Emitter writes blocks to their destinations. The first block targeting a
// path truncates any pre-existing file; every later block appends. Each
// block is flushed with a read-existing + append + rewrite cycle, so a
// failed run leaves already-processed destinations intact on disk.
type Emitter struct {
	fs       afero.Fs
	log      *zap.Logger
	comments bool // run-wide "tangle with comments" flag

	files map[string]*outputState
	paths []string // produced paths, order of first creation
}

func New(fs afero.Fs, log *zap.Logger, comments bool) *Emitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Emitter{
		fs:       fs,
		log:      log,
		comments: comments,
		files:    make(map[string]*outputState),
	}
}

// EmitBlock appends one decorated block body to path. Decoration markers are
// written only when the block carries comments: yes and the run-wide flag is
// on. A non-empty shebang directive is inserted as the very first line of
// the file, exactly once per destination, and marks the file executable.
func (e *Emitter) EmitBlock(path, language string, block document.Block, body string) error {
	state, seen := e.files[path]
	if !seen {
		if err := e.openDestination(path, language); err != nil {
			return err
		}
		state = e.files[path]
	}

	var existing []byte
	exists, err := afero.Exists(e.fs, path)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	if exists {
		existing, err = afero.ReadFile(e.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	var out strings.Builder
	out.Write(existing)

	decorate := e.comments && block.Params.GetDefault("comments", "") == "yes"
	leader := CommentLeader(language)
	if decorate {
		fmt.Fprintf(&out, "%s [[file:%s::%s][%s]]\n", leader, block.Link.Path, block.Name, block.Name)
	}
	out.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		out.WriteString("\n")
	}
	if decorate {
		fmt.Fprintf(&out, "%s %s ends here\n", leader, block.Name)
	}

	content := []byte(out.String())

	if shebang := strings.TrimSpace(block.Params.GetDefault("shebang", "")); shebang != "" && !state.shebangWritten {
		content = append([]byte(shebang+"\n"), content...)
		state.shebangWritten = true
		state.executable = true
	}

	perm := os.FileMode(0644)
	if state.executable {
		perm = 0755
	}
	if err := afero.WriteFile(e.fs, path, content, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if state.executable {
		if err := e.fs.Chmod(path, 0755); err != nil {
			return fmt.Errorf("failed to mark %s executable: %w", path, err)
		}
	}

	e.log.Debug("block emitted",
		zap.String("path", path),
		zap.String("block", block.Name))
	return nil
}

// openDestination registers path for this run, deleting any stale file from
// a previous run so accumulation starts fresh.
func (e *Emitter) openDestination(path, language string) error {
	exists, err := afero.Exists(e.fs, path)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	if exists {
		if err := e.fs.Remove(path); err != nil {
			return fmt.Errorf("failed to remove stale %s: %w", path, err)
		}
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := e.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	e.files[path] = &outputState{language: language}
	e.paths = append(e.paths, path)
	e.log.Debug("destination opened",
		zap.String("path", path),
		zap.String("language", language))
	return nil
}

// Paths returns the produced destinations, de-duplicated, in order of first
// creation.
func (e *Emitter) Paths() []string {
	return e.paths
}
