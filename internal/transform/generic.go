package transform

import (
	"strings"

	"github.com/loom-dev/loom/internal/document"
)

// Generic is the fallback transformer: it strips leading and trailing blank
// lines and guarantees a single trailing newline, never restructuring the
// body itself.
type Generic struct{}

func (Generic) Language() string { return "" }

func (Generic) Transform(body string, _ document.ParamSet) string {
	body = strings.TrimLeft(body, "\n")
	body = strings.TrimRight(body, " \t\n")
	if body == "" {
		return ""
	}
	return body + "\n"
}
