package transform

import (
	"strconv"
	"strings"

	"github.com/loom-dev/loom/internal/document"
)

// VarBinding is one `:var name=value` directive parsed from a block.
type VarBinding struct {
	Name  string
	Value string
}

// varBindings collects the repeatable :var directives in order. Malformed
// entries (no '=', empty name) are dropped.
func varBindings(params document.ParamSet) []VarBinding {
	var out []VarBinding
	for _, raw := range params.All("var") {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}
		out = append(out, VarBinding{Name: name, Value: value})
	}
	return out
}

// isNumeric reports whether value can pass through to the target language
// without quoting.
func isNumeric(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}
