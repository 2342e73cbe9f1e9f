package transform

import (
	"fmt"
	"strings"

	"github.com/loom-dev/loom/internal/document"
)

// shellAliases are the language names the shell transformer registers for.
var shellAliases = []string{"sh", "shell", "bash"}

// ShellTransformer prepends :var bindings as shell assignments, then
// delegates trimming to the generic pass.
type ShellTransformer struct {
	lang    string
	generic Generic
}

func NewShellTransformer(lang string) *ShellTransformer {
	return &ShellTransformer{lang: lang}
}

func (t *ShellTransformer) Language() string { return t.lang }

func (t *ShellTransformer) Transform(body string, params document.ParamSet) string {
	body = t.generic.Transform(body, params)

	bindings := varBindings(params)
	if len(bindings) == 0 {
		return body
	}

	var b strings.Builder
	for _, binding := range bindings {
		fmt.Fprintf(&b, "%s=%s\n", binding.Name, shellQuote(binding.Value))
	}
	return b.String() + body
}

// shellQuote single-quotes value, escaping embedded single quotes.
func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
