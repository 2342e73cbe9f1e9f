package transform

import (
	"fmt"
	"strings"

	"github.com/loom-dev/loom/internal/document"
)

// PythonTransformer prepends :var bindings as python assignments, then
// delegates trimming to the generic pass.
type PythonTransformer struct {
	generic Generic
}

func NewPythonTransformer() *PythonTransformer {
	return &PythonTransformer{}
}

func (*PythonTransformer) Language() string { return "python" }

func (t *PythonTransformer) Transform(body string, params document.ParamSet) string {
	body = t.generic.Transform(body, params)

	bindings := varBindings(params)
	if len(bindings) == 0 {
		return body
	}

	var b strings.Builder
	for _, binding := range bindings {
		fmt.Fprintf(&b, "%s = %s\n", binding.Name, pythonLiteral(binding.Value))
	}
	return b.String() + body
}

func pythonLiteral(value string) string {
	if isNumeric(value) {
		return value
	}
	return fmt.Sprintf("%q", value)
}
