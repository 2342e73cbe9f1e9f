// Package transform applies per-language body massaging after reference
// expansion and before emission.
package transform

import "github.com/loom-dev/loom/internal/document"

// Transformer massages an expanded block body before emission. Transformers
// are pure functions over (body, params).
type Transformer interface {
	// Language returns the language name this transformer handles.
	Language() string

	// Transform returns the massaged body.
	Transform(body string, params document.ParamSet) string
}

// Registry maps language names to transformers with a generic fallback.
// Dispatch is an explicit capability lookup; there is no reflection.
type Registry struct {
	byLang  map[string]Transformer
	generic Transformer
}

// NewRegistry creates an empty registry with the generic fallback installed.
func NewRegistry() *Registry {
	return &Registry{
		byLang:  make(map[string]Transformer),
		generic: Generic{},
	}
}

// Register adds a language transformer to the registry.
func (r *Registry) Register(t Transformer) {
	r.byLang[t.Language()] = t
}

// Apply runs the registered transformer for lang. The generic fallback runs
// when no transformer is registered, or when the block carries no-expand.
func (r *Registry) Apply(lang, body string, params document.ParamSet) string {
	t, ok := r.byLang[lang]
	if !ok || params.Has("no-expand") {
		return r.generic.Transform(body, params)
	}
	return t.Transform(body, params)
}

// NewDefaultRegistry creates a registry with all built-in transformers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(NewPythonTransformer())
	for _, lang := range shellAliases {
		r.Register(NewShellTransformer(lang))
	}

	return r
}
