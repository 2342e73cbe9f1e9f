package tangle

// defaultExtensions maps block languages to destination file extensions,
// consulted only for tangle: yes blocks. Unknown languages fall back to the
// language name itself.
var defaultExtensions = map[string]string{
	"go":         "go",
	"python":     "py",
	"sh":         "sh",
	"shell":      "sh",
	"bash":       "sh",
	"javascript": "js",
	"typescript": "ts",
	"ruby":       "rb",
	"rust":       "rs",
	"c":          "c",
	"cpp":        "cpp",
	"java":       "java",
	"haskell":    "hs",
	"emacs-lisp": "el",
	"elisp":      "el",
	"yaml":       "yml",
	"json":       "json",
	"toml":       "toml",
	"sql":        "sql",
	"lua":        "lua",
}

// extensionFor resolves the destination extension for lang, preferring
// per-project overrides from config.
func extensionFor(lang string, overrides map[string]string) string {
	if ext, ok := overrides[lang]; ok {
		return ext
	}
	if ext, ok := defaultExtensions[lang]; ok {
		return ext
	}
	return lang
}
