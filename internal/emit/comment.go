package emit

// commentLeaders maps block languages to the line-comment leader used for
// traceability markers. Unlisted languages fall back to "#".
var commentLeaders = map[string]string{
	"go":         "//",
	"c":          "//",
	"cpp":        "//",
	"java":       "//",
	"javascript": "//",
	"typescript": "//",
	"rust":       "//",
	"emacs-lisp": ";;",
	"elisp":      ";;",
	"lisp":       ";;",
	"scheme":     ";;",
	"sql":        "--",
	"lua":        "--",
	"haskell":    "--",
	"python":     "#",
	"sh":         "#",
	"shell":      "#",
	"bash":       "#",
	"ruby":       "#",
	"yaml":       "#",
	"toml":       "#",
}

// CommentLeader returns the line-comment leader for lang.
func CommentLeader(lang string) string {
	if leader, ok := commentLeaders[lang]; ok {
		return leader
	}
	return "#"
}
