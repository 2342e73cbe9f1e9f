// Package ignore filters paths during directory tangling using
// gitignore-like rules from .loomignore.
package ignore

import (
	"path/filepath"
	"regexp"
	"strings"
)

type rule struct {
	pattern  string
	negated  bool
	dirOnly  bool
	anchored bool
}

// Matcher applies ignore rules with "last rule wins" behavior.
type Matcher struct {
	rules []rule
}

// NewMatcher builds a matcher from user-provided .loomignore lines.
// Defaults are prepended and can be overridden with negation rules.
func NewMatcher(userRules []string) *Matcher {
	defaults := []string{
		".git/",
		"node_modules/",
		"vendor/",
		"dist/",
		"build/",
		"target/",
	}

	m := &Matcher{}
	for _, line := range append(defaults, userRules...) {
		if parsed, ok := parseRule(line); ok {
			m.rules = append(m.rules, parsed)
		}
	}
	return m
}

// ShouldIgnore returns true when relPath should be excluded from the walk.
func (m *Matcher) ShouldIgnore(relPath string, isDir bool) bool {
	relPath = normalize(relPath)
	ignored := false
	for _, r := range m.rules {
		if r.matches(relPath, isDir) {
			ignored = !r.negated
		}
	}
	return ignored
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	var r rule
	if strings.HasPrefix(line, "!") {
		r.negated = true
		line = line[1:]
	}
	if strings.HasPrefix(line, "/") {
		r.anchored = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	line = normalize(line)
	if line == "" {
		return rule{}, false
	}
	r.pattern = line
	return r, true
}

func (r rule) matches(relPath string, isDir bool) bool {
	if r.dirOnly {
		if r.matchesDirPrefix(relPath) {
			return true
		}
		return isDir && globMatch(r.pattern, filepath.Base(relPath))
	}

	if r.anchored {
		return globMatch(r.pattern, relPath)
	}

	if strings.Contains(r.pattern, "/") {
		// Match the pattern against the full path and every sub-path suffix.
		if globMatch(r.pattern, relPath) {
			return true
		}
		parts := strings.Split(relPath, "/")
		for i := 1; i < len(parts); i++ {
			if globMatch(r.pattern, strings.Join(parts[i:], "/")) {
				return true
			}
		}
		return false
	}

	for _, segment := range strings.Split(relPath, "/") {
		if globMatch(r.pattern, segment) {
			return true
		}
	}
	return false
}

// matchesDirPrefix reports whether relPath sits inside a directory the rule
// names, at any depth unless the rule is anchored.
func (r rule) matchesDirPrefix(relPath string) bool {
	if relPath == r.pattern || strings.HasPrefix(relPath, r.pattern+"/") {
		return true
	}
	if r.anchored {
		return false
	}
	parts := strings.Split(relPath, "/")
	for i := range parts {
		if strings.Join(parts[:i+1], "/") == r.pattern {
			return true
		}
	}
	return false
}

func globMatch(pattern, value string) bool {
	ok, err := regexp.MatchString("^"+globToRegex(pattern)+"$", value)
	return err == nil && ok
}

func globToRegex(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		switch ch := pattern[i]; {
		case ch == '*' && i+1 < len(pattern) && pattern[i+1] == '*':
			b.WriteString(".*")
			i++
		case ch == '*':
			b.WriteString("[^/]*")
		case ch == '?':
			b.WriteString("[^/]")
		default:
			if strings.ContainsRune(`.+()|[]{}^$\\`, rune(ch)) {
				b.WriteByte('\\')
			}
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func normalize(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	return strings.TrimPrefix(path, "/")
}
