package document

import "strings"

// parseInfo splits a fence info string into language, optional block name,
// and ordered directives.
//
// The grammar is: `<language> [<name>] [:key value... ]*`. The name is the
// first token after the language that does not start with a colon. A
// directive value runs until the next `:key` token or the end of the line,
// so values may contain spaces (e.g. `:shebang #!/usr/bin/env bash`).
func parseInfo(info string) (lang, name string, params ParamSet) {
	tokens := strings.Fields(info)
	if len(tokens) == 0 {
		return "", "", nil
	}
	lang = tokens[0]

	i := 1
	if i < len(tokens) && !strings.HasPrefix(tokens[i], ":") {
		name = tokens[i]
		i++
	}

	for i < len(tokens) {
		token := tokens[i]
		i++
		if !strings.HasPrefix(token, ":") || len(token) == 1 {
			// Stray token between directives, nothing to attach it to.
			continue
		}
		key := strings.TrimPrefix(token, ":")

		var value []string
		for i < len(tokens) && !isDirectiveKey(tokens[i]) {
			value = append(value, tokens[i])
			i++
		}
		params = append(params, Param{Key: key, Value: strings.Join(value, " ")})
	}
	return lang, name, params
}

// isDirectiveKey distinguishes a `:key` token from a value token that merely
// starts with a colon (shebang paths never do, but block bodies are user
// input).
func isDirectiveKey(token string) bool {
	if !strings.HasPrefix(token, ":") || len(token) == 1 {
		return false
	}
	for _, r := range token[1:] {
		if !(r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
