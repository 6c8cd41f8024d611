package shellenv

import "strings"

// ParseLiteral interprets a shell-literal token (quoted or bare) as its
// logical string value. It returns false for malformed tokens: the empty
// string, or a lone quote mark with no closing pair.
//
// Matching surrounding double or single quotes are stripped and their
// escaped form (`\"` or `\'`) is unescaped throughout the interior. A bare
// token is its own value, verbatim.
func ParseLiteral(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		switch {
		case first == '"' && last == '"':
			return strings.ReplaceAll(token[1:len(token)-1], `\"`, `"`), true
		case first == '\'' && last == '\'':
			return strings.ReplaceAll(token[1:len(token)-1], `\'`, `'`), true
		}
	}
	if token == `"` || token == `'` {
		return "", false
	}
	return token, true
}
