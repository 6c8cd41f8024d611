package shellenv

import (
	"strings"

	"github.com/sheldir/provsh/internal/domain"
)

// HasEffectiveAssignment reports whether content already binds variable to a
// live, non-placeholder value in the given dialect. It recognizes manually
// added assignments as well as engine-written ones, so a user's own working
// configuration is never overwritten.
//
// The scan is deliberately not a shell parser: it walks lines top to bottom,
// skips comments, strips the dialect's assignment prefix, and interprets the
// right-hand side with ParseLiteral. Good enough for single-assignment
// recognition; anything stricter belongs behind this same signature.
func HasEffectiveAssignment(content, variable string, dialect domain.ShellDialect, placeholders []string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, dialect.CommentPrefix()) {
			continue
		}
		rest := strings.TrimPrefix(trimmed, dialect.AssignPrefix())
		if !strings.HasPrefix(rest, variable+"=") {
			continue
		}
		value, ok := ParseLiteral(rest[len(variable)+1:])
		if !ok || value == "" {
			continue
		}
		if !isPlaceholder(value, placeholders) {
			return true
		}
	}
	return false
}

func isPlaceholder(value string, placeholders []string) bool {
	for _, p := range placeholders {
		if value == p {
			return true
		}
	}
	return false
}
