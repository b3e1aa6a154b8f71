package naming

import "strings"

// Slug normalizes a human-readable name into an identifier-safe string:
// lowercased, whitespace stripped, every character outside [a-z0-9_]
// removed. Returns fallback when the name is empty or normalizes to
// nothing. Slug is idempotent: Slug(Slug(x)) == Slug(x).
func Slug(name, fallback string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
