package core

import (
	"strings"
	"unicode"
)

// Slugify derives a filesystem-safe identifier from a title.
// ASCII letters and digits are lowered and kept; runs of whitespace,
// hyphens and underscores collapse to a single hyphen. Everything else is
// dropped. An empty result falls back to "note".
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case unicode.IsSpace(r) || r == '-' || r == '_':
			s := b.String()
			if !strings.HasSuffix(s, "-") {
				b.WriteByte('-')
			}
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "note"
	}
	return slug
}
