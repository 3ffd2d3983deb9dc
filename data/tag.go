package data

import (
	"strings"
	"unicode"
)

type Tag struct {
	Raw string
}

func (t Tag) String() string {
	return t.Raw
}

func (t Tag) Normalize() string {
	return Slugify(t.Raw)
}

// Slugify turns a free-text label into its canonical form: lower case,
// punctuation dropped, whitespace runs and hyphens collapsed into a single
// hyphen, no leading or trailing hyphen. Letters and digits of any script
// as well as underscores are kept.
func Slugify(s string) string {
	var b strings.Builder

	pendingDash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingDash = true
		}
	}

	return b.String()
}

// SlugifyAll slugifies every tag, keeping order and duplicates.
func SlugifyAll(tags []string) []string {
	slugs := make([]string, len(tags))
	for i, tag := range tags {
		slugs[i] = Slugify(tag)
	}

	return slugs
}
