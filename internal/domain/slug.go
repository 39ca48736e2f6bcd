package domain

import (
	"strings"
	"unicode"
)

const maxSlugLen = 50

// Slugify derives a URL-safe slug from a title: lowercased, punctuation
// stripped, whitespace runs collapsed to single hyphens, capped at 50
// runes. Same-title collisions are not deduplicated; uniqueness is the
// caller's concern (a known gap carried over from the site).
func Slugify(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(title))
	prevHyphen := false
	for _, r := range title {
		switch {
		// Marks (Mn) carry Thai vowel and tone signs; dropping them
		// would mangle Thai slugs.
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
			b.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !prevHyphen && b.Len() > 0 {
				b.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	runes := []rune(slug)
	if len(runes) > maxSlugLen {
		slug = strings.TrimRight(string(runes[:maxSlugLen]), "-")
	}
	return slug
}

// FoldText prepares text for substring matching: trimmed and lowercased.
func FoldText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
