package translit

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars  = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// normalize reduces text to slug form: lowercase, only word characters and
// hyphens, single hyphens between words, no leading or trailing hyphens.
// \w is ASCII in Go's regexp, so non-Latin script strips to nothing here;
// Slugify handles that case with its fallbacks.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(strings.TrimSpace(s), "-")
	s = hyphenRun.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
