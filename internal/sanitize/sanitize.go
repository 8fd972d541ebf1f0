// Package sanitize cleans feed description text for terminal display.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

// tagPattern is a best-effort markup strip, not an HTML parser. It
// matches non-greedily between angle brackets, across newlines, and
// will mis-handle a literal '>' inside an attribute value. Feed
// descriptions are short excerpts; that trade is fine here.
var tagPattern = regexp.MustCompile(`(?s)<.*?>`)

// Clean strips markup tags, decodes HTML entities, and trims
// surrounding whitespace. Cleaning already-plain text is a no-op
// beyond the trim.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	text := tagPattern.ReplaceAllString(raw, "")
	return strings.TrimSpace(html.UnescapeString(text))
}

// Truncate cuts s to at most n runes. Rune-aware so multibyte
// characters never get split.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
