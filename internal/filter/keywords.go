// Package filter provides keyword matching for feed items.
// Pure functions over strings; no side effects.
package filter

import (
	"regexp"
	"strings"
)

// Keywords matches text against a fixed term list with word-boundary
// anchoring, so "ai" hits "AI wins" but never "said" or "aim".
// Multi-word terms match only as contiguous phrases.
type Keywords struct {
	patterns []*regexp.Regexp
}

// NewKeywords compiles the term list. Terms are lowercased; matching
// happens against lowercased text, so the overall effect is
// case-insensitive.
func NewKeywords(terms []string) *Keywords {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return &Keywords{patterns: patterns}
}

// Match reports whether any keyword occurs in the combined
// title+description text. Returns on the first hit.
func (k *Keywords) Match(title, description string) bool {
	combined := strings.ToLower(title) + " " + strings.ToLower(description)
	for _, p := range k.patterns {
		if p.MatchString(combined) {
			return true
		}
	}
	return false
}

// Len returns the number of compiled keyword patterns.
func (k *Keywords) Len() int {
	return len(k.patterns)
}
