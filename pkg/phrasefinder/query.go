package phrasefinder

import (
	"net/url"
	"strings"
)

// Position says which side of the anchor word the unknown words sit on.
type Position string

const (
	Before Position = "before"
	After  Position = "after"
)

// ParsePosition maps a single-character selector to a Position.
// Accepts "b"/"B" and "a"/"A"; anything else reports false.
func ParsePosition(ch string) (Position, bool) {
	switch strings.ToLower(strings.TrimSpace(ch)) {
	case "b":
		return Before, true
	case "a":
		return After, true
	}
	return "", false
}

// BuildPattern assembles the search pattern for one anchor word: numWords
// wildcard tokens joined by single spaces, placed before or after the anchor.
// numWords of 0 yields a degenerate pattern with a stray space; the API
// tolerates it, so it is not rejected here.
func BuildPattern(word string, pos Position, numWords int) string {
	if numWords < 0 {
		numWords = 0
	}
	gaps := strings.TrimSpace(strings.Repeat("? ", numWords))
	if pos == Before {
		return gaps + " " + word
	}
	return word + " " + gaps
}

// BuildQuery percent-encodes the pattern and assembles the raw query string
// with the corpus parameter. The encoding round-trips: unescaping the query
// value yields the original pattern.
func BuildQuery(corpus, pattern string) string {
	return "corpus=" + corpus + "&query=" + url.PathEscape(pattern)
}
