package lexicon

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// Lemmatizer reduces a candidate to its base form so that inflected
// variants collapse into one group. It checks a small irregular-form table
// first and falls back to snowball stemming.
//
// The whole candidate is reduced as a single unit, spaces and all. For
// multi-word candidates only the trailing word is effectively inflected,
// which is an approximation, but splitting would change how groups merge.
type Lemmatizer struct {
	irregular map[string]string
}

// irregularForms covers common English nouns the suffix stemmer cannot fold.
var irregularForms = map[string]string{
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"people":   "person",
	"feet":     "foot",
	"teeth":    "tooth",
	"geese":    "goose",
	"mice":     "mouse",
	"lives":    "life",
	"wives":    "wife",
	"knives":   "knife",
	"leaves":   "leaf",
}

// NewLemmatizer creates a lemmatizer with the builtin irregular table.
func NewLemmatizer() *Lemmatizer {
	return &Lemmatizer{irregular: irregularForms}
}

// Lemma returns the base form of text.
func (lm *Lemmatizer) Lemma(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return lowered
	}
	if base, ok := lm.irregular[lowered]; ok {
		return base
	}
	return english.Stem(lowered, false)
}
