// Package guess runs the gap-guessing pipeline: look up phrase records for
// an anchor word, keep the candidates that survive the word-list filter,
// collapse inflected variants, and rescale match counts into percentages.
package guess

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bastiangx/phrasegap/pkg/lexicon"
	"github.com/bastiangx/phrasegap/pkg/phrasefinder"
	"github.com/charmbracelet/log"
)

// DefaultMinScore is the relevance cutoff below which phrase records are
// discarded.
const DefaultMinScore = 0.001

// Candidate is a gap filler with a weight. The weight is a raw match count
// after cleaning, a summed count after aggregation and a percentage after
// scoring; the shape stays the same through the pipeline.
type Candidate struct {
	Text   string
	Weight float64
}

// Result is a scored candidate with its stopword annotation.
// ContentWord is false when Text is a member of the stopword set.
type Result struct {
	Text        string
	Percent     float64
	ContentWord bool
}

// Finder is the lookup dependency of the pipeline.
type Finder interface {
	Search(ctx context.Context, word string, pos phrasefinder.Position, numWords int) ([]phrasefinder.Phrase, error)
}

// Options tune the cleaning stage.
type Options struct {
	// MinScore is the relevance cutoff; <= 0 falls back to DefaultMinScore.
	MinScore float64
	// WordCheck gates candidates on word-list membership. Turning it off
	// is for inspecting raw API output only.
	WordCheck bool
}

// DefaultOptions returns the standard cleaning thresholds.
func DefaultOptions() Options {
	return Options{MinScore: DefaultMinScore, WordCheck: true}
}

// Guesser wires the lookup client and the linguistic resources together.
// All fields are read-only after construction.
type Guesser struct {
	finder Finder
	words  *lexicon.Lexicon
	stop   *lexicon.Stopwords
	lemma  *lexicon.Lemmatizer
	opts   Options
}

// NewGuesser creates a Guesser.
func NewGuesser(finder Finder, words *lexicon.Lexicon, stop *lexicon.Stopwords, lemma *lexicon.Lemmatizer, opts Options) *Guesser {
	if opts.MinScore <= 0 {
		opts.MinScore = DefaultMinScore
	}
	return &Guesser{
		finder: finder,
		words:  words,
		stop:   stop,
		lemma:  lemma,
		opts:   opts,
	}
}

// gapTokens extracts the token texts occupying the wildcard slots of one
// phrase record. For After the anchor is the first token and everything
// behind it is the gap; for Before the anchor is the last token and the gap
// is the numWords tokens right in front of it. Records too short to hold
// anchor plus gap yield nil.
func gapTokens(p phrasefinder.Phrase, pos phrasefinder.Position, numWords int) []string {
	n := len(p.Tokens)
	var slice []phrasefinder.Token
	if pos == phrasefinder.After {
		if n < 2 {
			return nil
		}
		slice = p.Tokens[1:]
	} else {
		lo := n - 1 - numWords
		if lo < 0 || numWords < 1 {
			return nil
		}
		slice = p.Tokens[lo : n-1]
	}
	texts := make([]string, 0, len(slice))
	for _, tk := range slice {
		texts = append(texts, tk.Text)
	}
	return texts
}

// Clean turns phrase records into candidates. A record survives only when
// its score is above the threshold and every gap token is a known word;
// a single unknown or empty token drops the whole record.
func (g *Guesser) Clean(phrases []phrasefinder.Phrase, pos phrasefinder.Position, numWords int) []Candidate {
	var out []Candidate
	for _, p := range phrases {
		if p.Score <= g.opts.MinScore {
			continue
		}
		texts := gapTokens(p, pos, numWords)
		if len(texts) == 0 {
			continue
		}
		if g.opts.WordCheck {
			known := true
			for _, t := range texts {
				if !g.words.Contains(t) {
					known = false
					break
				}
			}
			if !known {
				continue
			}
		}
		out = append(out, Candidate{
			Text:   strings.Join(texts, " "),
			Weight: p.MatchCount,
		})
	}
	return out
}

// Aggregate groups candidates by the lemma of their full text and sums the
// weights of each group. The output is sorted by weight descending, ties by
// text ascending so runs are deterministic. Weight is only regrouped, never
// dropped: the totals before and after match.
func (g *Guesser) Aggregate(cands []Candidate) []Candidate {
	sums := make(map[string]float64, len(cands))
	for _, c := range cands {
		sums[g.lemma.Lemma(c.Text)] += c.Weight
	}
	out := make([]Candidate, 0, len(sums))
	for text, w := range sums {
		out = append(out, Candidate{Text: text, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Text < out[j].Text
	})
	return out
}

// Score rescales weights to percentages of the grand total. A zero or
// negative total yields an empty list instead of dividing by zero.
func Score(cands []Candidate) []Candidate {
	var total float64
	for _, c := range cands {
		total += c.Weight
	}
	if total <= 0 {
		return nil
	}
	out := make([]Candidate, len(cands))
	for i, c := range cands {
		out[i] = Candidate{Text: c.Text, Weight: c.Weight / total * 100}
	}
	return out
}

// Annotate attaches the stopword flag to each scored candidate.
func (g *Guesser) Annotate(cands []Candidate) []Result {
	out := make([]Result, len(cands))
	for i, c := range cands {
		out[i] = Result{
			Text:        c.Text,
			Percent:     c.Weight,
			ContentWord: !g.stop.IsStopword(c.Text),
		}
	}
	return out
}

// Run executes the full pipeline for one anchor word. A failed lookup is
// returned as an error so the caller can distinguish it from an empty
// result set.
func (g *Guesser) Run(ctx context.Context, word string, pos phrasefinder.Position, numWords int) ([]Result, error) {
	phrases, err := g.finder.Search(ctx, word, pos, numWords)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}
	log.Debugf("Lookup for %q returned %d phrase records", word, len(phrases))

	cleaned := g.Clean(phrases, pos, numWords)
	scored := Score(g.Aggregate(cleaned))
	return g.Annotate(scored), nil
}

// Rank is the programmatic entry point: one wildcard before the anchor,
// scored but not annotated.
func (g *Guesser) Rank(ctx context.Context, word string) ([]Candidate, error) {
	phrases, err := g.finder.Search(ctx, word, phrasefinder.Before, 1)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}
	cleaned := g.Clean(phrases, phrasefinder.Before, 1)
	return Score(g.Aggregate(cleaned)), nil
}
