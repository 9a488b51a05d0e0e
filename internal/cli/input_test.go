package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bastiangx/phrasegap/pkg/guess"
	"github.com/bastiangx/phrasegap/pkg/lexicon"
	"github.com/bastiangx/phrasegap/pkg/phrasefinder"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

type fakeFinder struct {
	phrases  []phrasefinder.Phrase
	err      error
	word     string
	pos      phrasefinder.Position
	numWords int
}

func (f *fakeFinder) Search(_ context.Context, word string, pos phrasefinder.Position, numWords int) ([]phrasefinder.Phrase, error) {
	f.word, f.pos, f.numWords = word, pos, numWords
	return f.phrases, f.err
}

func newGuesser(finder guess.Finder, words ...string) *guess.Guesser {
	lex := lexicon.NewLexicon()
	for _, w := range words {
		lex.Add(w)
	}
	return guess.NewGuesser(finder, lex, lexicon.EnglishStopwords(), lexicon.NewLemmatizer(), guess.DefaultOptions())
}

func tokens(texts ...string) []phrasefinder.Token {
	out := make([]phrasefinder.Token, len(texts))
	for i, t := range texts {
		out[i] = phrasefinder.Token{Text: t}
	}
	return out
}

func TestPromptPositionReprompt(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandlerIO(nil, 0, 1, strings.NewReader("x\nb\n"), &out)

	pos, err := h.PromptPosition()
	if err != nil {
		t.Fatalf("PromptPosition: %v", err)
	}
	if pos != phrasefinder.Before {
		t.Errorf("pos = %q, want before", pos)
	}
	if n := strings.Count(out.String(), "Invalid character"); n != 1 {
		t.Errorf("reprompted %d times, want exactly 1", n)
	}
	if n := strings.Count(out.String(), "Type B for before word"); n != 2 {
		t.Errorf("prompted %d times, want 2", n)
	}
}

func TestPromptPositionCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandlerIO(nil, 0, 1, strings.NewReader("A\n"), &out)

	pos, err := h.PromptPosition()
	if err != nil {
		t.Fatalf("PromptPosition: %v", err)
	}
	if pos != phrasefinder.After {
		t.Errorf("pos = %q, want after", pos)
	}
}

func TestPromptNumWordsRejectsNonNumeric(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandlerIO(nil, 0, 1, strings.NewReader("many\n"), &out)

	if _, err := h.PromptNumWords(); err == nil {
		t.Fatal("expected an error for non-numeric input")
	}
}

func TestPromptNumWordsEmptyUsesDefault(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandlerIO(nil, 0, 3, strings.NewReader("\n"), &out)

	n, err := h.PromptNumWords()
	if err != nil {
		t.Fatalf("PromptNumWords: %v", err)
	}
	if n != 3 {
		t.Errorf("n = %d, want the configured default 3", n)
	}
}

func TestRunPrintsRankedList(t *testing.T) {
	finder := &fakeFinder{phrases: []phrasefinder.Phrase{
		{Tokens: tokens("quick", "brown", "fox"), Score: 0.5, MatchCount: 10},
	}}
	g := newGuesser(finder, "brown", "fox")

	var out bytes.Buffer
	h := NewInputHandlerIO(g, 0, 1, strings.NewReader("quick\na\n2\n"), &out)

	results, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results: %v", len(results), results)
	}
	if finder.word != "quick" || finder.pos != phrasefinder.After || finder.numWords != 2 {
		t.Errorf("lookup used %q/%s/%d", finder.word, finder.pos, finder.numWords)
	}
	if !strings.Contains(out.String(), "  brown fox 100.00%\n") {
		t.Errorf("output missing result line:\n%s", out.String())
	}
	if strings.Contains(out.String(), "STOPWORD") {
		t.Errorf("content words must not carry the STOPWORD marker:\n%s", out.String())
	}
}

func TestRunMarksStopwords(t *testing.T) {
	finder := &fakeFinder{phrases: []phrasefinder.Phrase{
		{Tokens: tokens("the", "coffee"), Score: 0.5, MatchCount: 5},
	}}
	g := newGuesser(finder, "the")

	var out bytes.Buffer
	h := NewInputHandlerIO(g, 0, 1, strings.NewReader("coffee\nb\n1\n"), &out)

	if _, err := h.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "  the 100.00% STOPWORD\n") {
		t.Errorf("output missing stopword marker:\n%s", out.String())
	}
}

func TestRunLookupFailureDegradesToEmpty(t *testing.T) {
	finder := &fakeFinder{err: context.DeadlineExceeded}
	g := newGuesser(finder)

	var out bytes.Buffer
	h := NewInputHandlerIO(g, 0, 1, strings.NewReader("quick\nb\n1\n"), &out)

	results, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("Run should absorb lookup failures, got: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want none", len(results))
	}
	if strings.Contains(out.String(), "%") {
		t.Errorf("no result lines expected:\n%s", out.String())
	}
}

func TestPrintLimit(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandlerIO(nil, 2, 1, strings.NewReader(""), &out)

	h.Print([]guess.Result{
		{Text: "black", Percent: 50, ContentWord: true},
		{Text: "hot", Percent: 30, ContentWord: true},
		{Text: "iced", Percent: 20, ContentWord: true},
	})
	if n := strings.Count(out.String(), "%"); n != 2 {
		t.Errorf("printed %d lines, want 2:\n%s", n, out.String())
	}
}
