package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestLexiconContains(t *testing.T) {
	lex := NewLexicon()
	for _, w := range []string{"quick", "brown", "fox"} {
		lex.Add(w)
	}

	cases := []struct {
		word string
		want bool
	}{
		{"quick", true},
		{"Quick", true},
		{"FOX", true},
		{"foxes", false},
		{"qui", false}, // prefix, not a word
		{"", false},
		{"lazy", false},
	}
	for _, tc := range cases {
		if got := lex.Contains(tc.word); got != tc.want {
			t.Errorf("Contains(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
	if lex.Size() != 3 {
		t.Errorf("Size() = %d, want 3", lex.Size())
	}
}

func TestLexiconAddDedup(t *testing.T) {
	lex := NewLexicon()
	lex.Add("tea")
	lex.Add("Tea")
	lex.Add("  tea ")
	lex.Add("")
	if lex.Size() != 1 {
		t.Errorf("Size() = %d, want 1", lex.Size())
	}
}

func TestLexiconLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment line\nquick\nbrown\t1200\nfox 88\n\nlazy\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lex := NewLexicon()
	if err := lex.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, w := range []string{"quick", "brown", "fox", "lazy"} {
		if !lex.Contains(w) {
			t.Errorf("Contains(%q) = false after Load", w)
		}
	}
	if lex.Contains("#") || lex.Contains("comment") {
		t.Error("comment line leaked into the word set")
	}
	if lex.Size() != 4 {
		t.Errorf("Size() = %d, want 4", lex.Size())
	}
}

func TestLexiconLoadMissingFile(t *testing.T) {
	lex := NewLexicon()
	if err := lex.Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected an error for a missing word list")
	}
}

func TestBuiltinLexicon(t *testing.T) {
	lex := Builtin()

	if lex.Size() == 0 {
		t.Fatal("builtin lexicon is empty")
	}
	for _, w := range []string{"coffee", "black", "the", "of"} {
		if !lex.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if lex.Contains("zxqvw") {
		t.Error("Contains(\"zxqvw\") = true, want false")
	}
}

func TestStopwords(t *testing.T) {
	stop := EnglishStopwords()

	cases := []struct {
		text string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"of", true},
		{"don't", true},
		{"fox", false},
		{"brown fox", false}, // phrases never match
		{"", false},
	}
	for _, tc := range cases {
		if got := stop.IsStopword(tc.text); got != tc.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestLemmatizer(t *testing.T) {
	lm := NewLemmatizer()

	cases := []struct {
		in   string
		want string
	}{
		{"running", "run"},
		{"dogs", "dog"},
		{"cats", "cat"},
		{"children", "child"},
		{"mice", "mouse"},
		{"the", "the"}, // stopwords pass through unstemmed
		{"fox", "fox"},
		{"brown fox", "brown fox"}, // phrase reduced as one unit
		{"Running", "run"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := lm.Lemma(tc.in); got != tc.want {
			t.Errorf("Lemma(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
