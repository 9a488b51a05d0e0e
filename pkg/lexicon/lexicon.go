// Package lexicon holds the read-only linguistic resources the pipeline
// depends on: the English word list, the stopword set and the base-form
// reducer. Everything is built once up front and injected where needed.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Lexicon is an exact-membership English word set backed by a patricia trie.
type Lexicon struct {
	trie  *patricia.Trie
	words int
}

// NewLexicon creates an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{trie: patricia.NewTrie()}
}

// Add inserts a word. Words are stored lowercase.
func (l *Lexicon) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	if l.trie.Insert(patricia.Prefix(word), struct{}{}) {
		l.words++
	}
}

// Contains reports whether word is in the list. Empty strings are never words.
func (l *Lexicon) Contains(word string) bool {
	if word == "" {
		return false
	}
	return l.trie.Match(patricia.Prefix(strings.ToLower(word)))
}

// Size returns the number of distinct words loaded.
func (l *Lexicon) Size() int {
	return l.words
}

// Load reads a plain-text word list, one word per line. Lines starting with
// '#' are skipped. Lines of the form "word<TAB>freq" are accepted too; only
// the word column matters for membership.
func (l *Lexicon) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.IndexAny(line, " \t"); idx > 0 {
			line = line[:idx]
		}
		l.Add(line)
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read word list: %w", err)
	}
	log.Debugf("Loaded %d word list lines from %s (%d distinct)", lines, path, l.words)
	return nil
}
