package lexicon

import (
	_ "embed"
	"strings"
)

//go:embed words_builtin.txt
var builtinWords string

// Builtin returns a lexicon seeded with the embedded common-word list,
// one word per line. It keeps the pipeline usable out of the box when no
// word list file is configured; a real list via Load gives far better
// coverage.
func Builtin() *Lexicon {
	l := NewLexicon()
	for _, line := range strings.Split(builtinWords, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		l.Add(line)
	}
	return l
}
