// Package cli handles the interactive prompt loop for guessing gap words
// around an anchor word.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/phrasegap/pkg/guess"
	"github.com/bastiangx/phrasegap/pkg/phrasefinder"
	"github.com/charmbracelet/log"
)

// InputHandler collects the anchor word, position and wildcard count from
// the user, runs the pipeline and prints the ranked results.
type InputHandler struct {
	guesser  *guess.Guesser
	limit    int
	numWords int
	in       *bufio.Reader
	out      io.Writer
}

// NewInputHandler creates a handler reading from stdin and writing to
// stdout. limit truncates the printed list when positive; numWords is the
// wildcard count used when the count prompt is left empty.
func NewInputHandler(guesser *guess.Guesser, limit, numWords int) *InputHandler {
	return &InputHandler{
		guesser:  guesser,
		limit:    limit,
		numWords: numWords,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// NewInputHandlerIO is NewInputHandler with explicit streams, for tests.
func NewInputHandlerIO(guesser *guess.Guesser, limit, numWords int, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		guesser:  guesser,
		limit:    limit,
		numWords: numWords,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

func (h *InputHandler) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptWord asks for the anchor word. No validation beyond trimming.
func (h *InputHandler) PromptWord() (string, error) {
	fmt.Fprint(h.out, "Please input word: ")
	return h.readLine()
}

// PromptPosition asks for the B/A selector and reprompts until it gets one.
// Case-insensitive; the loop has no retry cap.
func (h *InputHandler) PromptPosition() (phrasefinder.Position, error) {
	for {
		fmt.Fprint(h.out, "Type B for before word, or A for after: ")
		ch, err := h.readLine()
		if err != nil {
			return "", err
		}
		if pos, ok := phrasefinder.ParsePosition(ch); ok {
			return pos, nil
		}
		fmt.Fprintln(h.out, "Invalid character, please try again: ")
	}
}

// PromptNumWords asks for the wildcard count. An empty line takes the
// configured default; non-numeric input is an error the caller treats as
// fatal.
func (h *InputHandler) PromptNumWords() (int, error) {
	fmt.Fprint(h.out, "How many words in brackets: ")
	line, err := h.readLine()
	if err != nil {
		return 0, err
	}
	if line == "" {
		if h.numWords > 0 {
			return h.numWords, nil
		}
		return 1, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("wildcard count %q: %w", line, err)
	}
	return n, nil
}

// Run executes one interactive round: prompt, look up, print. A failed
// lookup is logged and degrades to an empty result list; the prompts and
// the printed output are the only console traffic.
func (h *InputHandler) Run(ctx context.Context) ([]guess.Result, error) {
	word, err := h.PromptWord()
	if err != nil {
		return nil, err
	}
	pos, err := h.PromptPosition()
	if err != nil {
		return nil, err
	}
	numWords, err := h.PromptNumWords()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := h.guesser.Run(ctx, word, pos, numWords)
	if err != nil {
		log.Errorf("Lookup failed: %v", err)
		results = nil
	}
	log.Debugf("Took [ %v ] for word %q", time.Since(start), word)

	h.Print(results)
	return results, nil
}

// Print writes one line per result: two-decimal percentage, STOPWORD
// suffix only for stopword candidates.
func (h *InputHandler) Print(results []guess.Result) {
	if h.limit > 0 && len(results) > h.limit {
		results = results[:h.limit]
	}
	for _, r := range results {
		suffix := ""
		if !r.ContentWord {
			suffix = " STOPWORD"
		}
		fmt.Fprintf(h.out, "  %s %.2f%%%s\n", r.Text, r.Percent, suffix)
	}
}
