package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/phrasegap/pkg/guess"
	"github.com/bastiangx/phrasegap/pkg/phrasefinder"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for gap guesses
type Server struct {
	guesser  *guess.Guesser
	numWords int
	dec      *msgpack.Decoder
	enc      *msgpack.Encoder
}

// NewServer creates a guess server using stdin/stdout for IPC. numWords is
// the wildcard count applied to requests that omit 'n'.
func NewServer(guesser *guess.Guesser, numWords int) *Server {
	return NewServerIO(guesser, numWords, os.Stdin, os.Stdout)
}

// NewServerIO is NewServer with explicit streams, for tests.
func NewServerIO(guesser *guess.Guesser, numWords int, in io.Reader, out io.Writer) *Server {
	if numWords < 1 {
		numWords = 1
	}
	return &Server{
		guesser:  guesser,
		numWords: numWords,
		dec:      msgpack.NewDecoder(in),
		enc:      msgpack.NewEncoder(out),
	}
}

// Start begins listening for IPC requests. Returns nil on EOF.
func (s *Server) Start(ctx context.Context) error {
	log.Debug("Starting server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req GuessRequest
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}

		switch req.Command {
		case "", "guess":
			s.handle(ctx, req)
		case "health":
			s.send(StatusResponse{Status: "ok"})
		default:
			s.sendError(req.ID, fmt.Sprintf("Unknown command: %s", req.Command), 400)
		}
	}
}

// handle processes one guess request and writes the response frame.
func (s *Server) handle(ctx context.Context, req GuessRequest) {
	if req.Word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		return
	}

	pos := phrasefinder.Before
	if req.Position != "" {
		parsed, ok := phrasefinder.ParsePosition(req.Position)
		if !ok {
			s.sendError(req.ID, "Position must be 'b' or 'a'", 400)
			return
		}
		pos = parsed
	}

	numWords := req.NumWords
	if numWords < 1 {
		numWords = s.numWords
	}

	start := time.Now()
	results, err := s.guesser.Run(ctx, req.Word, pos, numWords)
	elapsed := time.Since(start)
	if err != nil {
		log.Errorf("Lookup failed: %v", err)
		s.sendError(req.ID, "lookup failed", 502)
		return
	}

	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}

	frame := make([]GuessResult, len(results))
	for i, r := range results {
		frame[i] = GuessResult{
			Text:     r.Text,
			Percent:  r.Percent,
			Stopword: !r.ContentWord,
		}
	}

	s.send(GuessResponse{
		ID:        req.ID,
		Results:   frame,
		Count:     len(frame),
		TimeTaken: elapsed.Milliseconds(),
	})
}

// send marshals the response into a msgpack frame on stdout.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error frame
func (s *Server) sendError(id, message string, code int) {
	s.send(GuessError{ID: id, Error: message, Code: code})
}
