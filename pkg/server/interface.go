/*
Package server implements msgpack IPC for gap-word guessing.

The server reads binary msgpack frames from stdin and writes responses to
stdout, one frame per request, processed synchronously with timing info
included in responses. This lets editors and other tools ask for gap
guesses without going through the interactive prompts.

A guess request:

	{"id": "req_001", "w": "coffee", "pos": "b", "n": 1, "l": 10}

The response carries the ranked candidates with their share of the total
match count and the stopword flag:

	{"id": "req_001", "r": [{"t": "black", "p": 62.11, "s": false}], "c": 1, "t": 145}

Failures come back as an error frame with the request ID attached:

	{"id": "req_001", "e": "lookup failed", "c": 502}

A frame with "cmd" set to "health" skips the pipeline and answers with a
status frame, the same shape as the ready frame sent on startup:

	{"status": "ok"}
*/
package server

// GuessRequest - gap guess request
type GuessRequest struct {
	ID       string `msgpack:"id"`
	Command  string `msgpack:"cmd,omitempty"` // "guess" (default) or "health"
	Word     string `msgpack:"w"`
	Position string `msgpack:"pos,omitempty"` // "b" (default) or "a"
	NumWords int    `msgpack:"n,omitempty"`   // wildcard count, server default when omitted
	Limit    int    `msgpack:"l,omitempty"`
}

// GuessResult - one ranked candidate
type GuessResult struct {
	Text     string  `msgpack:"t"`
	Percent  float64 `msgpack:"p"`
	Stopword bool    `msgpack:"s"`
}

// GuessResponse - guess response
type GuessResponse struct {
	ID        string        `msgpack:"id"`
	Results   []GuessResult `msgpack:"r"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// GuessError holds basic error information for guess requests
type GuessError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// StatusResponse signals readiness after startup and answers health checks
type StatusResponse struct {
	Status string `msgpack:"status"`
}
