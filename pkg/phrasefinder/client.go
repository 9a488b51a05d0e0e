// Package phrasefinder is a minimal client for the PhraseFinder n-gram
// search API. It builds wildcard queries around an anchor word and decodes
// the phrase records the API returns. One GET per lookup, no retries.
package phrasefinder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.phrasefinder.io/search"

// DefaultCorpus is the Google Books corpus queried unless configured otherwise.
const DefaultCorpus = "eng-gb"

// Token is a single token of a matched phrase.
type Token struct {
	Text string `json:"tt"`
	Tag  int    `json:"tg"`
}

// Phrase is one n-gram record: its tokens in order, a relevance score and
// the corpus match count.
type Phrase struct {
	Tokens     []Token `json:"tks"`
	Score      float64 `json:"sc"`
	MatchCount float64 `json:"mc"`
}

type searchResponse struct {
	Phrases []Phrase `json:"phrases"`
}

// Client talks to the PhraseFinder search endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	corpus     string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithCorpus selects a different PhraseFinder corpus.
func WithCorpus(corpus string) Option {
	return func(c *Client) {
		c.corpus = corpus
	}
}

// WithTimeout sets the HTTP client timeout. The zero default keeps the
// net/http behavior of waiting indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a PhraseFinder client with the given options applied.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		corpus:     DefaultCorpus,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Corpus returns the corpus identifier the client queries.
func (c *Client) Corpus() string {
	return c.corpus
}

// Search issues one GET for the pattern built from word, pos and numWords
// and returns the decoded phrase records. Transport failures, non-200
// statuses and undecodable bodies all surface as errors; the caller decides
// whether a failed lookup should be treated like an empty one.
func (c *Client) Search(ctx context.Context, word string, pos Position, numWords int) ([]Phrase, error) {
	pattern := BuildPattern(word, pos, numWords)
	u := c.baseURL + "?" + BuildQuery(c.corpus, pattern)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", pattern, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search %q: unexpected status %d", pattern, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return body.Phrases, nil
}
