/*
Package main implements the phrasegap guessing CLI and IPC [DBG] application.

phrasegap guesses the words that plausibly fill a blank before or after a
given word, using Google Books n-gram statistics served by the PhraseFinder
API. Candidates are filtered against an English word list, collapsed to
their base form, and ranked by their share of the total match count. Common
function words are marked STOPWORD in the output.

# Usage

Run the interactive prompt:

	phrasegap

The prompt asks for the anchor word, whether the blank sits before or after
it (B/A), and how many blank words to search for:

	Please input word: coffee
	Type B for before word, or A for after: b
	How many words in brackets: 1
	  black 27.41%
	  of 22.93% STOPWORD
	  hot 11.09%

Without -words (or a words_file in config) a builtin common-word list is
used, so the tool works out of the box; a full word list gives far better
coverage:

	phrasegap -words /path/to/words.txt -d

# Configuration

Runtime configuration is managed through a TOML file that supports API,
filter, lexicon and CLI settings:

	[api]
	base_url = "https://api.phrasefinder.io/search"
	corpus = "eng-gb"
	timeout_ms = 0

	[filter]
	min_score = 0.001
	word_check = true

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

With -ipc the program speaks msgpack over stdin/stdout so editors and other
tools can request gap guesses programmatically:

	{"id": "req_001", "w": "coffee", "pos": "b", "n": 1, "l": 10}

Responses carry the ranked candidates with percentages and stopword flags,
plus per-request timing. A "health" command answers with a status frame.
See the server package for the frame layout.

# Logging

Transport and parse failures from the PhraseFinder lookup are written to a
file sink (debug.log by default) at debug verbosity, keeping the console
output limited to prompts and results.

# Command Line Flags

	-version
	    Show current version
	-d  Enable debug mode with detailed logging on stderr
	-config string
	    Custom config file path
	-words string
	    Plain-text word list file, one word per line
	-corpus string
	    PhraseFinder corpus identifier (default from config)
	-n int
	    Wildcard count used when the prompt is left empty
	    (default from config)
	-limit int
	    Truncate the printed list (0 for all results)
	-ipc
	    Run the msgpack IPC server instead of the interactive prompt
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/phrasegap/internal/cli"
	"github.com/bastiangx/phrasegap/internal/logger"
	"github.com/bastiangx/phrasegap/pkg/config"
	"github.com/bastiangx/phrasegap/pkg/guess"
	"github.com/bastiangx/phrasegap/pkg/lexicon"
	"github.com/bastiangx/phrasegap/pkg/phrasefinder"
	"github.com/bastiangx/phrasegap/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "phrasegap"
	gh      = "https://github.com/bastiangx/phrasegap"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, lexicon and client together and hands off to the
// interactive prompt or the IPC server. No pipeline logic lives here.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Custom config file path")
	wordsFile := flag.String("words", "", "Plain-text word list file (one word per line)")
	corpus := flag.String("corpus", "", "PhraseFinder corpus identifier")
	numWords := flag.Int("n", 0, "Wildcard count used when the prompt is left empty")
	limit := flag.Int("limit", 0, "Truncate the printed list (0 for all results)")
	ipcMode := flag.Bool("ipc", false, "Run the msgpack IPC server instead of the interactive prompt")

	flag.Parse()

	if *showVersion {
		vlog := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ phrasegap ] Guesses the words around yours!")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	// All pipeline diagnostics go to the file sink; the console stays
	// reserved for prompts and results.
	if !*debugMode && appConfig.Log.File != "" {
		f, err := logger.SetupFile(appConfig.Log.File)
		if err != nil {
			log.Warnf("Cannot open log file %s: %v", appConfig.Log.File, err)
		} else {
			defer f.Close()
		}
	}

	path := *wordsFile
	if path == "" {
		path = appConfig.Lexicon.WordsFile
	}
	var words *lexicon.Lexicon
	if path != "" {
		words = lexicon.NewLexicon()
		if err := words.Load(path); err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		log.Debugf("Word list ready: %d words", words.Size())
	} else {
		words = lexicon.Builtin()
		log.Debugf("No word list specified, using the builtin set (%d words)", words.Size())
	}

	apiCorpus := appConfig.API.Corpus
	if *corpus != "" {
		apiCorpus = *corpus
	}
	finder := phrasefinder.NewClient(
		phrasefinder.WithBaseURL(appConfig.API.BaseURL),
		phrasefinder.WithCorpus(apiCorpus),
		phrasefinder.WithTimeout(time.Duration(appConfig.API.TimeoutMS)*time.Millisecond),
	)

	guesser := guess.NewGuesser(
		finder,
		words,
		lexicon.EnglishStopwords(),
		lexicon.NewLemmatizer(),
		guess.Options{
			MinScore:  appConfig.Filter.MinScore,
			WordCheck: appConfig.Filter.WordCheck,
		},
	)

	ctx := context.Background()

	defaultNum := appConfig.CLI.DefaultNumWords
	if *numWords > 0 {
		defaultNum = *numWords
	}

	if *ipcMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(guesser, defaultNum)
		if err := srv.Start(ctx); err != nil {
			log.Fatalf("IPC server error: %v", err)
		}
		return
	}

	printLimit := *limit
	if printLimit == 0 {
		printLimit = appConfig.CLI.DefaultLimit
	}
	handler := cli.NewInputHandler(guesser, printLimit, defaultNum)
	if _, err := handler.Run(ctx); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}
