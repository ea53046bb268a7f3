// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordrank suggestion server and CLI [DBG] application.

wordrank loads a dictionary of valid words into a character trie, raises word
importance from a training corpus, and answers "suggest up to k words for w"
queries. Candidates come from three strategies: words that extend the input,
same-length words with at most two differing letters, and words one letter
longer or shorter. The k most important candidates are returned, best first.

# Usage

Start the msgpack server with a dictionary and a corpus:

	wordrank -dict words.txt -corpus corpus.txt

Run in CLI mode for interactive testing:

	wordrank -dict words.txt -corpus corpus.txt -c

Answer a single query and exit:

	wordrank -dict words.txt -corpus corpus.txt -w cat -k 3

Both files may be plain text or gzip compressed. Relative paths are looked up
in the working directory, next to the executable, then in <config dir>/data.

# Configuration

Runtime configuration is read from a TOML file, created with defaults if it
doesn't exist:

	[engine]
	default_k = 5
	max_k = 64
	max_word_len = 60

	[dict]
	dictionary = "words.txt"
	corpus = "corpus.txt"

	[cli]
	show_importance = true
	show_strategy = false

Flags override the [dict] paths.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. A ready notice is
sent first:

	{"st": "ready"}

Send a suggestion request:

	{"id": "q1", "a": "suggest", "w": "cat", "k": 3}

Receive ranked suggestions with importance and timing in microseconds:

	{"id": "q1", "s": [{"w": "cats", "i": 5, "r": 1}], "c": 1, "t": 42, "st": "ok"}

The "stats" and "health" actions report trie shape and liveness.

# Command Line Flags

	-config string
	    Path to a custom config file
	-dict string
	    Dictionary file of valid words
	-corpus string
	    Corpus text used for importance
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-w string
	    Suggest for a single word and exit
	-k int
	    Number of suggestions for -w (default from config)
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordrank/internal/cli"
	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/dictionary"
	"github.com/bastiangx/wordrank/pkg/server"
	"github.com/bastiangx/wordrank/pkg/suggest"
	"github.com/bastiangx/wordrank/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	gh      = "https://github.com/bastiangx/wordrank"
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

// main wires config, dictionary loading and the chosen front end.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config file")
	dictFile := flag.String("dict", "", "Dictionary file of valid words (overrides config)")
	corpusFile := flag.String("corpus", "", "Corpus text used for word importance (overrides config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	word := flag.String("w", "", "Suggest for a single word and exit")
	k := flag.Int("k", -1, "Number of suggestions for -w (default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	if *dictFile != "" {
		appConfig.Dict.Dictionary = *dictFile
	}
	if *corpusFile != "" {
		appConfig.Dict.Corpus = *corpusFile
	}

	pathResolver, err := utils.NewPathResolver(config.AppName)
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	words := trie.New()
	loader := dictionary.NewLoader(words)
	if err := loadFiles(loader, pathResolver, appConfig); err != nil {
		log.Fatalf("Failed to load words: %v", err)
	}

	engine := suggest.NewEngine(words)

	if *word != "" {
		n := *k
		if n < 0 {
			n = appConfig.Engine.DefaultK
		}
		if err := cli.ValidateQuery(*word, n, appConfig); err != nil {
			log.Fatalf("Invalid query: %v", err)
		}
		handler := cli.NewInputHandler(engine, appConfig)
		handler.Query(*word, n)
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(engine, appConfig)
		handler.SetWordLister(loader)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig)
	showStartupInfo(engine)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadFiles reads the dictionary first so corpus counting sees every valid word.
func loadFiles(loader *dictionary.Loader, pr *utils.PathResolver, cfg *config.Config) error {
	if cfg.Dict.Dictionary == "" {
		log.Warn("No dictionary specified, running with empty dict...")
		return nil
	}

	dictPath, err := pr.ResolveFile(cfg.Dict.Dictionary)
	if err != nil {
		return err
	}
	stats, err := loader.LoadDictionary(dictPath)
	if err != nil {
		return err
	}
	log.Debug("dictionary loaded", "path", dictPath, "accepted", stats.Accepted, "skipped", stats.Skipped)

	if cfg.Dict.Corpus == "" {
		log.Warn("No corpus specified, every word keeps importance 0")
		return nil
	}
	corpusPath, err := pr.ResolveFile(cfg.Dict.Corpus)
	if err != nil {
		return err
	}
	stats, err = loader.LoadCorpus(corpusPath)
	if err != nil {
		return err
	}
	log.Debug("corpus loaded", "path", corpusPath, "tokens", stats.Tokens, "counted", stats.Accepted)
	return nil
}

func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ wordrank ] ranked word suggestions")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the loaded dictionary.
func showStartupInfo(engine *suggest.Engine) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	st := engine.Stats()
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words: %s  nodes: %s", utils.FormatWithCommas(st["words"]), utils.FormatWithCommas(st["nodes"]))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
