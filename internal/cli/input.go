// Package cli handles cmd line input and suggestions for interactive use and debugging
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	strategyStyle = lipgloss.NewStyle().Faint(true)
)

// WordLister lists dictionary words by prefix, see dictionary.Loader.
type WordLister interface {
	Words(prefix string, limit int) []string
}

// InputHandler reads `word [k]` lines and prints ranked suggestions.
// Lines starting with ':' are commands (:words, :stats, :quit).
type InputHandler struct {
	suggester    suggest.ISuggester
	words        WordLister
	config       *config.Config
	in           io.Reader
	out          *log.Logger
	requestCount int
}

// NewInputHandler creates a handler on stdin/stdout.
func NewInputHandler(suggester suggest.ISuggester, cfg *config.Config) *InputHandler {
	return NewInputHandlerWithIO(suggester, cfg, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler reading from in and printing to out.
func NewInputHandlerWithIO(suggester suggest.ISuggester, cfg *config.Config, in io.Reader, out io.Writer) *InputHandler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &InputHandler{
		suggester: suggester,
		config:    cfg,
		in:        in,
		out:       logger.NewWithWriter(out, ""),
	}
}

// SetWordLister enables the :words command.
func (h *InputHandler) SetWordLister(words WordLister) {
	h.words = words
}

// Start begins the interface loop. It returns nil once the input ends or
// :quit is entered.
func (h *InputHandler) Start() error {
	h.out.Print("wordrank CLI")
	h.out.Print("type a word and an optional count, e.g. `cat 5` (Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.in)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			return nil
		}
		h.handleInput(line)
	}
}

// handleInput processes a single line.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if strings.HasPrefix(line, ":") {
		h.handleCommand(line)
		return
	}

	word, k, err := h.parseQuery(line)
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	h.Query(word, k)
}

// Query runs one suggestion request and prints the outcome.
func (h *InputHandler) Query(word string, k int) {
	start := time.Now()
	res := h.suggester.Suggest(word, k)
	log.Debugf("Took [ %v ] for '%s' k=%d", time.Since(start), word, k)

	if !res.Found() {
		h.out.Printf("No suggestions found for '%s'", word)
		return
	}

	h.out.Printf("Found %d suggestions for '%s':", len(res.Suggestions), word)
	for i, s := range res.Suggestions {
		line := fmt.Sprintf("%2d. %-24s", i+1, wordStyle.Render(s.Word))
		if h.config.CLI.ShowImportance {
			line += fmt.Sprintf(" (importance: %8s)", utils.FormatWithCommas(s.Importance))
		}
		if h.config.CLI.ShowStrategy {
			line += " " + strategyStyle.Render("["+s.Strategy.String()+"]")
		}
		h.out.Print(line)
	}
}

func (h *InputHandler) handleCommand(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":stats":
		st := h.suggester.Stats()
		h.out.Print("dictionary",
			"words", st["words"],
			"nodes", st["nodes"],
			"maxFanout", st["maxFanout"],
			"maxCapacity", st["maxCapacity"],
			"maxDisplacement", st["maxDisplacement"])
	case ":words":
		if h.words == nil {
			log.Warn("No dictionary vocabulary loaded")
			return
		}
		prefix := ""
		if len(fields) > 1 {
			prefix = fields[1]
		}
		words := h.words.Words(prefix, h.config.Engine.MaxK)
		if len(words) == 0 {
			h.out.Printf("No dictionary words start with '%s'", prefix)
			return
		}
		h.out.Print(strings.Join(words, " "))
	default:
		log.Errorf("Unknown command: %s", fields[0])
	}
}

// parseQuery splits `word [k]` and validates both parts.
func (h *InputHandler) parseQuery(line string) (string, int, error) {
	fields := strings.Fields(line)
	if len(fields) > 2 {
		return "", 0, errors.New("expected `word [k]`")
	}

	k := h.config.Engine.DefaultK
	if len(fields) == 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return "", 0, fmt.Errorf("invalid count %q: %w", fields[1], err)
		}
		k = n
	}
	if err := ValidateQuery(fields[0], k, h.config); err != nil {
		return "", 0, err
	}
	return fields[0], k, nil
}

// ValidateQuery checks a word and count against the engine limits of cfg.
func ValidateQuery(word string, k int, cfg *config.Config) error {
	if len([]rune(word)) > cfg.Engine.MaxWordLen {
		return fmt.Errorf("word too long: %s", word)
	}
	if !utils.IsValidInput(word) {
		return fmt.Errorf("word must contain letters only: %q", word)
	}
	if k < 0 || k > cfg.Engine.MaxK {
		return fmt.Errorf("count must be between 0 and %d", cfg.Engine.MaxK)
	}
	return nil
}
