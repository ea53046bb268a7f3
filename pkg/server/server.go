package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for suggestions. Requests are served one at a
// time on the calling goroutine.
type Server struct {
	suggester suggest.ISuggester
	config    *config.Config
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
	log       *log.Logger
	requests  int
}

// NewServer creates a server on stdin/stdout.
func NewServer(suggester suggest.ISuggester, cfg *config.Config) *Server {
	return NewServerWithIO(suggester, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
func NewServerWithIO(suggester suggest.ISuggester, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		suggester: suggester,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
		log:       logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
// A clean EOF returns nil.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	if err := s.send(StatusResponse{Status: StatusReady}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Client closed input after %d requests", s.requests)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.requests++
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the action. Only write failures are returned.
func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case ActionSuggest:
		return s.handleSuggest(req)
	case ActionStats:
		return s.handleStats(req)
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: StatusOK})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), 400)
	}
}

func (s *Server) handleSuggest(req Request) error {
	word := req.Word
	engine := s.config.Engine

	if word == "" {
		return s.sendError(req.ID, "missing 'w' parameter", 400)
	}
	if len([]rune(word)) > engine.MaxWordLen {
		return s.sendError(req.ID, fmt.Sprintf("word exceeds maximum length of %d characters", engine.MaxWordLen), 400)
	}
	if !utils.IsValidInput(word) {
		return s.sendError(req.ID, "word must contain letters only", 400)
	}

	k := engine.DefaultK
	if req.K != nil {
		k = *req.K
	}
	if k < 0 || k > engine.MaxK {
		return s.sendError(req.ID, fmt.Sprintf("k must be between 0 and %d", engine.MaxK), 400)
	}

	start := time.Now()
	res := s.suggester.Suggest(word, k)
	elapsed := time.Since(start)

	items := make([]SuggestionItem, len(res.Suggestions))
	for i, sg := range res.Suggestions {
		items[i] = SuggestionItem{
			Word:       sg.Word,
			Importance: sg.Importance,
			Rank:       uint16(i + 1),
		}
	}

	status := StatusOK
	if !res.Found() {
		status = StatusNone
	}
	s.log.Debugf("Suggest '%s' k=%d: %d results in %v", word, k, len(items), elapsed)

	return s.send(SuggestResponse{
		ID:          req.ID,
		Suggestions: items,
		Count:       len(items),
		TimeTaken:   elapsed.Microseconds(),
		Status:      status,
	})
}

func (s *Server) handleStats(req Request) error {
	st := s.suggester.Stats()
	return s.send(StatsResponse{
		ID:              req.ID,
		Status:          StatusOK,
		Words:           st["words"],
		Nodes:           st["nodes"],
		MaxFanout:       st["maxFanout"],
		MaxCapacity:     st["maxCapacity"],
		MaxDisplacement: st["maxDisplacement"],
	})
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	s.log.Debugf("Request %s failed: %s", id, message)
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
