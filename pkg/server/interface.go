/*
Package server implements msgpack IPC for word suggestion services.

Clients write msgpack encoded requests to stdin and read msgpack encoded
responses from stdout, one response per request, in order. The first message
the server writes is a readiness notice:

	{"st": "ready"}

# Suggest

	{"id": "req_001", "a": "suggest", "w": "cat", "k": 3}

Suggestions are ranked by importance, rank 1 first:

	{"id": "req_001", "s": [{"w": "cats", "i": 5, "r": 1}, {"w": "car", "i": 0, "r": 2}], "c": 2, "t": 145, "st": "ok"}

When nothing matched, "s" is empty and "st" is "none".

# Stats and health

	{"id": "s1", "a": "stats"}
	{"id": "h1", "a": "health"}

Failures come back as {"id": ..., "e": message, "c": code}.
*/
package server

// Actions understood by the server.
const (
	ActionSuggest = "suggest"
	ActionStats   = "stats"
	ActionHealth  = "health"
)

// Status values of a response.
const (
	StatusReady = "ready"
	StatusOK    = "ok"
	StatusNone  = "none"
)

// Request is any client message. Word and K only matter for suggest.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Word   string `msgpack:"w,omitempty"`
	K      *int   `msgpack:"k,omitempty"`
}

// SuggestionItem - one ranked word
type SuggestionItem struct {
	Word       string `msgpack:"w"`
	Importance int    `msgpack:"i"`
	Rank       uint16 `msgpack:"r"`
}

// SuggestResponse - suggestion response, TimeTaken in microseconds
type SuggestResponse struct {
	ID          string           `msgpack:"id"`
	Suggestions []SuggestionItem `msgpack:"s"`
	Count       int              `msgpack:"c"`
	TimeTaken   int64            `msgpack:"t"`
	Status      string           `msgpack:"st"`
}

// StatsResponse - dictionary shape
type StatsResponse struct {
	ID              string `msgpack:"id"`
	Status          string `msgpack:"st"`
	Words           int    `msgpack:"words"`
	Nodes           int    `msgpack:"nodes"`
	MaxFanout       int    `msgpack:"fanout"`
	MaxCapacity     int    `msgpack:"cap"`
	MaxDisplacement int    `msgpack:"disp"`
}

// StatusResponse - readiness and health
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"st"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
