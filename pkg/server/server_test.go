package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/suggest"
	"github.com/bastiangx/wordrank/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func intPtr(n int) *int { return &n }

func newTestEngine(t *testing.T) *suggest.Engine {
	t.Helper()
	tr := trie.New()
	for _, w := range []string{"cat", "cats", "car", "bar"} {
		require.NoError(t, tr.Insert(w))
	}
	for i := 0; i < 5; i++ {
		tr.IncrementImportance("cats")
	}
	tr.IncrementImportance("car")
	return suggest.NewEngine(tr)
}

// serve runs the server over the encoded requests and returns a decoder for
// the responses, positioned after the ready notice.
func serve(t *testing.T, requests ...Request) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := NewServerWithIO(newTestEngine(t), config.DefaultConfig(), &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, StatusReady, ready.Status)
	return dec
}

func TestServerSuggest(t *testing.T) {
	dec := serve(t, Request{ID: "r1", Action: ActionSuggest, Word: "cat", K: intPtr(2)})

	var resp SuggestResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, StatusOK, resp.Status)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, SuggestionItem{Word: "cats", Importance: 5, Rank: 1}, resp.Suggestions[0])
	assert.Equal(t, SuggestionItem{Word: "car", Importance: 1, Rank: 2}, resp.Suggestions[1])
}

func TestServerSuggestDefaultK(t *testing.T) {
	dec := serve(t, Request{ID: "r1", Action: ActionSuggest, Word: "cat"})

	var resp SuggestResponse
	require.NoError(t, dec.Decode(&resp))
	// default k is 5 and only four words exist
	assert.Equal(t, 4, resp.Count)
}

func TestServerNoSuggestions(t *testing.T) {
	dec := serve(t,
		Request{ID: "n1", Action: ActionSuggest, Word: "xyz", K: intPtr(3)},
		Request{ID: "n2", Action: ActionSuggest, Word: "cat", K: intPtr(0)},
	)

	for _, id := range []string{"n1", "n2"} {
		var resp SuggestResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, StatusNone, resp.Status)
		assert.Zero(t, resp.Count)
		assert.Empty(t, resp.Suggestions)
	}
}

func TestServerRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"missing word", Request{ID: "e1", Action: ActionSuggest}},
		{"digits", Request{ID: "e2", Action: ActionSuggest, Word: "c4t"}},
		{"negative k", Request{ID: "e3", Action: ActionSuggest, Word: "cat", K: intPtr(-1)}},
		{"k too large", Request{ID: "e4", Action: ActionSuggest, Word: "cat", K: intPtr(65)}},
		{"unknown action", Request{ID: "e5", Action: "complete"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := serve(t, tt.req)
			var resp ErrorResponse
			require.NoError(t, dec.Decode(&resp))
			assert.Equal(t, tt.req.ID, resp.ID)
			assert.Equal(t, 400, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestServerStatsAndHealth(t *testing.T) {
	dec := serve(t,
		Request{ID: "s1", Action: ActionStats},
		Request{ID: "h1", Action: ActionHealth},
	)

	var stats StatsResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, "s1", stats.ID)
	assert.Equal(t, 4, stats.Words)
	assert.Equal(t, 9, stats.Nodes)
	assert.Equal(t, 5, stats.MaxCapacity)

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, StatusResponse{ID: "h1", Status: StatusOK}, health)
}
