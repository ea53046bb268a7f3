package trie

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrieRoundTrip(t *testing.T) {
	words := []string{"cat", "cats", "car", "bar", "a", "plan", "pan", "pla", "plat", "über"}
	tr := New()
	for _, w := range words {
		require.NoError(t, tr.Insert(w))
	}
	assert.Equal(t, len(words), tr.Len())

	for _, w := range words {
		n := tr.Search(w)
		require.NotNil(t, n, w)
		assert.True(t, n.IsWord(), w)
		assert.Equal(t, utf8.RuneCountInString(w), n.WordLen(), w)
	}

	tests := []struct {
		word   string
		exists bool
	}{
		{"ca", true},
		{"pl", true},
		{"b", true},
		{"ba", true},
		{"catz", false},
		{"dog", false},
		{"cab", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			n := tr.Search(tt.word)
			if !tt.exists {
				assert.Nil(t, n)
				return
			}
			require.NotNil(t, n)
			assert.False(t, n.IsWord())
			assert.Zero(t, n.WordLen())
		})
	}
}

func TestTrieCaseInsensitive(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("Hello"))
	assert.NotNil(t, tr.Search("hello"))
	assert.NotNil(t, tr.Search("HELLO"))

	require.NoError(t, tr.Insert("HELLO"))
	assert.Equal(t, 1, tr.Len())
}

func TestTrieEmptyWord(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert(""))
	assert.Zero(t, tr.Len())
	assert.Same(t, tr.Root(), tr.Search(""))
	assert.False(t, tr.Root().IsWord())
}

func TestTrieImportance(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("cats"))
	require.NoError(t, tr.Insert("cat"))

	for i := 0; i < 5; i++ {
		assert.True(t, tr.IncrementImportance("Cats"))
	}
	assert.True(t, tr.IncrementImportance("cat"))
	assert.False(t, tr.IncrementImportance("ca"), "prefix nodes are not words")
	assert.False(t, tr.IncrementImportance("dog"))

	assert.Equal(t, 5, tr.Importance("cats"))
	assert.Equal(t, 1, tr.Importance("CAT"))
	assert.Equal(t, 0, tr.Importance("ca"))
	assert.Equal(t, 0, tr.Importance("dog"))
}

func TestTrieFanoutExhausted(t *testing.T) {
	tr := New()
	// caseless runes so every key stays distinct after lowercasing
	for i := 0; i < 29; i++ {
		require.NoError(t, tr.Insert(string(rune(0x4e00+i))))
	}
	assert.Equal(t, 29, tr.Root().Children().Cap())

	err := tr.Insert(string(rune(0x4e00+40)) + "x")
	assert.True(t, errors.Is(err, ErrFanoutExhausted))
	assert.Equal(t, 29, tr.Len())
}

func TestTrieStats(t *testing.T) {
	tr := New()
	for _, w := range []string{"cat", "cats", "car", "bar"} {
		require.NoError(t, tr.Insert(w))
	}
	st := tr.Stats()
	assert.Equal(t, 4, st.Words)
	// root, c, ca, cat, cats, car, b, ba, bar
	assert.Equal(t, 9, st.Nodes)
	assert.Equal(t, 2, st.MaxFanout)
	assert.Equal(t, 5, st.MaxCapacity)
}
