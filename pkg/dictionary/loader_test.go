package dictionary

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordrank/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestCleanDictionaryToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cat", "cat"},
		{"Cat,", "Cat"},
		{"don't", "dont"},
		{"e-mail", "email"},
		{"123", ""},
		{"(über)", "über"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanDictionaryToken(tt.in), tt.in)
	}
}

func TestCleanCorpusToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cat", "cat"},
		{"cat.", "cat"},
		{"\"cat,\"", "cat"},
		{"(Cats)!", "Cats"},
		{"don't", ""},
		{"e-mail", ""},
		{"...", ""},
		{"42", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanCorpusToken(tt.in), tt.in)
	}
}

func TestReadDictionaryAndCorpus(t *testing.T) {
	tr := trie.New()
	l := NewLoader(tr)

	st, err := l.ReadDictionary(strings.NewReader("Cat cats, car\nbar 42 bar\n"))
	require.NoError(t, err)
	assert.Equal(t, LoadStats{Tokens: 6, Accepted: 5, Skipped: 1}, st)
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, []string{"bar", "car", "cat", "cats"}, l.Words("", 0))

	st, err = l.ReadCorpus(strings.NewReader("The cats sat. Cats! cats, (cats) and a cat-like car; dog"))
	require.NoError(t, err)
	assert.Equal(t, 11, st.Tokens)
	assert.Equal(t, 5, st.Accepted)
	assert.Equal(t, 4, tr.Importance("cats"))
	assert.Equal(t, 1, tr.Importance("car"))
	assert.Equal(t, 0, tr.Importance("cat"))
}

func TestWordsListsVocabularyInOrder(t *testing.T) {
	l := NewLoader(trie.New())
	_, err := l.ReadDictionary(strings.NewReader("plan pan pla plat plant apple"))
	require.NoError(t, err)

	assert.Equal(t, []string{"pan", "pla", "plan", "plant", "plat"}, l.Words("p", 0))
	assert.Equal(t, []string{"pla", "plan"}, l.Words("pla", 2))
	assert.Empty(t, l.Words("x", 0))
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(dictPath, []byte("alpha beta gamma\n"), 0644))

	corpusPath := filepath.Join(dir, "corpus.txt.gz")
	f, err := os.Create(corpusPath)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("beta beta alpha. delta"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	tr := trie.New()
	l := NewLoader(tr)

	st, err := l.LoadDictionary(dictPath)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Accepted)

	st, err = l.LoadCorpus(corpusPath)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Accepted)
	assert.Equal(t, 2, tr.Importance("beta"))
	assert.Equal(t, 1, tr.Importance("alpha"))
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	l := NewLoader(trie.New())
	_, err := l.LoadDictionary(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = l.LoadDictionary(empty)
	assert.Error(t, err)

	_, err = l.LoadCorpus(dir)
	assert.Error(t, err)
}

func TestDetectFileFormat(t *testing.T) {
	assert.Equal(t, FormatGzip, DetectFileFormat("words.TXT.GZ"))
	assert.Equal(t, FormatText, DetectFileFormat("words.txt"))
	assert.Equal(t, FormatText, DetectFileFormat("words"))
}
