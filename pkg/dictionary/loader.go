// Package dictionary reads word lists and corpus text into the trie.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// maxTokenSize bounds a single whitespace separated token.
const maxTokenSize = 1024 * 1024

// LoadStats counts what happened to the tokens of one file.
type LoadStats struct {
	Tokens   int
	Accepted int
	Skipped  int
}

// Loader feeds dictionary and corpus files into a trie. It also keeps the
// dictionary vocabulary in a patricia trie for ordered prefix listings,
// which the hash-ordered word trie cannot give.
type Loader struct {
	trie  *trie.Trie
	vocab *patricia.Trie
	log   *log.Logger
}

// NewLoader creates a loader writing into t.
func NewLoader(t *trie.Trie) *Loader {
	return &Loader{
		trie:  t,
		vocab: patricia.NewTrie(),
		log:   logger.New("dict"),
	}
}

// LoadDictionary reads a dictionary file and inserts every cleaned token.
func (l *Loader) LoadDictionary(filename string) (LoadStats, error) {
	file, err := openWordFile(filename)
	if err != nil {
		return LoadStats{}, err
	}
	defer file.Close()

	st, err := l.ReadDictionary(file)
	if err != nil {
		return st, fmt.Errorf("failed to load dictionary %s: %w", filename, err)
	}
	l.log.Debugf("Loaded dictionary %s: %d tokens, %d words, %d skipped", filename, st.Tokens, st.Accepted, st.Skipped)
	return st, nil
}

// ReadDictionary inserts every token of r that still has letters after cleaning.
func (l *Loader) ReadDictionary(r io.Reader) (LoadStats, error) {
	var st LoadStats
	err := scanTokens(r, func(token string) {
		st.Tokens++
		word := strings.ToLower(CleanDictionaryToken(token))
		if word == "" {
			st.Skipped++
			return
		}
		if err := l.trie.Insert(word); err != nil {
			l.log.Warnf("Skipping dictionary word: %v", err)
			st.Skipped++
			return
		}
		l.addVocab(word)
		st.Accepted++
	})
	return st, err
}

// LoadCorpus reads a corpus file and counts every token found in the dictionary.
func (l *Loader) LoadCorpus(filename string) (LoadStats, error) {
	file, err := openWordFile(filename)
	if err != nil {
		return LoadStats{}, err
	}
	defer file.Close()

	st, err := l.ReadCorpus(file)
	if err != nil {
		return st, fmt.Errorf("failed to score corpus %s: %w", filename, err)
	}
	l.log.Debugf("Scored corpus %s: %d tokens, %d matched, %d skipped", filename, st.Tokens, st.Accepted, st.Skipped)
	return st, nil
}

// ReadCorpus bumps the importance of every cleaned token of r that is a dictionary word.
func (l *Loader) ReadCorpus(r io.Reader) (LoadStats, error) {
	var st LoadStats
	err := scanTokens(r, func(token string) {
		st.Tokens++
		word := CleanCorpusToken(token)
		if word == "" || !l.trie.IncrementImportance(word) {
			st.Skipped++
			return
		}
		st.Accepted++
	})
	return st, err
}

// Words lists dictionary words starting with prefix in lexicographic order,
// at most limit of them when limit > 0.
func (l *Loader) Words(prefix string, limit int) []string {
	var words []string
	err := l.vocab.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		l.log.Errorf("Error visiting vocabulary: %v", err)
		return nil
	}
	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

func (l *Loader) addVocab(word string) {
	l.vocab.Insert(patricia.Prefix(word), true)
}

func scanTokens(r io.Reader, fn func(token string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}
