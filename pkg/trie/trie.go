// Package trie stores the dictionary as a character trie. Each node keeps its
// children in a ProbeMap, a small Robin Hood hash table keyed by the next character.
package trie

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFanoutExhausted is returned when a child map has no free slot left for a new character.
var ErrFanoutExhausted = errors.New("child map is saturated")

// Trie owns the root node and every word path below it.
type Trie struct {
	root  *Node
	words int
}

// Stats summarizes the shape of a trie.
type Stats struct {
	Words           int
	Nodes           int
	MaxFanout       int
	MaxCapacity     int
	MaxDisplacement int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Root returns the node of the empty string.
func (t *Trie) Root() *Node { return t.root }

// Len returns the number of distinct words inserted.
func (t *Trie) Len() int { return t.words }

// Insert adds the lowercased word, creating nodes along its path.
// Empty words are ignored.
func (t *Trie) Insert(word string) error {
	word = strings.ToLower(word)
	if word == "" {
		return nil
	}

	node := t.root
	length := 0
	for _, r := range word {
		child := node.children.Search(r)
		if child == nil {
			child = node.children.Insert(r)
			if child == nil {
				return fmt.Errorf("insert %q at %q: %w", word, r, ErrFanoutExhausted)
			}
		}
		node = child
		length++
	}

	if node.wordLen == 0 {
		t.words++
	}
	node.wordLen = length
	return nil
}

// Search returns the node reached by the lowercased word, or nil when the
// path breaks off. The node may be a plain prefix; check IsWord.
func (t *Trie) Search(word string) *Node {
	node := t.root
	for _, r := range strings.ToLower(word) {
		node = node.children.Search(r)
		if node == nil {
			return nil
		}
	}
	return node
}

// IncrementImportance bumps the counter of word if it is a complete word in the trie.
func (t *Trie) IncrementImportance(word string) bool {
	node := t.Search(word)
	if node == nil || !node.IsWord() {
		return false
	}
	node.importance++
	return true
}

// Importance returns the current counter of word, 0 when absent.
func (t *Trie) Importance(word string) int {
	if node := t.Search(word); node != nil {
		return node.importance
	}
	return 0
}

// Stats walks the whole trie.
func (t *Trie) Stats() Stats {
	var st Stats
	var walk func(n *Node)
	walk = func(n *Node) {
		st.Nodes++
		if n.IsWord() {
			st.Words++
		}
		m := &n.children
		st.MaxFanout = max(st.MaxFanout, m.Len())
		st.MaxCapacity = max(st.MaxCapacity, m.Cap())
		st.MaxDisplacement = max(st.MaxDisplacement, m.MaxDisplacement())
		m.Visit(func(_ rune, child *Node) {
			walk(child)
		})
	}
	walk(t.root)
	return st
}
