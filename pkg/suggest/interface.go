// Package suggest is the core, walking the trie under three matching strategies
// and ranking every match by importance through a bounded selector.
package suggest

// ISuggester defines the interface for suggestion engines
type ISuggester interface {
	// Suggest returns up to k similar words for word, most important first
	Suggest(word string, k int) Result

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
