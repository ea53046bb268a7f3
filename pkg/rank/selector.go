// Package rank keeps the k most important candidates of a suggestion pass.
package rank

// Scorer looks up the importance of a word. Selector asks for it on every
// comparison, so scores are never cached inside the heap.
type Scorer interface {
	Importance(word string) int
}

// Selector is a bounded min-heap of words ordered by live importance.
// It holds no duplicates as long as callers check Contains before Offer.
type Selector struct {
	items    []string
	capacity int
}

// NewSelector creates a selector that holds at most capacity words.
// Suggestion passes use k+1 so one overflow word fits before eviction.
// Storage grows with the words offered, not with capacity.
func NewSelector(capacity int) *Selector {
	if capacity < 0 {
		capacity = 0
	}
	return &Selector{capacity: capacity}
}

// Len returns the number of words held.
func (s *Selector) Len() int { return len(s.items) }

// Cap returns the fixed capacity.
func (s *Selector) Cap() int { return s.capacity }

// Offer adds word and restores heap order. A full selector rejects the word
// and returns false.
func (s *Selector) Offer(word string, scores Scorer) bool {
	if len(s.items) == s.capacity {
		return false
	}
	s.items = append(s.items, word)
	s.up(len(s.items)-1, scores)
	return true
}

// RemoveMin pops the least important word. ok is false on an empty selector.
func (s *Selector) RemoveMin(scores Scorer) (word string, ok bool) {
	if len(s.items) == 0 {
		return "", false
	}
	word = s.items[0]
	last := len(s.items) - 1
	s.items[0] = s.items[last]
	s.items[last] = ""
	s.items = s.items[:last]
	s.down(0, scores)
	return word, true
}

// Contains is a linear membership test.
func (s *Selector) Contains(word string) bool {
	for _, w := range s.items {
		if w == word {
			return true
		}
	}
	return false
}

func (s *Selector) less(i, j int, scores Scorer) bool {
	return scores.Importance(s.items[i]) < scores.Importance(s.items[j])
}

func (s *Selector) up(i int, scores Scorer) {
	for i > 0 {
		parent := (i - 1) / 2
		if !s.less(i, parent, scores) {
			break
		}
		s.items[i], s.items[parent] = s.items[parent], s.items[i]
		i = parent
	}
}

func (s *Selector) down(i int, scores Scorer) {
	n := len(s.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && s.less(left, smallest, scores) {
			smallest = left
		}
		if right < n && s.less(right, smallest, scores) {
			smallest = right
		}
		if smallest == i {
			return
		}
		s.items[i], s.items[smallest] = s.items[smallest], s.items[i]
		i = smallest
	}
}
