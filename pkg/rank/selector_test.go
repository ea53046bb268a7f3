package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreMap map[string]int

func (m scoreMap) Importance(word string) int { return m[word] }

func TestSelectorDrainsAscending(t *testing.T) {
	scores := scoreMap{"a": 5, "b": 1, "c": 9, "d": 3, "e": 7}
	s := NewSelector(5)
	for _, w := range []string{"a", "b", "c", "d", "e"} {
		require.True(t, s.Offer(w, scores))
	}

	var got []string
	for {
		w, ok := s.RemoveMin(scores)
		if !ok {
			break
		}
		got = append(got, w)
	}
	assert.Equal(t, []string{"b", "d", "a", "e", "c"}, got)
}

func TestSelectorRejectsWhenFull(t *testing.T) {
	scores := scoreMap{}
	s := NewSelector(2)
	assert.True(t, s.Offer("x", scores))
	assert.True(t, s.Offer("y", scores))
	assert.False(t, s.Offer("z", scores))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains("z"))
}

func TestSelectorEmpty(t *testing.T) {
	s := NewSelector(0)
	w, ok := s.RemoveMin(scoreMap{})
	assert.False(t, ok)
	assert.Empty(t, w)
	assert.False(t, s.Offer("a", scoreMap{}))
	assert.False(t, s.Contains("a"))
}

func TestSelectorContains(t *testing.T) {
	scores := scoreMap{"a": 1, "b": 2}
	s := NewSelector(3)
	s.Offer("a", scores)
	s.Offer("b", scores)
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))

	s.RemoveMin(scores)
	assert.False(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
}

func TestSelectorLiveScores(t *testing.T) {
	scores := scoreMap{"a": 1, "b": 2, "c": 3}
	s := NewSelector(4)
	s.Offer("a", scores)
	s.Offer("b", scores)

	// a gained importance after it was placed; the sift for c reads the new
	// value and moves c above it
	scores["a"] = 10
	s.Offer("c", scores)

	var got []string
	for s.Len() > 0 {
		w, _ := s.RemoveMin(scores)
		got = append(got, w)
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)
}

func TestSelectorTopKDiscipline(t *testing.T) {
	const k = 3
	scores := scoreMap{}
	words := []string{"p", "q", "r", "s", "t", "u", "v", "w"}
	for i, w := range words {
		scores[w] = (i * 7) % 5
	}

	s := NewSelector(k + 1)
	for _, w := range words {
		if s.Contains(w) {
			continue
		}
		require.True(t, s.Offer(w, scores), "offer never overflows when draining after k")
		if s.Len() > k {
			s.RemoveMin(scores)
		}
		assert.LessOrEqual(t, s.Len(), k)
	}

	var kept []int
	for s.Len() > 0 {
		w, _ := s.RemoveMin(scores)
		kept = append(kept, scores[w])
	}
	// scores are 0,2,4,1,3,0,2,4: the top three are 4,4,3
	assert.Equal(t, []int{3, 4, 4}, kept)
}

func TestSelectorHugeCapacity(t *testing.T) {
	scores := scoreMap{"a": 2, "b": 1}
	s := NewSelector(math.MaxInt)
	assert.Equal(t, math.MaxInt, s.Cap())
	require.True(t, s.Offer("a", scores))
	require.True(t, s.Offer("b", scores))
	assert.Equal(t, 2, s.Len())

	w, ok := s.RemoveMin(scores)
	assert.True(t, ok)
	assert.Equal(t, "b", w)
}
