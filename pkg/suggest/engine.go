package suggest

import (
	"math"
	"strings"

	"github.com/bastiangx/wordrank/pkg/rank"
	"github.com/bastiangx/wordrank/pkg/trie"
	"github.com/charmbracelet/log"
)

// Strategy names the rule that first accepted a suggestion.
type Strategy int

const (
	Prefix Strategy = iota + 1
	Substitution
	LengthVariant
)

func (s Strategy) String() string {
	switch s {
	case Prefix:
		return "prefix"
	case Substitution:
		return "substitution"
	case LengthVariant:
		return "length"
	default:
		return "unknown"
	}
}

// Suggestion is one ranked word.
type Suggestion struct {
	Word       string
	Importance int
	Strategy   Strategy
}

// Result holds the outcome of one Suggest call.
type Result struct {
	Input       string
	K           int
	Suggestions []Suggestion
}

// Found reports whether at least one suggestion was produced. Callers print
// "no suggestions found" instead of an empty list when it is false.
func (r Result) Found() bool { return len(r.Suggestions) > 0 }

// Words returns the suggested words in rank order.
func (r Result) Words() []string {
	words := make([]string, len(r.Suggestions))
	for i, s := range r.Suggestions {
		words[i] = s.Word
	}
	return words
}

// Engine answers suggestion queries against a trie. Every call rescans the
// trie from scratch; nothing is cached between calls.
type Engine struct {
	trie *trie.Trie
}

// NewEngine creates an engine over t.
func NewEngine(t *trie.Trie) *Engine {
	return &Engine{trie: t}
}

// Trie returns the underlying trie.
func (e *Engine) Trie() *trie.Trie { return e.trie }

// Suggest returns up to k words similar to input, most important first.
// k <= 0 yields no suggestions.
func (e *Engine) Suggest(input string, k int) Result {
	input = strings.ToLower(input)
	res := Result{Input: input, K: k}
	if k <= 0 {
		return res
	}

	// one extra slot holds the overflow word until the minimum is evicted
	capacity := k
	if k < math.MaxInt {
		capacity = k + 1
	}
	p := &pass{
		trie:    e.trie,
		input:   []rune(input),
		k:       k,
		sel:     rank.NewSelector(capacity),
		matched: make(map[string]Strategy),
	}

	if node := e.trie.Search(input); node != nil {
		p.collectPrefix(node, input, false)
	}
	p.collectSubstitutions(e.trie.Root(), "", 0)
	p.collectLengthVariants(e.trie.Root(), "", 0)

	// RemoveMin yields ascending importance, so fill from the back
	slots := make([]string, min(k, p.sel.Len()))
	for i := len(slots) - 1; i >= 0; i-- {
		slots[i], _ = p.sel.RemoveMin(e.trie)
	}

	for _, word := range slots {
		res.Suggestions = append(res.Suggestions, Suggestion{
			Word:       word,
			Importance: e.trie.Importance(word),
			Strategy:   p.matched[word],
		})
	}
	log.Debugf("Suggest '%s' k=%d: %d candidates offered, %d kept", input, k, p.offered, len(res.Suggestions))
	return res
}

// Stats reports the shape of the trie.
func (e *Engine) Stats() map[string]int {
	st := e.trie.Stats()
	return map[string]int{
		"words":           st.Words,
		"nodes":           st.Nodes,
		"maxFanout":       st.MaxFanout,
		"maxCapacity":     st.MaxCapacity,
		"maxDisplacement": st.MaxDisplacement,
	}
}

// pass is the state of one Suggest call.
type pass struct {
	trie    *trie.Trie
	input   []rune
	k       int
	sel     *rank.Selector
	matched map[string]Strategy
	offered int
}

// collectPrefix gathers every word below node. The node itself only counts
// once the recursion has moved past the input word.
func (p *pass) collectPrefix(node *trie.Node, prefix string, self bool) {
	if self && node.IsWord() {
		p.add(prefix, Prefix)
	}
	node.Visit(func(key rune, child *trie.Node) {
		p.collectPrefix(child, prefix+string(key), true)
	})
}

func (p *pass) collectSubstitutions(node *trie.Node, prefix string, depth int) {
	if node.IsWord() && depth == len(p.input) {
		if countMismatches([]rune(prefix), p.input) <= maxSubstitutions {
			p.add(prefix, Substitution)
		}
	}
	node.Visit(func(key rune, child *trie.Node) {
		p.collectSubstitutions(child, prefix+string(key), depth+1)
	})
}

func (p *pass) collectLengthVariants(node *trie.Node, prefix string, depth int) {
	if node.IsWord() {
		if diff := depth - len(p.input); diff >= -1 && diff <= 2 && diff != 0 {
			if isLengthVariant(p.input, []rune(prefix)) {
				p.add(prefix, LengthVariant)
			}
		}
	}
	node.Visit(func(key rune, child *trie.Node) {
		p.collectLengthVariants(child, prefix+string(key), depth+1)
	})
}

// add is the dedup-and-rank step: the selector never holds more than k words
// once add returns.
func (p *pass) add(word string, s Strategy) {
	if p.sel.Contains(word) {
		return
	}
	if p.trie.Search(word) == nil {
		return
	}
	p.offered++
	if !p.sel.Offer(word, p.trie) {
		log.Warnf("Selector full, dropped candidate '%s'", word)
		return
	}
	if _, ok := p.matched[word]; !ok {
		p.matched[word] = s
	}
	if p.sel.Len() > p.k {
		p.sel.RemoveMin(p.trie)
	}
}
