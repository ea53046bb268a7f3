package trie

// Node is one character position in the trie. The root stands for the empty string.
type Node struct {
	children   ProbeMap
	wordLen    int
	importance int
}

func newNode() *Node {
	return &Node{children: newProbeMap()}
}

// IsWord reports whether a complete word ends at this node.
func (n *Node) IsWord() bool { return n.wordLen > 0 }

// WordLen returns the length in characters of the word ending here, 0 if none does.
func (n *Node) WordLen() int { return n.wordLen }

// Importance returns how many times the word ending here was seen while scoring.
func (n *Node) Importance() int { return n.importance }

// Children exposes the child map, mostly for stats and tests.
func (n *Node) Children() *ProbeMap { return &n.children }

// Visit calls fn for every child in slot order.
func (n *Node) Visit(fn func(key rune, child *Node)) {
	n.children.Visit(fn)
}
