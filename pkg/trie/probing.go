package trie

// capacitySteps are the table sizes a ProbeMap grows through.
// A map already at the last step stays there.
var capacitySteps = [...]int{5, 11, 19, 29}

const maxLoadFactor = 0.9

// slot is one occupied position of a ProbeMap.
type slot struct {
	key   rune
	dist  int
	child *Node
}

// ProbeMap stores the children of a trie node in an open-addressing table
// keyed by a single character. Collisions are resolved with Robin Hood
// displacement: an entry that has probed farther from its ideal slot takes
// the place of one that has probed less.
type ProbeMap struct {
	slots   []*slot
	count   int
	maxDist int
}

func newProbeMap() ProbeMap {
	return ProbeMap{slots: make([]*slot, capacitySteps[0])}
}

func (m *ProbeMap) hash(key rune) int {
	return int(key) % len(m.slots)
}

// distance returns how far idx sits past the ideal slot of key.
func (m *ProbeMap) distance(key rune, idx int) int {
	return (idx - m.hash(key) + len(m.slots)) % len(m.slots)
}

// Len returns the number of keys stored.
func (m *ProbeMap) Len() int { return m.count }

// Cap returns the current table size.
func (m *ProbeMap) Cap() int { return len(m.slots) }

// MaxDisplacement returns the longest probe distance recorded since the last rebuild.
func (m *ProbeMap) MaxDisplacement() int { return m.maxDist }

// Insert returns the child stored under key, creating it when absent.
// An existing key has its stored displacement reset to 0 without moving.
// Growth to the next capacity step happens before Insert returns.
// A completely full table cannot take a new key and yields nil.
func (m *ProbeMap) Insert(key rune) *Node {
	if s := m.find(key); s != nil {
		s.dist = 0
		return s.child
	}
	if m.count == len(m.slots) {
		return nil
	}

	child := newNode()
	m.place(&slot{key: key, child: child})
	m.count++

	if float64(m.count)/float64(len(m.slots)) > maxLoadFactor {
		m.grow()
	}
	return child
}

// Search returns the child stored under key or nil.
// Probing stops on an empty slot or after maxDist+1 slots.
func (m *ProbeMap) Search(key rune) *Node {
	if m.count == 0 {
		return nil
	}
	idx := m.hash(key)
	for probes := 0; probes <= m.maxDist; probes++ {
		s := m.slots[idx]
		if s == nil {
			return nil
		}
		if s.key == key {
			return s.child
		}
		idx = (idx + 1) % len(m.slots)
	}
	return nil
}

// Visit calls fn for every stored key in slot order.
func (m *ProbeMap) Visit(fn func(key rune, child *Node)) {
	for _, s := range m.slots {
		if s != nil {
			fn(s.key, s.child)
		}
	}
}

// find walks the probe run of key without the maxDist bound.
// Entries are never removed, so a run has no holes before the key.
func (m *ProbeMap) find(key rune) *slot {
	idx := m.hash(key)
	for probes := 0; probes < len(m.slots); probes++ {
		s := m.slots[idx]
		if s == nil {
			return nil
		}
		if s.key == key {
			return s
		}
		idx = (idx + 1) % len(m.slots)
	}
	return nil
}

// place runs the Robin Hood loop for carried. The table must have a free slot.
func (m *ProbeMap) place(carried *slot) {
	idx := m.hash(carried.key)
	carried.dist = 0
	for {
		resident := m.slots[idx]
		if resident == nil {
			m.slots[idx] = carried
			m.raise(carried.dist)
			return
		}
		if carried.dist > resident.dist {
			m.slots[idx] = carried
			m.raise(carried.dist)
			carried = resident
			// stored displacement may have been reset by a touch
			carried.dist = m.distance(carried.key, idx)
		}
		carried.dist++
		idx = (idx + 1) % len(m.slots)
	}
}

func (m *ProbeMap) raise(dist int) {
	if dist > m.maxDist {
		m.maxDist = dist
	}
}

// grow rebuilds every slot into the next capacity step.
func (m *ProbeMap) grow() {
	next := nextCapacity(len(m.slots))
	if next == len(m.slots) {
		return
	}

	old := m.slots
	m.slots = make([]*slot, next)
	m.maxDist = 0
	for _, s := range old {
		if s != nil {
			m.place(s)
		}
	}
}

func nextCapacity(current int) int {
	for _, c := range capacitySteps {
		if c > current {
			return c
		}
	}
	return current
}
