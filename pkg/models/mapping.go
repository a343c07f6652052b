package models

// MappingPair records one substitution: the fake value written into the
// anonymized text and the original value it replaced.
type MappingPair struct {
	Fake     string `json:"fake"`
	Original string `json:"original"`
}

// Mapping is the ordered forward mapping fake -> original produced by one
// anonymization. Fake values are unique within a mapping; the generator
// resolves collisions by suffixing before a pair is added.
type Mapping struct {
	pairs []MappingPair
	index map[string]int
}

func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// Add appends a pair. If the fake value is already present the existing
// pair is overwritten in place, preserving order.
func (m *Mapping) Add(fake, original string) {
	if i, ok := m.index[fake]; ok {
		m.pairs[i].Original = original
		return
	}
	m.index[fake] = len(m.pairs)
	m.pairs = append(m.pairs, MappingPair{Fake: fake, Original: original})
}

// Has reports whether fake is already a key in the mapping.
func (m *Mapping) Has(fake string) bool {
	_, ok := m.index[fake]
	return ok
}

// Pairs returns the pairs in insertion order.
func (m *Mapping) Pairs() []MappingPair {
	return m.pairs
}

func (m *Mapping) Len() int {
	return len(m.pairs)
}

// Merge appends all pairs from other, preserving other's order.
func (m *Mapping) Merge(other *Mapping) {
	if other == nil {
		return
	}
	for _, p := range other.pairs {
		m.Add(p.Fake, p.Original)
	}
}
