package core

// Multiset holds the unique sampled transactions together with their copy
// counts. The invariant Sum(counts) == sample size is maintained by callers
// of Add.
type Multiset struct {
	entries map[string]*multisetEntry
	total   uint64
}

type multisetEntry struct {
	items Itemset
	count uint64
}

// NewMultiset returns an empty Multiset.
func NewMultiset() *Multiset {
	return &Multiset{entries: make(map[string]*multisetEntry)}
}

// Add inserts count copies of items (assumed already sorted ascending) into
// the multiset, merging with any existing entry for the same itemset.
func (m *Multiset) Add(items Itemset, count uint64) {
	key := items.Key()
	if e, ok := m.entries[key]; ok {
		e.count += count
	} else {
		m.entries[key] = &multisetEntry{items: items.Clone(), count: count}
	}
	m.total += count
}

// Len returns the number of distinct itemsets stored.
func (m *Multiset) Len() int { return len(m.entries) }

// Total returns the sum of all copy counts, i.e. the sample size.
func (m *Multiset) Total() uint64 { return m.total }

// Each calls fn once per unique (itemset, count) pair. Iteration order is
// unspecified.
func (m *Multiset) Each(fn func(items Itemset, count uint64)) {
	for _, e := range m.entries {
		fn(e.items, e.count)
	}
}
