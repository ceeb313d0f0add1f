package mining

import (
	"sort"

	"github.com/amira-go/amira/internal/core"
)

// transaction is a flattened view of one unique multiset entry.
type transaction struct {
	items core.Itemset
	count uint64
}

// candidate is an itemset under consideration together with its support in
// the sample, computed so far.
type candidate struct {
	items   core.Itemset
	support uint64
}

// FPClose mines closed frequent itemsets level-wise (Apriori-style
// candidate generation with a closure filter at the end), satisfying the
// Miner contract without reproducing the FP-tree internals the spec leaves
// unspecified.
type FPClose struct{}

// Mine returns every closed itemset with support >= minSupport in sample.
func (FPClose) Mine(sample *core.Multiset, minSupport uint64) ([]core.ItemsetWithInfo, error) {
	txs := make([]transaction, 0, sample.Len())
	sample.Each(func(items core.Itemset, count uint64) {
		txs = append(txs, transaction{items: items, count: count})
	})

	itemSupport := map[core.Item]uint64{}
	for _, tx := range txs {
		for _, it := range tx.items {
			itemSupport[it] += tx.count
		}
	}

	all := map[string]*candidate{}
	var universe []core.Item
	var level []*candidate
	for it, sp := range itemSupport {
		if sp >= minSupport {
			c := &candidate{items: core.Itemset{it}, support: sp}
			level = append(level, c)
			all[c.items.Key()] = c
			universe = append(universe, it)
		}
	}
	sort.Slice(universe, func(i, j int) bool { return universe[i] < universe[j] })

	for len(level) > 0 {
		sort.Slice(level, func(i, j int) bool { return lessItemset(level[i].items, level[j].items) })
		levelSet := make(map[string]bool, len(level))
		for _, c := range level {
			levelSet[c.items.Key()] = true
		}
		next := generateCandidates(level, levelSet)
		var frequent []*candidate
		for _, cand := range next {
			var supp uint64
			for _, tx := range txs {
				if cand.items.IsSubsetOf(tx.items) {
					supp += tx.count
				}
			}
			if supp >= minSupport {
				cand.support = supp
				frequent = append(frequent, cand)
				all[cand.items.Key()] = cand
			}
		}
		level = frequent
	}

	result := make([]core.ItemsetWithInfo, 0, len(all))
	for _, c := range all {
		if isClosed(c, all, universe) {
			result = append(result, core.ItemsetWithInfo{
				Items: c.items.Clone(),
				Info:  core.NewItemsetInfo(c.support),
			})
		}
	}
	return result, nil
}

// isClosed reports whether c has no immediate single-item extension with
// the same support among the known frequent itemsets; by the standard
// closure lemma this is sufficient to conclude no proper superset at all
// shares c's support.
func isClosed(c *candidate, all map[string]*candidate, universe []core.Item) bool {
	for _, it := range universe {
		if containsItem(c.items, it) {
			continue
		}
		ext := make(core.Itemset, len(c.items)+1)
		copy(ext, c.items)
		ext[len(c.items)] = it
		ext.Sort()
		if other, ok := all[ext.Key()]; ok && other.support == c.support {
			return false
		}
	}
	return true
}

func containsItem(items core.Itemset, it core.Item) bool {
	for _, x := range items {
		if x == it {
			return true
		}
	}
	return false
}

func lessItemset(a, b core.Itemset) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// generateCandidates joins itemsets in level (all of the same length k,
// sorted lexicographically) that share their first k-1 items, producing
// (k+1)-itemset candidates, then keeps only those all of whose k-subsets are
// themselves frequent at this level.
func generateCandidates(level []*candidate, levelSet map[string]bool) []*candidate {
	var out []*candidate
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i].items, level[j].items
			if len(a) == 0 || len(a) != len(b) {
				continue
			}
			size := len(a)
			sharesPrefix := true
			for k := 0; k < size-1; k++ {
				if a[k] != b[k] {
					sharesPrefix = false
					break
				}
			}
			if !sharesPrefix || a[size-1] >= b[size-1] {
				continue
			}
			merged := make(core.Itemset, size+1)
			copy(merged, a[:size-1])
			merged[size-1] = a[size-1]
			merged[size] = b[size-1]
			merged.Sort()
			if allSubsetsFrequent(merged, levelSet) {
				out = append(out, &candidate{items: merged})
			}
		}
	}
	return out
}

// allSubsetsFrequent reports whether every (k-1)-length subset of items (a
// k-itemset) is present in levelSet, the frequent itemsets one level down.
func allSubsetsFrequent(items core.Itemset, levelSet map[string]bool) bool {
	for skip := range items {
		subset := make(core.Itemset, 0, len(items)-1)
		for i, it := range items {
			if i != skip {
				subset = append(subset, it)
			}
		}
		if !levelSet[subset.Key()] {
			return false
		}
	}
	return true
}
