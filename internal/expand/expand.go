// Package expand reconstructs every frequent itemset from a collection of
// closed frequent itemsets without re-mining, following Algorithm 6.4 of
// Tan, Steinbach & Kumar.
package expand

import (
	"sort"

	"github.com/amira-go/amira/internal/core"
)

// ToFIs expands cfis into the set of all frequent itemsets it implies: every
// proper subset of an emitted itemset is also emitted, with support at
// least that of its smallest enclosing CFI. Traversal runs by <_L from
// longest to shortest length class; within a length class, all CFIs of the
// class are emitted first (highest support first), then the subsets
// inherited from the previous, longer class that were not already emitted.
func ToFIs(cfis []core.ItemsetWithInfo) []core.ItemsetWithInfo {
	if len(cfis) == 0 {
		return nil
	}

	byLength := map[int][]core.ItemsetWithInfo{}
	maxLen := 0
	for _, c := range cfis {
		l := len(c.Items)
		byLength[l] = append(byLength[l], c)
		if l > maxLen {
			maxLen = l
		}
	}

	emitted := map[string]core.ItemsetWithInfo{}
	var out []core.ItemsetWithInfo

	// supersets holds every itemset already emitted at the previous
	// (longer) length class, to derive this class's inherited subsets from.
	var supersets []core.ItemsetWithInfo

	for length := maxLen; length >= 1; length-- {
		seenThisLength := map[string]bool{}

		classCfis := append([]core.ItemsetWithInfo(nil), byLength[length]...)
		sort.Slice(classCfis, func(i, j int) bool { return classCfis[i].Info.Sp > classCfis[j].Info.Sp })

		for _, c := range classCfis {
			key := c.Items.Key()
			if seenThisLength[key] {
				continue
			}
			seenThisLength[key] = true
			emitted[key] = c
			out = append(out, c)
		}

		sort.Slice(supersets, func(i, j int) bool { return supersets[i].Info.Sp > supersets[j].Info.Sp })
		for _, sup := range supersets {
			for skip := range sup.Items {
				subset := make(core.Itemset, 0, len(sup.Items)-1)
				for i, it := range sup.Items {
					if i != skip {
						subset = append(subset, it)
					}
				}
				key := subset.Key()
				if seenThisLength[key] {
					continue
				}
				if existing, ok := emitted[key]; ok && existing.Info.Sp >= sup.Info.Sp {
					continue
				}
				seenThisLength[key] = true
				iwi := core.ItemsetWithInfo{Items: subset, Info: core.NewItemsetInfo(sup.Info.Sp)}
				emitted[key] = iwi
				out = append(out, iwi)
			}
		}

		supersets = nil
		for key := range seenThisLength {
			supersets = append(supersets, emitted[key])
		}
	}

	return out
}
