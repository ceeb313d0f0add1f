package pipeline

import (
	"sort"

	"github.com/amira-go/amira/internal/core"
)

// Patch inserts a singleton {i} with fresh Info{sp, empty g/h/w} into q for
// every item i whose per-item support is strictly below supp1, so that
// every item appearing in the sample is covered by some element of q under
// the <_H order. Patch appends to q and returns the extended, <_H-sorted
// slice.
func Patch(q []core.ItemsetWithInfo, itemInfos map[core.Item]*core.ItemsetInfo, supp1 uint64) []core.ItemsetWithInfo {
	covered := make(map[core.Item]bool, len(itemInfos))
	for _, iwi := range q {
		if len(iwi.Items) == 1 {
			covered[iwi.Items[0]] = true
		}
	}
	for item, info := range itemInfos {
		if info.Sp < supp1 && !covered[item] {
			q = append(q, core.ItemsetWithInfo{
				Items: core.Itemset{item},
				Info:  core.NewItemsetInfo(info.Sp),
			})
		}
	}
	sort.Slice(q, func(i, j int) bool { return core.LessH(q[i], q[j]) })
	return q
}

// Attribute scans every unique sampled transaction against q (already
// sorted by <_H) and, for each, finds the first element A with A ⊆ t,
// calling A.Info.Update(|t|-|A|, c). Exactly one element is updated per
// unique transaction; a transaction matching no element is silently
// skipped, which cannot happen once Patch has been applied.
func Attribute(sample *core.Multiset, q []core.ItemsetWithInfo) {
	sample.Each(func(t core.Itemset, c uint64) {
		for _, a := range q {
			if a.Items.IsSubsetOf(t) {
				a.Info.Update(uint64(len(t))-uint64(len(a.Items)), c)
				return
			}
		}
	})
}
