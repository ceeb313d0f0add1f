package core

// ItemsetInfo is the accounting record maintained for a single itemset A,
// as described in the data model: sp is A's support in the sample; g, h and
// w accumulate the "excess length" statistics of the transactions
// attributed to A, feeding the bound objective functions.
//
// Invariants (see Update): for every i>=1, h[i] = sum of g[k] for k>=i;
// w[i] >= h[i]; both h and w are nonincreasing as i grows.
type ItemsetInfo struct {
	Sp uint64
	G  map[uint64]uint64
	H  []uint64
	W  []uint64
}

// NewItemsetInfo returns a fresh, empty ItemsetInfo with the given support.
func NewItemsetInfo(sp uint64) *ItemsetInfo {
	return &ItemsetInfo{Sp: sp, G: make(map[uint64]uint64)}
}

// Update accounts for a transaction of duplicate count c attributed to this
// itemset, whose length exceeds the itemset's length by k. A k of zero means
// the itemset equals the transaction and is a no-op. Otherwise g[k] is
// incremented, and h[i]/w[i] are incremented (by 1 and by c respectively)
// for every i in 1..k, extending the slices with zeros first if needed.
// Slot 0 of h and w is never touched.
func (info *ItemsetInfo) Update(k, c uint64) {
	if k == 0 {
		return
	}
	if info.G == nil {
		info.G = make(map[uint64]uint64)
	}
	info.G[k]++
	if uint64(len(info.H)) < k+1 {
		grown := make([]uint64, k+1)
		copy(grown, info.H)
		info.H = grown
	}
	if uint64(len(info.W)) < k+1 {
		grown := make([]uint64, k+1)
		copy(grown, info.W)
		info.W = grown
	}
	for i := uint64(1); i <= k; i++ {
		info.H[i]++
		info.W[i] += c
	}
}

// HAt returns h[i], or 0 if i is beyond the populated range.
func (info *ItemsetInfo) HAt(i uint64) uint64 {
	if i >= uint64(len(info.H)) {
		return 0
	}
	return info.H[i]
}

// WAt returns w[i], or 0 if i is beyond the populated range.
func (info *ItemsetInfo) WAt(i uint64) uint64 {
	if i >= uint64(len(info.W)) {
		return 0
	}
	return info.W[i]
}

// ItemsetWithInfo pairs an itemset (sorted ascending) with its accounting
// record. It is the element type of Q, the candidate CFI collection.
type ItemsetWithInfo struct {
	Items Itemset
	Info  *ItemsetInfo
}

// LessH implements the <_H ordering: smaller support first; ties broken by
// larger length first; further ties broken lexicographically on the sorted
// item sequence.
func LessH(a, b ItemsetWithInfo) bool {
	if a.Info.Sp != b.Info.Sp {
		return a.Info.Sp < b.Info.Sp
	}
	if len(a.Items) != len(b.Items) {
		return len(a.Items) > len(b.Items)
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			return a.Items[i] < b.Items[i]
		}
	}
	return false
}

// LessL implements the <_L ordering: shorter length first; ties broken by
// smaller support; further ties broken lexicographically.
func LessL(a, b ItemsetWithInfo) bool {
	if len(a.Items) != len(b.Items) {
		return len(a.Items) < len(b.Items)
	}
	if a.Info.Sp != b.Info.Sp {
		return a.Info.Sp < b.Info.Sp
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			return a.Items[i] < b.Items[i]
		}
	}
	return false
}
