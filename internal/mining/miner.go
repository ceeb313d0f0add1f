// Package mining defines the closed-itemset miner contract AMIRA depends on
// and provides a from-scratch implementation of it. The contract is the
// specified surface; the mining algorithm itself (FP-growth/FP-close in the
// original) is explicitly out of scope, so the implementation here favors
// correctness and clarity over the performance characteristics of a real
// FP-tree.
package mining

import "github.com/amira-go/amira/internal/core"

// Miner mines the closed frequent itemsets of a sample multiset at an
// absolute support threshold. Every CFI with support >= minSupport is
// returned paired with its support; the empty itemset is never emitted; no
// ordering is guaranteed; items within each returned itemset are sorted
// ascending.
type Miner interface {
	Mine(sample *core.Multiset, minSupport uint64) ([]core.ItemsetWithInfo, error)
}
