package expand

import (
	"testing"

	"github.com/amira-go/amira/internal/core"
)

func mk(support uint64, items ...uint32) core.ItemsetWithInfo {
	its := make(core.Itemset, len(items))
	for i, v := range items {
		its[i] = core.Item(v)
	}
	its.Sort()
	return core.ItemsetWithInfo{Items: its, Info: core.NewItemsetInfo(support)}
}

func find(t *testing.T, out []core.ItemsetWithInfo, support uint64, items ...uint32) {
	t.Helper()
	its := make(core.Itemset, len(items))
	for i, v := range items {
		its[i] = core.Item(v)
	}
	its.Sort()
	for _, o := range out {
		if o.Items.Equal(its) {
			if o.Info.Sp != support {
				t.Fatalf("itemset %v: expected support %d, got %d", items, support, o.Info.Sp)
			}
			return
		}
	}
	t.Fatalf("itemset %v not found in expansion output", items)
}

func TestToFIsPropagatesSupportToSubsets(t *testing.T) {
	q := []core.ItemsetWithInfo{
		mk(2, 1, 2, 3),
		mk(3, 1, 2),
	}
	out := ToFIs(q)

	find(t, out, 2, 1, 2, 3)
	find(t, out, 3, 1, 2)
	// subsets of {1,2,3} inherit support 2, except {1,2} which already has
	// a higher directly-known support of 3.
	find(t, out, 2, 1, 3)
	find(t, out, 2, 2, 3)
	find(t, out, 3, 1)
	find(t, out, 3, 2)
	find(t, out, 2, 3)
}

func TestToFIsNeverLowersAKnownSupport(t *testing.T) {
	q := []core.ItemsetWithInfo{
		mk(5, 1, 2, 3),
		mk(10, 1), // {1} independently known with higher support
	}
	out := ToFIs(q)
	find(t, out, 10, 1)
	find(t, out, 5, 1, 2, 3)
}

func TestToFIsEmptyInput(t *testing.T) {
	if out := ToFIs(nil); out != nil {
		t.Fatalf("expected nil output for empty input, got %v", out)
	}
}
