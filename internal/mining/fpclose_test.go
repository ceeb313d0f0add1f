package mining

import (
	"sort"
	"testing"

	"github.com/amira-go/amira/internal/core"
)

func buildMultiset(rows [][]uint32) *core.Multiset {
	ms := core.NewMultiset()
	for _, row := range rows {
		items := make(core.Itemset, len(row))
		for i, v := range row {
			items[i] = core.Item(v)
		}
		items.Sort()
		ms.Add(items, 1)
	}
	return ms
}

func keysOf(result []core.ItemsetWithInfo) map[string]uint64 {
	out := make(map[string]uint64, len(result))
	for _, r := range result {
		out[r.Items.Key()] = r.Info.Sp
	}
	return out
}

func TestFPCloseFindsClosedFrequentItemsets(t *testing.T) {
	ms := buildMultiset([][]uint32{
		{1, 2, 3},
		{1, 2},
		{1, 2},
		{3},
	})
	result, err := (FPClose{}).Mine(ms, 2)
	if err != nil {
		t.Fatal(err)
	}
	got := keysOf(result)
	want := map[string]uint64{
		"1,2": 3,
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("expected closed itemset %q with support %d, got %v", k, v, got)
		}
	}
}

func TestFPCloseNeverEmitsEmptySet(t *testing.T) {
	ms := buildMultiset([][]uint32{{1}, {2}, {3}})
	result, err := (FPClose{}).Mine(ms, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range result {
		if len(r.Items) == 0 {
			t.Fatalf("empty itemset must never be emitted")
		}
	}
}

func TestFPCloseItemsAreAscending(t *testing.T) {
	ms := buildMultiset([][]uint32{{3, 1, 2}, {3, 1, 2}, {1, 2}})
	result, err := (FPClose{}).Mine(ms, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range result {
		if !sort.SliceIsSorted(r.Items, func(i, j int) bool { return r.Items[i] < r.Items[j] }) {
			t.Fatalf("itemset %v not sorted ascending", r.Items)
		}
	}
}

func TestFPCloseExcludesSupersetsWithEqualSupport(t *testing.T) {
	// {1,2} and {1,2,3} always co-occur: only the longer itemset is closed.
	ms := buildMultiset([][]uint32{
		{1, 2, 3},
		{1, 2, 3},
		{4},
	})
	result, err := (FPClose{}).Mine(ms, 2)
	if err != nil {
		t.Fatal(err)
	}
	got := keysOf(result)
	if _, ok := got["1,2"]; ok {
		t.Fatalf("{1,2} has the same support as its superset {1,2,3} and must not be closed")
	}
	if sp, ok := got["1,2,3"]; !ok || sp != 2 {
		t.Fatalf("expected closed itemset {1,2,3} with support 2, got %v", got)
	}
}
