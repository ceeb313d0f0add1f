package sample

import (
	"bufio"
	"os"

	"github.com/amira-go/amira/internal/amiraerr"
	"github.com/amira-go/amira/internal/core"
	"github.com/amira-go/amira/internal/dataset"
)

// Build reads path once, selects the sampled transactions (handling
// duplicates), and returns the sample multiset together with the per-item
// accounting (support and, for each item that is the <_H-minimal item of
// some unique sampled transaction, g/h/w) described in the data model.
func Build(path string, n, size uint64, sampler *Sampler) (*core.Multiset, map[core.Item]*core.ItemsetInfo, error) {
	idx, err := sampler.Indices(n, size)
	if err != nil {
		return nil, nil, err
	}

	ms := core.NewMultiset()
	infos := make(map[core.Item]*core.ItemsetInfo)

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, amiraerr.NewIo("opening dataset", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var curIdx uint64
	pos := 0
	for pos < len(idx) && sc.Scan() {
		line := sc.Text()
		if dataset.IsMetadata(line) {
			continue
		}
		if curIdx != idx[pos] {
			curIdx++
			continue
		}
		items, err := dataset.ParseTransaction(line)
		if err != nil {
			return nil, nil, err
		}
		var copies uint64
		for pos < len(idx) && curIdx == idx[pos] {
			pos++
			copies++
		}
		for _, it := range items {
			info, ok := infos[it]
			if !ok {
				infos[it] = core.NewItemsetInfo(copies)
			} else {
				info.Sp += copies
			}
		}
		ms.Add(items, copies)
		curIdx++
	}
	if err := sc.Err(); err != nil {
		return nil, nil, amiraerr.NewIo("reading dataset", err)
	}

	// Populate g/h/w for the per-item singletons: for every unique sampled
	// transaction, attribute it to the item with minimum support (ties
	// broken by smaller item value), i.e. the item that comes first under
	// <_H among singletons.
	ms.Each(func(items core.Itemset, count uint64) {
		if len(items) == 0 {
			return
		}
		m := items[0]
		for _, it := range items[1:] {
			if infos[it].Sp < infos[m].Sp || (infos[it].Sp == infos[m].Sp && it < m) {
				m = it
			}
		}
		infos[m].Update(uint64(len(items))-1, count)
	})

	return ms, infos, nil
}
