package core

import "testing"

func TestItemsetInfoUpdateNoOpOnZero(t *testing.T) {
	info := NewItemsetInfo(5)
	info.Update(0, 3)
	if len(info.G) != 0 || len(info.H) != 0 || len(info.W) != 0 {
		t.Fatalf("expected no-op update, got %+v", info)
	}
}

func TestItemsetInfoUpdateInvariants(t *testing.T) {
	info := NewItemsetInfo(0)
	info.Update(3, 2)
	info.Update(1, 1)
	info.Update(3, 1)

	// h[i] = sum_{k>=i} g[k]
	for i := uint64(1); i < uint64(len(info.H)); i++ {
		var sum uint64
		for k, gv := range info.G {
			if k >= i {
				sum += gv
			}
		}
		if info.HAt(i) != sum {
			t.Fatalf("h[%d] = %d, want %d", i, info.HAt(i), sum)
		}
	}
	// w[i] >= h[i], both nonincreasing in i.
	for i := uint64(1); i < uint64(len(info.H))-1; i++ {
		if info.WAt(i) < info.HAt(i) {
			t.Fatalf("w[%d]=%d < h[%d]=%d", i, info.WAt(i), i, info.HAt(i))
		}
		if info.HAt(i) < info.HAt(i + 1) {
			t.Fatalf("h not nonincreasing at %d: %d < %d", i, info.HAt(i), info.HAt(i+1))
		}
		if info.WAt(i) < info.WAt(i + 1) {
			t.Fatalf("w not nonincreasing at %d: %d < %d", i, info.WAt(i), info.WAt(i+1))
		}
	}
}

func TestLessHOrdering(t *testing.T) {
	small := ItemsetWithInfo{Items: Itemset{1}, Info: &ItemsetInfo{Sp: 2}}
	big := ItemsetWithInfo{Items: Itemset{1, 2}, Info: &ItemsetInfo{Sp: 2}}
	// Same support, big has larger length, so big should sort first (<_H).
	if !LessH(big, small) {
		t.Fatalf("expected larger-length itemset to be <_H-smaller on support tie")
	}
	lowSupp := ItemsetWithInfo{Items: Itemset{1, 2, 3}, Info: &ItemsetInfo{Sp: 1}}
	if !LessH(lowSupp, big) {
		t.Fatalf("expected lower support to be <_H-smaller regardless of length")
	}
}

func TestLessLOrdering(t *testing.T) {
	shorter := ItemsetWithInfo{Items: Itemset{1}, Info: &ItemsetInfo{Sp: 9}}
	longer := ItemsetWithInfo{Items: Itemset{1, 2}, Info: &ItemsetInfo{Sp: 1}}
	if !LessL(shorter, longer) {
		t.Fatalf("expected shorter itemset to be <_L-smaller regardless of support")
	}
}
