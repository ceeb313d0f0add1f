package bounds

import (
	"math"

	"github.com/amira-go/amira/internal/core"
)

// Objective is a 1-D real function with a unique positive local (hence
// global) minimum, as required by the optimiser abstraction in Minimize.
type Objective func(x float64) float64

// ItemsObjective returns the objective used to compute omega1: the
// log-sum-exp, divided by x, of one term per item (sp * ln cosh(x)) plus one
// term per (item, excess-length k, attributed transaction j) triple
// contributing to that item's g/h statistics.
func ItemsObjective(infos map[core.Item]*core.ItemsetInfo) Objective {
	return func(x float64) float64 {
		if x <= 0 {
			return math.Inf(1)
		}
		lncoshx := LogCosh(x)
		sum := newLogAccumulator()
		for _, info := range infos {
			if info.Sp > 0 {
				sum.add(float64(info.Sp) * lncoshx)
			}
			for k, gk := range info.G {
				if gk == 0 {
					continue
				}
				hk := info.HAt(k)
				for j := hk - gk + 1; j <= hk; j++ {
					twoexp := math.Min(float64(k), float64(j))
					sum.add(twoexp*Log2 + float64(1+j)*lncoshx)
				}
			}
		}
		return sum.value() / x
	}
}

// ItemsetObjective returns the objective used to compute omega2. suppMinus1
// is supp1 - 1 (the first lowered support threshold minus one); q is the
// candidate CFI collection (with its accounting already populated by the
// attribution pass).
func ItemsetObjective(suppMinus1 uint64, q []core.ItemsetWithInfo) Objective {
	return func(x float64) float64 {
		if x <= 0 {
			return math.Inf(1)
		}
		lncoshx := LogCosh(x)
		sum := newLogAccumulator()
		for _, iwi := range q {
			info := iwi.Info
			if info.Sp > 0 {
				sum.add(float64(info.Sp) * lncoshx)
			}
			for k, gk := range info.G {
				if gk == 0 {
					continue
				}
				hk := info.HAt(k)
				wk := info.WAt(k)
				for j := hk - gk + 1; j <= hk; j++ {
					cis := cTerm(k, j, suppMinus1)
					// w[k]+1 at j == h[k], decreasing by one as j decreases,
					// i.e. w[k] - (h[k]-j) + 1.
					wAdj := wk + 1 - (hk - j)
					supp := minU64(suppMinus1, wAdj)
					sum.add(cis + float64(supp)*lncoshx)
				}
			}
		}
		return sum.value() / x
	}
}

// cTerm computes c(k, j) as specified: an upper bound on the log of a
// partial binomial sum, using the tail bound of Lovász, Pelikán &
// Vesztergombi when j is even and suppMinus1 - 1 <= j/2, and the trivial
// 2^min(k,j) bound otherwise.
func cTerm(k, j, suppMinus1 uint64) float64 {
	if suppMinus1 < 1 {
		return Log2 * math.Min(float64(k), float64(j))
	}
	tMinus2 := suppMinus1 - 1
	if j%2 == 0 && tMinus2 <= j/2 {
		bound := LogBinom(j, tMinus2) - LogBinom(j, j/2) + Log2*float64(j-1)
		return math.Min(Log2*float64(k), bound)
	}
	return Log2 * math.Min(float64(k), float64(j))
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
