// Package sample draws the fixed-size sample with replacement and builds
// the sample multiset together with the per-item accounting it seeds.
package sample

import (
	"math/rand/v2"
	"sort"

	"github.com/amira-go/amira/internal/amiraerr"
)

// Sampler draws indices uniformly with replacement from {0,...,n-1}. It is
// not required to be thread-safe; a Sampler must not be shared across
// goroutines without external synchronization.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler seeded from seed when non-nil, or from a
// well-seeded default source otherwise.
func NewSampler(seed *uint64) *Sampler {
	if seed == nil {
		return &Sampler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	s := *seed
	return &Sampler{rng: rand.New(rand.NewPCG(s, s^0x9E3779B97F4A7C15))}
}

// Indices draws s indices uniformly and independently with replacement from
// {0,...,n-1}, sorted ascending. As an optimisation, when s == n it returns
// the identity sequence 0..n-1 instead of drawing random numbers.
func (s *Sampler) Indices(n, size uint64) ([]uint64, error) {
	if n == 0 {
		return nil, amiraerr.NewInvariant("dataset size must be positive")
	}
	if size > uint64(^uint(0)>>1) {
		return nil, amiraerr.NewInvariant("sample size %d exceeds indexable range", size)
	}
	idx := make([]uint64, size)
	if size == n {
		for i := range idx {
			idx[i] = uint64(i)
		}
		return idx, nil
	}
	for i := range idx {
		idx[i] = s.rng.Uint64N(n)
	}
	sort.Slice(idx, func(i, j int) bool { return idx[i] < idx[j] })
	return idx, nil
}
