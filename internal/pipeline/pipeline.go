package pipeline

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"github.com/amira-go/amira/internal/amiraerr"
	"github.com/amira-go/amira/internal/bounds"
	"github.com/amira-go/amira/internal/core"
	"github.com/amira-go/amira/internal/dataset"
	"github.com/amira-go/amira/internal/logging"
	"github.com/amira-go/amira/internal/mining"
	"github.com/amira-go/amira/internal/sample"
)

// Runtimes records the wall-clock duration of each phase, in milliseconds,
// for the -f "full" output block. Total excludes the optional sample-write
// phase.
type Runtimes struct {
	Total        int64
	CreateSample int64
	GetRho1      int64
	Mine         int64
	GetRho2      int64
	Prune        int64
}

// Result is everything a run produces: the final pruned candidate CFI
// collection plus every intermediate quantity the -f output block reports.
type Result struct {
	DatasetSize uint64
	SampleSize  uint64

	Omega1, Rho1, Freq1 float64
	Supp1               uint64
	Cfis1               int

	Omega2, Rho2, Freq2 float64
	Supp2               uint64
	Cfis2               int

	Eps float64
	Q   []core.ItemsetWithInfo

	Runtimes Runtimes
}

// Run executes one full AMIRA pass against settings and returns the final
// pruned candidate collection together with every reported intermediate.
func Run(settings Settings, miner mining.Miner, opt bounds.Optimizer, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.New(os.Stdout, false)
	}
	if err := validate(settings); err != nil {
		return nil, err
	}

	start := time.Now()

	n, err := resolveDatasetSize(settings)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, amiraerr.NewInvariant("dataset size must be positive")
	}
	logger.Infof("dataset size: %d", n)

	sampler := sample.NewSampler(settings.Seed)

	t0 := time.Now()
	ms, itemInfos, err := sample.Build(settings.DatasetPath, n, settings.SampleSize, sampler)
	if err != nil {
		return nil, err
	}
	createSampleMs := time.Since(t0).Milliseconds()
	logger.Infof("sample built: %d unique transactions, %d total", ms.Len(), ms.Total())

	var sampleWrite time.Duration
	if settings.SampleOutPath != "" {
		tw := time.Now()
		if err := writeSample(settings.SampleOutPath, ms); err != nil {
			logger.Error("writing sample file", err)
		}
		sampleWrite = time.Since(tw)
	}

	s := ms.Total()

	objInfos := itemInfos
	if settings.IgnoreFrequency != nil {
		objInfos = filterByFrequency(itemInfos, s, *settings.IgnoreFrequency)
	}

	t0 = time.Now()
	obj1 := bounds.ItemsObjective(objInfos)
	era1, err := bounds.ComputeEraEps(settings.Delta, s, obj1, opt)
	if err != nil {
		return nil, err
	}
	rho1Ms := time.Since(t0).Milliseconds()
	logger.Infof("omega1=%v rho1=%v", era1.Omega, era1.Rho)

	freq1 := math.Max(settings.Theta-era1.Rho, 1/float64(s))
	supp1 := ceilMulU64(freq1, s)

	t0 = time.Now()
	cfis, err := miner.Mine(ms, supp1)
	if err != nil {
		return nil, amiraerr.NewOptimiser("mining closed frequent itemsets", err)
	}
	mineMs := time.Since(t0).Milliseconds()
	logger.Infof("mined %d closed frequent itemsets at supp1=%d", len(cfis), supp1)

	q := make([]core.ItemsetWithInfo, len(cfis))
	copy(q, cfis)
	sort.Slice(q, func(i, j int) bool { return core.LessH(q[i], q[j]) })

	if settings.SkipSecond {
		q = Patch(q, itemInfos, supp1)
		q = pruneBySupport(q, supp1)
		return &Result{
			DatasetSize: n,
			SampleSize:  s,
			Omega1:      era1.Omega,
			Rho1:        era1.Rho,
			Freq1:       freq1,
			Supp1:       supp1,
			Cfis1:       len(cfis),
			Eps:         2 * era1.Rho,
			Q:           q,
			Runtimes: Runtimes{
				Total:        (time.Since(start) - sampleWrite).Milliseconds(),
				CreateSample: createSampleMs,
				GetRho1:      rho1Ms,
				Mine:         mineMs,
			},
		}, nil
	}

	q = Patch(q, itemInfos, supp1)
	Attribute(ms, q)

	t0 = time.Now()
	var suppMinus1 uint64
	if supp1 > 0 {
		suppMinus1 = supp1 - 1
	}
	obj2 := bounds.ItemsetObjective(suppMinus1, q)
	era2, err := bounds.ComputeEraEps(settings.Delta, s, obj2, opt)
	if err != nil {
		return nil, err
	}
	rho2Ms := time.Since(t0).Milliseconds()
	logger.Infof("omega2=%v rho2=%v", era2.Omega, era2.Rho)

	r := era1.Rho
	freq2 := math.Max(settings.Theta-era2.Rho, 1/float64(s))
	supp2 := supp1
	if era2.Rho < era1.Rho {
		r = era2.Rho
		supp2 = ceilMulU64(settings.Theta-era2.Rho, s)
		if supp2 < 1 {
			supp2 = 1
		}
	}

	t0 = time.Now()
	q = pruneBySupport(q, supp2)
	pruneMs := time.Since(t0).Milliseconds()

	return &Result{
		DatasetSize: n,
		SampleSize:  s,
		Omega1:      era1.Omega,
		Rho1:        era1.Rho,
		Freq1:       freq1,
		Supp1:       supp1,
		Cfis1:       len(cfis),
		Omega2:      era2.Omega,
		Rho2:        era2.Rho,
		Freq2:       freq2,
		Supp2:       supp2,
		Cfis2:       len(q),
		Eps:         2 * r,
		Q:           q,
		Runtimes: Runtimes{
			Total:        (time.Since(start) - sampleWrite).Milliseconds(),
			CreateSample: createSampleMs,
			GetRho1:      rho1Ms,
			Mine:         mineMs,
			GetRho2:      rho2Ms,
			Prune:        pruneMs,
		},
	}, nil
}

// filterByFrequency returns the subset of infos whose sample frequency
// (sp/s) is at least minFreq, implementing the supplemented -i flag.
func filterByFrequency(infos map[core.Item]*core.ItemsetInfo, s uint64, minFreq float64) map[core.Item]*core.ItemsetInfo {
	out := make(map[core.Item]*core.ItemsetInfo, len(infos))
	for item, info := range infos {
		if float64(info.Sp)/float64(s) >= minFreq {
			out[item] = info
		}
	}
	return out
}

func validate(settings Settings) error {
	if settings.Delta <= 0 || settings.Delta >= 1 {
		return amiraerr.NewInput("delta must be in (0,1), got %v", settings.Delta)
	}
	if settings.Theta <= 0 || settings.Theta >= 1 {
		return amiraerr.NewInput("theta must be in (0,1), got %v", settings.Theta)
	}
	if settings.SampleSize == 0 {
		return amiraerr.NewInput("samplesize must be positive")
	}
	if settings.DatasetPath == "" {
		return amiraerr.NewInput("dataset path must not be empty")
	}
	return nil
}

func resolveDatasetSize(settings Settings) (uint64, error) {
	if settings.DatasetSize != nil {
		return *settings.DatasetSize, nil
	}
	return dataset.Size(settings.DatasetPath, true)
}

// ceilMulU64 returns ceil(freq * s) as a uint64, never below zero.
func ceilMulU64(freq float64, s uint64) uint64 {
	v := freq * float64(s)
	if v <= 0 {
		return 0
	}
	return uint64(math.Ceil(v))
}

func pruneBySupport(q []core.ItemsetWithInfo, supp uint64) []core.ItemsetWithInfo {
	kept := q[:0]
	for _, iwi := range q {
		if iwi.Info.Sp >= supp {
			kept = append(kept, iwi)
		}
	}
	return kept
}

func writeSample(path string, ms *core.Multiset) error {
	f, err := os.Create(path)
	if err != nil {
		return amiraerr.NewIo("creating sample file", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	var ioErr error
	ms.Each(func(items core.Itemset, count uint64) {
		if ioErr != nil {
			return
		}
		line := itemsetLine(items)
		for i := uint64(0); i < count; i++ {
			if _, err := w.WriteString(line); err != nil {
				ioErr = err
				return
			}
			if _, err := w.WriteString("\n"); err != nil {
				ioErr = err
				return
			}
		}
	})
	if ioErr != nil {
		return amiraerr.NewIo("writing sample file", ioErr)
	}
	return w.Flush()
}

func itemsetLine(items core.Itemset) string {
	s := ""
	for i, it := range items {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", it)
	}
	return s
}
