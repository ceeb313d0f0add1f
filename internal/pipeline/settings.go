// Package pipeline orchestrates a full AMIRA run: dataset sizing, sampling,
// the first bound, closed-itemset mining, Q patching and attribution, the
// optional second bound, and final pruning.
package pipeline

// Settings captures everything one run needs, independent of how it was
// collected (CLI flags, a config struct built by a test, ...).
type Settings struct {
	Delta       float64
	Theta       float64
	SampleSize  uint64
	DatasetPath string

	// DatasetSize overrides the auto-detected dataset size when non-nil
	// (the -d flag).
	DatasetSize *uint64

	// Seed, when non-nil, makes the sampler deterministic.
	Seed *uint64

	PrintClosed   bool   // -c
	Full          bool   // -f
	JSON          bool   // -j
	NoItemsets    bool   // -n
	SkipSecond    bool   // -p
	SampleOutPath string // -s, empty means "do not write"
	Verbose       bool   // -v

	// IgnoreFrequency, when non-nil, excludes items whose sample frequency
	// falls below this threshold from the items_objective sum (§4.5),
	// matching the original CLI's -i flag.
	IgnoreFrequency *float64
}
