package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amira-go/amira/internal/core"
	"github.com/amira-go/amira/internal/mining"
)

func writeDataset(t *testing.T, lines []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunEndToEndProducesFiniteEps(t *testing.T) {
	path := writeDataset(t, []string{
		"1 2 3",
		"1 2",
		"1 2",
		"3",
	})
	seed := uint64(42)
	settings := Settings{
		Delta:       0.1,
		Theta:       0.3,
		SampleSize:  4,
		DatasetPath: path,
		Seed:        &seed,
	}
	res, err := Run(settings, mining.FPClose{}, nil, nil)
	require.NoError(t, err)
	require.Greater(t, res.Eps, 0.0)
	require.Equal(t, uint64(4), res.SampleSize)
	for _, iwi := range res.Q {
		require.NotEmpty(t, iwi.Items, "Q must never contain the empty itemset")
	}
}

func TestRunSkipSecondShortCircuits(t *testing.T) {
	path := writeDataset(t, []string{"1 2", "1 2", "3"})
	seed := uint64(7)
	settings := Settings{
		Delta:       0.1,
		Theta:       0.3,
		SampleSize:  3,
		DatasetPath: path,
		Seed:        &seed,
		SkipSecond:  true,
	}
	res, err := Run(settings, mining.FPClose{}, nil, nil)
	require.NoError(t, err)
	require.Zero(t, res.Omega2)
	require.Zero(t, res.Rho2)
	require.Equal(t, 2*res.Rho1, res.Eps)
}

func TestRunRejectsInvalidSettings(t *testing.T) {
	path := writeDataset(t, []string{"1"})
	cases := []Settings{
		{Delta: 0, Theta: 0.3, SampleSize: 1, DatasetPath: path},
		{Delta: 0.1, Theta: 1, SampleSize: 1, DatasetPath: path},
		{Delta: 0.1, Theta: 0.3, SampleSize: 0, DatasetPath: path},
	}
	for _, s := range cases {
		_, err := Run(s, mining.FPClose{}, nil, nil)
		require.Error(t, err)
	}
}

// Scenario E from the seed test suite: attribution tie-break. Sample
// {1,2}x2, {2,3}x1 with sp(1)=2, sp(2)=3, sp(3)=1; {1,2} is attributed to
// {1} (its minimum-support member) and {2,3} to {3}.
func TestAttributeTieBreak(t *testing.T) {
	ms := core.NewMultiset()
	ms.Add(core.Itemset{1, 2}, 2)
	ms.Add(core.Itemset{2, 3}, 1)

	q := []core.ItemsetWithInfo{
		{Items: core.Itemset{3}, Info: core.NewItemsetInfo(1)},
		{Items: core.Itemset{1}, Info: core.NewItemsetInfo(2)},
		{Items: core.Itemset{2}, Info: core.NewItemsetInfo(3)},
	}
	Attribute(ms, q)

	require.Equal(t, uint64(1), q[1].Info.HAt(1), "{1} should absorb {1,2}'s excess length once")
	require.Equal(t, uint64(1), q[0].Info.HAt(1), "{3} should absorb {2,3}'s excess length once")
	require.Zero(t, q[2].Info.HAt(1), "{2} should not be attributed anything")
}

// Scenario B from the seed test suite, run end to end: 100 identical
// transactions {1,2}, s=10 -> every itemset left in Q after pruning (the
// closed pair {1,2}) has sample support 10.
func TestRunIdenticalTransactionsScenarioB(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "1 2"
	}
	path := writeDataset(t, lines)
	seed := uint64(2)
	settings := Settings{
		Delta:       0.1,
		Theta:       0.1,
		SampleSize:  10,
		DatasetPath: path,
		Seed:        &seed,
	}
	res, err := Run(settings, mining.FPClose{}, nil, nil)
	require.NoError(t, err)
	for _, iwi := range res.Q {
		require.Equal(t, uint64(10), iwi.Info.Sp, "itemset %v expected support 10", iwi.Items)
	}
}

func TestPatchCoversEveryItem(t *testing.T) {
	itemInfos := map[core.Item]*core.ItemsetInfo{
		1: core.NewItemsetInfo(5),
		2: core.NewItemsetInfo(1),
		3: core.NewItemsetInfo(1),
	}
	var q []core.ItemsetWithInfo
	q = append(q, core.ItemsetWithInfo{Items: core.Itemset{1}, Info: core.NewItemsetInfo(5)})
	q = Patch(q, itemInfos, 2)

	covered := map[core.Item]bool{}
	for _, iwi := range q {
		if len(iwi.Items) == 1 {
			covered[iwi.Items[0]] = true
		}
	}
	for item := range itemInfos {
		require.True(t, covered[item], "item %d not covered by patched Q", item)
	}
}
