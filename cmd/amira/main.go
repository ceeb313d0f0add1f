package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amira-go/amira/internal/bounds"
	"github.com/amira-go/amira/internal/expand"
	"github.com/amira-go/amira/internal/logging"
	"github.com/amira-go/amira/internal/mining"
	"github.com/amira-go/amira/internal/output"
	"github.com/amira-go/amira/internal/pipeline"
)

var (
	flagPrintClosed     bool
	flagDatasetSize     int64
	flagFull            bool
	flagIgnoreFrequency float64
	flagJSON            bool
	flagNoItemsets      bool
	flagSkipSecond      bool
	flagSampleOutPath   string
	flagVerbose         bool
)

func main() {
	root := &cobra.Command{
		Use:   "amira delta theta samplesize dataset",
		Short: "Approximate frequent/closed itemset mining with Rademacher-average quality guarantees",
		Args:  cobra.ExactArgs(4),
		RunE:  run,
	}

	root.Flags().BoolVarP(&flagPrintClosed, "closed", "c", false, "emit closed frequent itemsets rather than all frequent itemsets")
	root.Flags().Int64VarP(&flagDatasetSize, "dataset-size", "d", -1, "override the auto-detected dataset size")
	root.Flags().BoolVarP(&flagFull, "full", "f", false, "verbose output: settings, run, and runtimes blocks")
	root.Flags().Float64VarP(&flagIgnoreFrequency, "ignore-frequency", "i", 0, "exclude items below this sample frequency from the first bound")
	root.Flags().BoolVarP(&flagJSON, "json", "j", false, "emit JSON instead of plaintext")
	root.Flags().BoolVarP(&flagNoItemsets, "no-itemsets", "n", false, "suppress the itemsets section of the output")
	root.Flags().BoolVarP(&flagSkipSecond, "skip-second", "p", false, "skip computation of the second bound")
	root.Flags().StringVarP(&flagSampleOutPath, "sample-out", "s", "", "write the sampled transactions to this file")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log progress to standard error")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	delta, theta, sampleSize, datasetPath, err := parsePositional(args)
	if err != nil {
		return err
	}

	settings := pipeline.Settings{
		Delta:         delta,
		Theta:         theta,
		SampleSize:    sampleSize,
		DatasetPath:   datasetPath,
		PrintClosed:   flagPrintClosed,
		Full:          flagFull,
		JSON:          flagJSON,
		NoItemsets:    flagNoItemsets,
		SkipSecond:    flagSkipSecond,
		SampleOutPath: flagSampleOutPath,
		Verbose:       flagVerbose,
	}
	if flagDatasetSize >= 0 {
		n := uint64(flagDatasetSize)
		settings.DatasetSize = &n
	}
	if flagIgnoreFrequency > 0 {
		f := flagIgnoreFrequency
		settings.IgnoreFrequency = &f
	}

	logger := logging.NewStderr(flagVerbose)

	result, err := pipeline.Run(settings, mining.FPClose{}, bounds.DefaultOptimizer, logger)
	if err != nil {
		return err
	}

	q := result.Q
	if !flagPrintClosed {
		q = expand.ToFIs(q)
		result.Q = q
	}

	req := output.Request{Settings: settings, Result: result}
	if flagJSON {
		return output.WriteJSON(cmd.OutOrStdout(), req)
	}
	return output.WritePlaintext(cmd.OutOrStdout(), req)
}

func parsePositional(args []string) (delta, theta float64, sampleSize uint64, dataset string, err error) {
	if _, err = fmt.Sscanf(args[0], "%g", &delta); err != nil {
		return 0, 0, 0, "", fmt.Errorf("parsing delta: %w", err)
	}
	if _, err = fmt.Sscanf(args[1], "%g", &theta); err != nil {
		return 0, 0, 0, "", fmt.Errorf("parsing theta: %w", err)
	}
	var s int64
	if _, err = fmt.Sscanf(args[2], "%d", &s); err != nil || s <= 0 {
		return 0, 0, 0, "", fmt.Errorf("samplesize must be a positive integer")
	}
	return delta, theta, uint64(s), args[3], nil
}
