package output

import (
	"fmt"
	"io"
)

// WritePlaintext renders req in the plaintext external format: an optional
// settings block, an optional run block, the always-present eps line, an
// optional runtimes block, and the itemsets section unless NoItemsets is
// set.
func WritePlaintext(w io.Writer, req Request) error {
	s, r := req.Settings, req.Result

	if s.Full {
		fmt.Fprintf(w, "algorithm: amira\n")
		fmt.Fprintf(w, "dataset: %s\n", s.DatasetPath)
		fmt.Fprintf(w, "samplesize: %d\n", s.SampleSize)
		fmt.Fprintf(w, "minimum_frequency: %v\n", s.Theta)
		fmt.Fprintf(w, "failure_probability: %v\n", s.Delta)
		fmt.Fprintf(w, "printclosed: %v\n", s.PrintClosed)
		fmt.Fprintf(w, "skipsecond: %v\n", s.SkipSecond)
		fmt.Fprintf(w, "sample: %s\n", s.SampleOutPath)

		fmt.Fprintf(w, "omega1: %v\n", r.Omega1)
		fmt.Fprintf(w, "rho1: %v\n", r.Rho1)
		fmt.Fprintf(w, "freq1: %v\n", r.Freq1)
		fmt.Fprintf(w, "supp1: %d\n", r.Supp1)
		fmt.Fprintf(w, "cfis1: %d\n", r.Cfis1)
		fmt.Fprintf(w, "omega2: %v\n", r.Omega2)
		fmt.Fprintf(w, "rho2: %v\n", r.Rho2)
		fmt.Fprintf(w, "freq2: %v\n", r.Freq2)
		fmt.Fprintf(w, "supp2: %d\n", r.Supp2)
		fmt.Fprintf(w, "cfis2: %d\n", r.Cfis2)
	}

	fmt.Fprintf(w, "eps: %v\n", r.Eps)

	if s.Full {
		fmt.Fprintf(w, "total: %d\n", r.Runtimes.Total)
		fmt.Fprintf(w, "create_sample: %d\n", r.Runtimes.CreateSample)
		fmt.Fprintf(w, "get_rho1: %d\n", r.Runtimes.GetRho1)
		fmt.Fprintf(w, "mine: %d\n", r.Runtimes.Mine)
		fmt.Fprintf(w, "get_rho2: %d\n", r.Runtimes.GetRho2)
		fmt.Fprintf(w, "prune: %d\n", r.Runtimes.Prune)
	}

	if s.NoItemsets {
		return nil
	}
	for _, iwi := range r.Q {
		key := itemsetKey(iwi.Items, " ")
		fmt.Fprintf(w, "%s (%d)\n", key, iwi.Info.Sp)
	}
	return nil
}
