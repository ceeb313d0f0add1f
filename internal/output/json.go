package output

import (
	"encoding/json"
	"io"
)

type settingsBlock struct {
	Algorithm          string  `json:"algorithm"`
	Dataset            string  `json:"dataset"`
	SampleSize         uint64  `json:"samplesize"`
	MinimumFrequency   float64 `json:"minimum_frequency"`
	FailureProbability float64 `json:"failure_probability"`
	PrintClosed        bool    `json:"printclosed"`
	SkipSecond         bool    `json:"skipsecond"`
	Sample             string  `json:"sample"`
}

type runBlock struct {
	Omega1 float64 `json:"omega1"`
	Rho1   float64 `json:"rho1"`
	Freq1  float64 `json:"freq1"`
	Supp1  uint64  `json:"supp1"`
	Cfis1  int     `json:"cfis1"`
	Omega2 float64 `json:"omega2"`
	Rho2   float64 `json:"rho2"`
	Freq2  float64 `json:"freq2"`
	Supp2  uint64  `json:"supp2"`
	Cfis2  int     `json:"cfis2"`
}

type runtimesBlock struct {
	Total        int64 `json:"total"`
	CreateSample int64 `json:"create_sample"`
	GetRho1      int64 `json:"get_rho1"`
	Mine         int64 `json:"mine"`
	GetRho2      int64 `json:"get_rho2"`
	Prune        int64 `json:"prune"`
}

type document struct {
	Settings *settingsBlock    `json:"settings,omitempty"`
	Run      *runBlock         `json:"run,omitempty"`
	Eps      float64           `json:"eps"`
	Runtimes *runtimesBlock    `json:"runtimes,omitempty"`
	Itemsets map[string]uint64 `json:"itemsets,omitempty"`
}

// WriteJSON renders req as a single JSON object with the same optional
// blocks as the plaintext format: settings and run appear only under -f,
// itemsets is omitted under -n. Itemset keys join their items with
// underscores; the empty itemset is encoded with the key "*".
func WriteJSON(w io.Writer, req Request) error {
	s, r := req.Settings, req.Result

	doc := document{Eps: r.Eps}

	if s.Full {
		doc.Settings = &settingsBlock{
			Algorithm:          "amira",
			Dataset:            s.DatasetPath,
			SampleSize:         s.SampleSize,
			MinimumFrequency:   s.Theta,
			FailureProbability: s.Delta,
			PrintClosed:        s.PrintClosed,
			SkipSecond:         s.SkipSecond,
			Sample:             s.SampleOutPath,
		}
		doc.Run = &runBlock{
			Omega1: r.Omega1, Rho1: r.Rho1, Freq1: r.Freq1, Supp1: r.Supp1, Cfis1: r.Cfis1,
			Omega2: r.Omega2, Rho2: r.Rho2, Freq2: r.Freq2, Supp2: r.Supp2, Cfis2: r.Cfis2,
		}
		doc.Runtimes = &runtimesBlock{
			Total:        r.Runtimes.Total,
			CreateSample: r.Runtimes.CreateSample,
			GetRho1:      r.Runtimes.GetRho1,
			Mine:         r.Runtimes.Mine,
			GetRho2:      r.Runtimes.GetRho2,
			Prune:        r.Runtimes.Prune,
		}
	}

	if !s.NoItemsets {
		items := make(map[string]uint64, len(r.Q))
		for _, iwi := range r.Q {
			key := itemsetKey(iwi.Items, "_")
			if key == "" {
				key = "*"
			}
			items[key] = iwi.Info.Sp
		}
		doc.Itemsets = items
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
