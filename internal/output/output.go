// Package output renders a pipeline.Result as plaintext or JSON, matching
// the external interface's settings/run/runtimes/itemsets blocks.
package output

import (
	"strconv"
	"strings"

	"github.com/amira-go/amira/internal/core"
	"github.com/amira-go/amira/internal/pipeline"
)

// Request bundles everything a renderer needs: the run result plus the
// subset of settings that feed into the reported settings block.
type Request struct {
	Settings pipeline.Settings
	Result   *pipeline.Result
}

func itemsetKey(items core.Itemset, sep string) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = strconv.FormatUint(uint64(it), 10)
	}
	return strings.Join(parts, sep)
}
