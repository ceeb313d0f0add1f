// Package dataset probes a flat-text transaction dataset for its size and
// parses transaction lines.
package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/amira-go/amira/internal/amiraerr"
	"github.com/amira-go/amira/internal/core"
)

const (
	metaPrefix = "#"
	sizeMeta   = "# size:"
)

// Size scans path line by line and returns the number of transactions.
// A line whose first non-blank byte is '#' is metadata; when useMetadata is
// true and the line starts with the literal prefix "# size:", the remainder
// is parsed as the dataset size and returned immediately. Otherwise
// non-metadata lines are counted to EOF.
func Size(path string, useMetadata bool) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, amiraerr.NewIo("opening dataset", err)
	}
	defer f.Close()

	var count uint64
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimLeft(sc.Text(), " \t")
		if strings.HasPrefix(line, metaPrefix) {
			if useMetadata && strings.HasPrefix(line, sizeMeta) {
				rest := strings.TrimSpace(line[len(sizeMeta):])
				n, err := strconv.ParseUint(rest, 10, 64)
				if err != nil {
					return 0, amiraerr.NewParse("malformed \"# size:\" metadata line", err)
				}
				return n, nil
			}
			continue
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return 0, amiraerr.NewIo("reading dataset", err)
	}
	return count, nil
}

// ParseTransaction splits a transaction line into an ascending-sorted
// Itemset of whitespace-separated nonnegative integers. An empty line yields
// an empty (but non-nil-checked) itemset.
func ParseTransaction(line string) (core.Itemset, error) {
	fields := strings.Fields(line)
	items := make(core.Itemset, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, amiraerr.NewParse("malformed item token "+strconv.Quote(f), err)
		}
		items = append(items, core.Item(v))
	}
	items.Sort()
	return items, nil
}

// IsMetadata reports whether line is a metadata line (first non-blank byte
// '#').
func IsMetadata(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), metaPrefix)
}
