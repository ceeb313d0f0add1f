package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestSizeWithoutMetadata(t *testing.T) {
	p := writeTemp(t, "1 2 3\n4 5\n\n6\n")
	n, err := Size(p, true)
	require.NoError(t, err)
	require.Equal(t, uint64(4), n)
}

func TestSizeMetadataPreferred(t *testing.T) {
	p := writeTemp(t, "# size: 7\n1 2\n3 4\n")
	n, err := Size(p, true)
	require.NoError(t, err)
	require.Equal(t, uint64(7), n)

	n2, err := Size(p, false)
	require.NoError(t, err)
	require.Equal(t, uint64(2), n2)
}

func TestSizeMissingFile(t *testing.T) {
	_, err := Size(filepath.Join(t.TempDir(), "nope.txt"), true)
	require.Error(t, err)
}

func TestParseTransactionSortsAscending(t *testing.T) {
	its, err := ParseTransaction("3 1 2")
	require.NoError(t, err)
	want := []int{1, 2, 3}
	for i, w := range want {
		require.Equal(t, w, int(its[i]))
	}
}

func TestParseTransactionEmpty(t *testing.T) {
	its, err := ParseTransaction("")
	require.NoError(t, err)
	require.Empty(t, its)
}

func TestParseTransactionMalformed(t *testing.T) {
	_, err := ParseTransaction("1 two 3")
	require.Error(t, err)
}
