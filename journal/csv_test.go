package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVAppendAndList(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calcs.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)

	require.NoError(t, j.Append(testRecord("AAPL")))
	require.NoError(t, j.Append(testRecord("MSFT")))
	require.NoError(t, j.Close())

	j, err = NewCSV(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	got, err := j.List(10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "MSFT", got[0].Symbol)
	assert.Equal(t, "AAPL", got[1].Symbol)
	assert.Equal(t, int64(66), got[0].PositionSize)
}

func TestCSVHeaderWrittenOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calcs.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Append(testRecord("AAPL")))
	require.NoError(t, j.Close())

	// Reopen appends, it must not repeat the header.
	j, err = NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Append(testRecord("MSFT")))
	require.NoError(t, j.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "id,time,asset"))
}

func TestCSVListLimit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calcs.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	for _, s := range []string{"A", "B", "C"} {
		require.NoError(t, j.Append(testRecord(s)))
	}

	got, err := j.List(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C", got[0].Symbol)
}
