package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/sizer/pkg/id"
)

func newTestSQLite(t *testing.T) (*SQLiteJournal, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func testRecord(symbol string) Record {
	return Record{
		ID:            id.New(),
		Time:          time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC),
		Asset:         "EQUITY",
		Method:        "PERCENTAGE",
		Symbol:        symbol,
		Direction:     "LONG",
		PositionSize:  66,
		RiskAmount:    decimal.NewFromInt(200),
		EstimatedRisk: decimal.NewFromInt(198),
		Warnings:      "",
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='calculations'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "calculations", name)
}

func TestSQLiteAppendAndList(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	first := testRecord("AAPL")
	second := testRecord("MSFT")
	require.NoError(t, j.Append(first))
	require.NoError(t, j.Append(second))

	got, err := j.List(10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first: ULIDs are time-ordered, second was created later.
	assert.Equal(t, "MSFT", got[0].Symbol)
	assert.Equal(t, "AAPL", got[1].Symbol)
	assert.True(t, got[1].RiskAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, got[1].EstimatedRisk.Equal(decimal.NewFromInt(198)))
	assert.Equal(t, int64(66), got[1].PositionSize)
}

func TestSQLiteListLimit(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	for _, s := range []string{"A", "B", "C"} {
		require.NoError(t, j.Append(testRecord(s)))
	}

	got, err := j.List(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C", got[0].Symbol)
}
