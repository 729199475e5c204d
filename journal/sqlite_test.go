package journal

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()

	st := openTestSQLite(t, filepath.Join(t.TempDir(), "test.db"))
	return st
}

func openTestSQLite(t *testing.T, path string) *SQLiteStorage {
	t.Helper()

	st, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	st := newTestSQLite(t)

	full := TradeRecord{
		ID:         "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Pair:       "EUR/USD",
		Session:    SessionNewYork,
		Timeframe:  "M15",
		Direction:  Sell,
		Amount:     decimal.RequireFromString("-12.50"),
		Screenshot: "/charts/eurusd-2.png",
		Comment:    "late entry",
	}

	s := NewStore()
	d := Date{Year: 2024, Month: 3, Day: 5}
	s.Add(d, full)
	s.Add(d, rec("GBP/USD", "25"))
	s.Add(Date{Year: 2023, Month: 12, Day: 31}, rec("Gold", "7"))
	require.NoError(t, st.SaveTrades(s))

	got := st.LoadTrades()
	require.Equal(t, 3, got.Len())

	trades := got.Trades(d)
	require.Len(t, trades, 2)
	assert.Equal(t, full.ID, trades[0].ID)
	assert.Equal(t, full.Session, trades[0].Session)
	assert.Equal(t, full.Screenshot, trades[0].Screenshot)
	assert.Equal(t, full.Comment, trades[0].Comment)
	assert.True(t, trades[0].Amount.Equal(full.Amount))
	assert.Equal(t, "GBP/USD", trades[1].Pair)
}

func TestSQLiteEmptyDatabase(t *testing.T) {
	t.Parallel()

	st := newTestSQLite(t)
	got := st.LoadTrades()
	assert.Equal(t, 0, got.Len())
}

func TestSQLiteSaveOverwrites(t *testing.T) {
	t.Parallel()

	st := newTestSQLite(t)

	s := NewStore()
	d := Date{Year: 2024, Month: 3, Day: 5}
	s.Add(d, rec("EUR/USD", "100"))
	require.NoError(t, st.SaveTrades(s))

	require.NoError(t, s.Delete(d, 0))
	require.NoError(t, st.SaveTrades(s))

	got := st.LoadTrades()
	assert.Equal(t, 0, got.Len())
}

func TestSQLitePairsSeedDefaults(t *testing.T) {
	t.Parallel()

	st := newTestSQLite(t)
	g := st.LoadPairs()
	assert.Equal(t, DefaultPairs, g.Pairs())
}

func TestSQLitePairsEmptiedRegistryStaysEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.db")
	st := openTestSQLite(t, path)

	g := st.LoadPairs()
	for _, p := range g.Pairs() {
		assert.True(t, g.Remove(p))
	}
	require.NoError(t, st.SavePairs(g))

	// Same session and a fresh open of the same database both see the
	// emptied registry; the defaults are seeded only on first creation.
	assert.Equal(t, 0, st.LoadPairs().Len())

	require.NoError(t, st.Close())
	reopened := openTestSQLite(t, path)
	assert.Equal(t, 0, reopened.LoadPairs().Len())
}

func TestSQLitePairsRoundTrip(t *testing.T) {
	t.Parallel()

	st := newTestSQLite(t)

	g := NewRegistry(nil)
	g.Add("USD/CHF")
	g.Add("EUR/USD")
	require.NoError(t, st.SavePairs(g))

	got := st.LoadPairs()
	assert.Equal(t, []string{"USD/CHF", "EUR/USD"}, got.Pairs())
}
