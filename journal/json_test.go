package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJSON(t *testing.T) (*JSONStorage, string) {
	t.Helper()

	dir := t.TempDir()
	st, err := NewJSONStorage(dir)
	require.NoError(t, err)
	return st, dir
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	st, _ := newTestJSON(t)

	full := TradeRecord{
		ID:         "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Pair:       "EUR/USD",
		Session:    SessionLondon,
		Timeframe:  "H1",
		Direction:  Buy,
		Amount:     decimal.RequireFromString("123.45"),
		Screenshot: "/charts/eurusd-1.png",
		Comment:    "breakout retest",
	}
	bare := rec("GBP/USD", "-0.5")

	s := NewStore()
	s.Add(Date{Year: 2024, Month: 3, Day: 5}, full)
	s.Add(Date{Year: 2024, Month: 3, Day: 5}, bare)
	s.Add(Date{Year: 2023, Month: 12, Day: 31}, rec("Gold", "7"))
	require.NoError(t, st.SaveTrades(s))

	got := st.LoadTrades()
	require.Equal(t, 3, got.Len())

	trades := got.Trades(Date{Year: 2024, Month: 3, Day: 5})
	require.Len(t, trades, 2)
	assert.Equal(t, full, trades[0])
	assert.Equal(t, bare, trades[1])
}

func TestJSONLoadMissingFile(t *testing.T) {
	t.Parallel()

	st, _ := newTestJSON(t)
	got := st.LoadTrades()
	assert.Equal(t, 0, got.Len())
}

func TestJSONLoadCorruptFile(t *testing.T) {
	t.Parallel()

	st, dir := newTestJSON(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, tradesFile), []byte("not json {"), 0644))

	got := st.LoadTrades()
	assert.Equal(t, 0, got.Len())
}

func TestJSONLoadDropsMalformedEntries(t *testing.T) {
	t.Parallel()

	st, dir := newTestJSON(t)

	// One good day, one bad key, one bad value shape, and within the good
	// day one record missing its amount.
	blob := `{
		"2024-03-05": [
			{"pair": "EUR/USD", "amount": 100},
			{"pair": "USD/JPY"},
			{"amount": 5},
			{"pair": "GBP/USD", "amount": "-40"}
		],
		"garbage-key": [{"pair": "EUR/USD", "amount": 1}],
		"2024-04-31": [{"pair": "AUD/USD", "amount": 2}],
		"2024-05-01": "not a list"
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, tradesFile), []byte(blob), 0644))

	got := st.LoadTrades()
	assert.Equal(t, 3, got.Len())

	trades := got.Trades(Date{Year: 2024, Month: 3, Day: 5})
	require.Len(t, trades, 2)
	assert.Equal(t, "EUR/USD", trades[0].Pair)
	assert.Equal(t, "GBP/USD", trades[1].Pair)

	// The loosely-dated day survives.
	assert.Len(t, got.Trades(Date{Year: 2024, Month: 4, Day: 31}), 1)
}

func TestJSONLoadDiagnosticsAreAccurate(t *testing.T) {
	// Not parallel: inspects the global logger.
	hook := logtest.NewGlobal()
	defer hook.Reset()

	st, dir := newTestJSON(t)
	blob := `{
		"garbage-key": [{"pair": "EUR/USD", "amount": 1}],
		"2024-05-01": "not a list",
		"2024-03-05": [
			{"pair": "EUR/USD", "amount": 100},
			{"amount": 5}
		]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, tradesFile), []byte(blob), 0644))

	got := st.LoadTrades()
	assert.Equal(t, 1, got.Len())

	path := filepath.Join(dir, tradesFile)
	var keys []string
	dropped := -1
	for _, e := range hook.AllEntries() {
		if e.Data["path"] != path {
			continue
		}
		if v, ok := e.Data["keys"].([]string); ok {
			keys = v
		}
		if v, ok := e.Data["dropped"].(int); ok {
			dropped = v
		}
	}

	// Unusable days are reported by key, not folded into the record count.
	assert.Equal(t, []string{"2024-05-01", "garbage-key"}, keys)
	assert.Equal(t, 1, dropped)
}

func TestJSONPairsDefaultWhenMissing(t *testing.T) {
	t.Parallel()

	st, _ := newTestJSON(t)
	g := st.LoadPairs()
	assert.Equal(t, DefaultPairs, g.Pairs())
}

func TestJSONPairsDefaultWhenCorrupt(t *testing.T) {
	t.Parallel()

	st, dir := newTestJSON(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, pairsFile), []byte("{{{"), 0644))
	g := st.LoadPairs()
	assert.Equal(t, DefaultPairs, g.Pairs())
}

func TestJSONPairsRoundTrip(t *testing.T) {
	t.Parallel()

	st, _ := newTestJSON(t)

	g := NewRegistry(nil)
	g.Add("EUR/USD")
	g.Add("BTC/USD")
	require.NoError(t, st.SavePairs(g))

	got := st.LoadPairs()
	assert.Equal(t, []string{"EUR/USD", "BTC/USD"}, got.Pairs())
}

func TestJSONSaveOverwrites(t *testing.T) {
	t.Parallel()

	st, _ := newTestJSON(t)

	s := NewStore()
	d := Date{Year: 2024, Month: 3, Day: 5}
	s.Add(d, rec("EUR/USD", "100"))
	require.NoError(t, st.SaveTrades(s))

	require.NoError(t, s.Delete(d, 0))
	require.NoError(t, st.SaveTrades(s))

	got := st.LoadTrades()
	assert.Equal(t, 0, got.Len())
}
