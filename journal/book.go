package journal

import (
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/rustyeddy/tradebook/pkg/id"
)

// Book is the application controller: it owns the in-memory store and the
// instrument registry and keeps both flushed to storage after every
// mutation. Queries go straight to the store and never touch disk.
type Book struct {
	store   *Store
	pairs   *Registry
	storage Storage
}

// Open loads the journal from storage. Load failures have already been
// degraded to safe defaults by the storage layer, so Open always succeeds.
func Open(st Storage) *Book {
	return &Book{
		store:   st.LoadTrades(),
		pairs:   st.LoadPairs(),
		storage: st,
	}
}

// AddTrade validates rec, stamps it with an ID when it has none, appends it
// to the given day and flushes. The store is untouched when validation
// fails.
func (b *Book) AddTrade(d Date, rec TradeRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = id.New()
	}
	b.store.Add(d, rec)
	b.flushTrades()
	return nil
}

// DeleteTrade removes the trade at index i on day d and flushes. The store
// is untouched when the index is out of range.
func (b *Book) DeleteTrade(d Date, i int) error {
	if err := b.store.Delete(d, i); err != nil {
		return err
	}
	b.flushTrades()
	return nil
}

func (b *Book) Trades(d Date) []TradeRecord {
	return b.store.Trades(d)
}

func (b *Book) AllSorted() []Entry {
	return b.store.AllSorted()
}

func (b *Book) MonthlySummary(year, month int) MonthSummary {
	return b.store.MonthlySummary(year, month)
}

func (b *Book) DaySummary(d Date) DaySummary {
	return b.store.DaySummary(d)
}

func (b *Book) YearlyPairBreakdown(year int) map[string]PairSummary {
	return b.store.YearlyPairBreakdown(year)
}

func (b *Book) YearlyTotalPL(year int) decimal.Decimal {
	return b.store.YearlyTotalPL(year)
}

// Pairs returns the instruments offered for trade entry, in registry order.
func (b *Book) Pairs() []string {
	return b.pairs.Pairs()
}

// AddPair registers a new instrument name and flushes. It reports whether
// the registry changed.
func (b *Book) AddPair(name string) bool {
	if !b.pairs.Add(name) {
		return false
	}
	b.flushPairs()
	return true
}

// RemovePair drops an instrument name and flushes, reporting whether it was
// present.
func (b *Book) RemovePair(name string) bool {
	if !b.pairs.Remove(name) {
		return false
	}
	b.flushPairs()
	return true
}

// Close flushes once more and releases the storage backend. State is already
// durable after every mutation; the extra flush covers sessions where an
// earlier save failed.
func (b *Book) Close() error {
	b.flushTrades()
	b.flushPairs()
	return b.storage.Close()
}

// Save failures are diagnostics, not errors: the in-memory state stays
// authoritative and the next successful flush persists it.
func (b *Book) flushTrades() {
	if err := b.storage.SaveTrades(b.store); err != nil {
		log.WithError(err).Error("could not save trades, keeping in-memory state")
	}
}

func (b *Book) flushPairs() {
	if err := b.storage.SavePairs(b.pairs); err != nil {
		log.WithError(err).Error("could not save pairs, keeping in-memory state")
	}
}
