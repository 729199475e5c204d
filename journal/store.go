package journal

import (
	"fmt"
	"sort"
)

// Store is the canonical in-memory ledger: a mapping from calendar day to
// the trades recorded on it, in entry order. Everything else — summaries,
// breakdowns, exports — is derived from it on demand. A Store is owned by a
// single Book and never touched concurrently.
type Store struct {
	days map[Date][]TradeRecord
}

func NewStore() *Store {
	return &Store{days: make(map[Date][]TradeRecord)}
}

// Add appends rec to the given day, creating the day on first use. Duplicate
// records are allowed; the journal records whatever the trader enters.
func (s *Store) Add(d Date, rec TradeRecord) {
	s.days[d] = append(s.days[d], rec)
}

// Delete removes the trade at index i on day d. When the last trade of a day
// goes, the day goes with it, so no day ever maps to an empty list.
func (s *Store) Delete(d Date, i int) error {
	recs, ok := s.days[d]
	if !ok {
		return fmt.Errorf("no trades on %s", d)
	}
	if i < 0 || i >= len(recs) {
		return fmt.Errorf("trade index %d out of range on %s (have %d)", i, d, len(recs))
	}
	recs = append(recs[:i], recs[i+1:]...)
	if len(recs) == 0 {
		delete(s.days, d)
		return nil
	}
	s.days[d] = recs
	return nil
}

// Trades returns the trades recorded on d in entry order. The returned slice
// is the store's own; callers must not mutate it.
func (s *Store) Trades(d Date) []TradeRecord {
	return s.days[d]
}

// Len returns the total number of trades across all days.
func (s *Store) Len() int {
	n := 0
	for _, recs := range s.days {
		n += len(recs)
	}
	return n
}

// Days returns the number of days carrying at least one trade.
func (s *Store) Days() int {
	return len(s.days)
}

// Repair drops malformed entries left behind by corrupt or hand-edited data
// files: days that are not plausible calendar dates, and records without a
// pair. It returns the number of records discarded. Running it twice yields
// the same store as running it once.
func (s *Store) Repair() int {
	dropped := 0
	for d, recs := range s.days {
		if !d.Valid() {
			dropped += len(recs)
			delete(s.days, d)
			continue
		}
		kept := recs[:0]
		for _, r := range recs {
			if r.Validate() != nil {
				dropped++
				continue
			}
			kept = append(kept, r)
		}
		if len(kept) == 0 {
			delete(s.days, d)
			continue
		}
		s.days[d] = kept
	}
	return dropped
}

// Entry pairs a trade with the day it was recorded on.
type Entry struct {
	Date  Date
	Trade TradeRecord
}

// AllSorted returns every trade in the store ordered by day, oldest first.
// Trades within a day keep their entry order. The listing is rebuilt on
// every call so it always reflects the current store.
func (s *Store) AllSorted() []Entry {
	dates := make([]Date, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]Entry, 0, s.Len())
	for _, d := range dates {
		for _, r := range s.days[d] {
			out = append(out, Entry{Date: d, Trade: r})
		}
	}
	return out
}
