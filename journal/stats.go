package journal

import (
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// MonthSummary aggregates one calendar month.
//
// WinRate is a percentage over all trades in the month; break-even trades
// count toward Trades but are neither wins nor losses. ProfitFactor is gross
// profit over gross loss, 0 when the month has no losing trade.
type MonthSummary struct {
	TotalPL decimal.Decimal
	Trades  int
	Wins    int
	Losses  int
	WinRate float64

	AvgWin       float64
	AvgLoss      float64
	LargestWin   float64
	LargestLoss  float64
	ProfitFactor float64
}

// PairSummary aggregates one instrument across a year.
type PairSummary struct {
	Trades  int
	WinRate float64
}

// DaySummary totals one calendar day, for calendar-style views.
type DaySummary struct {
	TotalPL decimal.Decimal
	Trades  int
}

// MonthlySummary aggregates every trade recorded in the given month. An
// empty month yields the zero summary.
func (s *Store) MonthlySummary(year, month int) MonthSummary {
	var sum MonthSummary
	var winAmts, lossAmts []float64

	for d, recs := range s.days {
		if d.Year != year || d.Month != month {
			continue
		}
		for _, r := range recs {
			sum.Trades++
			sum.TotalPL = sum.TotalPL.Add(r.Amount)
			f, _ := r.Amount.Float64()
			switch {
			case r.Win():
				sum.Wins++
				winAmts = append(winAmts, f)
			case r.Amount.IsNegative():
				sum.Losses++
				lossAmts = append(lossAmts, f)
			}
		}
	}

	if sum.Trades > 0 {
		sum.WinRate = float64(sum.Wins) / float64(sum.Trades) * 100
	}
	if len(winAmts) > 0 {
		sum.AvgWin, _ = stats.Mean(winAmts)
		sum.LargestWin, _ = stats.Max(winAmts)
	}
	if len(lossAmts) > 0 {
		sum.AvgLoss, _ = stats.Mean(lossAmts)
		sum.LargestLoss, _ = stats.Min(lossAmts)
	}
	grossProfit, _ := stats.Sum(winAmts)
	grossLoss, _ := stats.Sum(lossAmts)
	if grossLoss != 0 {
		sum.ProfitFactor = grossProfit / -grossLoss
	}
	return sum
}

// DaySummary totals a single day.
func (s *Store) DaySummary(d Date) DaySummary {
	var sum DaySummary
	for _, r := range s.days[d] {
		sum.Trades++
		sum.TotalPL = sum.TotalPL.Add(r.Amount)
	}
	return sum
}

// YearlyPairBreakdown groups the year's trades by instrument. Pair names are
// matched exactly as recorded, with no normalization against the registry.
func (s *Store) YearlyPairBreakdown(year int) map[string]PairSummary {
	counts := make(map[string]int)
	wins := make(map[string]int)
	for d, recs := range s.days {
		if d.Year != year {
			continue
		}
		for _, r := range recs {
			counts[r.Pair]++
			if r.Win() {
				wins[r.Pair]++
			}
		}
	}

	out := make(map[string]PairSummary, len(counts))
	for pair, n := range counts {
		out[pair] = PairSummary{
			Trades:  n,
			WinRate: float64(wins[pair]) / float64(n) * 100,
		}
	}
	return out
}

// YearlyTotalPL sums every amount recorded in the year.
func (s *Store) YearlyTotalPL(year int) decimal.Decimal {
	total := decimal.Zero
	for d, recs := range s.days {
		if d.Year != year {
			continue
		}
		for _, r := range recs {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// Page slices a sorted listing for paginated display. Pages are numbered
// from zero; an out-of-range page yields an empty slice.
func Page(entries []Entry, page, size int) []Entry {
	if page < 0 || size <= 0 {
		return nil
	}
	start := page * size
	if start >= len(entries) {
		return nil
	}
	end := start + size
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}
