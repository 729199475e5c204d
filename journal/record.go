package journal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Session labels offered by the entry form. Stored as free text so files
// written with other labels still load.
const (
	SessionAsia    = "Asia"
	SessionLondon  = "London"
	SessionNewYork = "New York"
)

// Trade directions.
const (
	Buy  = "Buy"
	Sell = "Sell"
)

// TradeRecord is one executed trade as the trader recorded it. Amount is the
// realized outcome in account currency, positive for a win and negative for
// a loss. Screenshot holds a path to a chart image on disk; the journal only
// ever stores the path, never the image bytes.
type TradeRecord struct {
	ID         string          `json:"id,omitempty" csv:"id"`
	Pair       string          `json:"pair" csv:"pair"`
	Session    string          `json:"session,omitempty" csv:"session"`
	Timeframe  string          `json:"timeframe,omitempty" csv:"timeframe"`
	Direction  string          `json:"direction,omitempty" csv:"direction"`
	Amount     decimal.Decimal `json:"amount" csv:"amount"`
	Screenshot string          `json:"screenshot,omitempty" csv:"screenshot"`
	Comment    string          `json:"comment,omitempty" csv:"comment"`
}

// Validate reports whether the record carries the minimum a journal entry
// needs: an instrument name. Amount is always well-formed by type.
func (r TradeRecord) Validate() error {
	if strings.TrimSpace(r.Pair) == "" {
		return fmt.Errorf("trade record needs a pair")
	}
	return nil
}

// Win reports whether the trade closed with a positive amount. Break-even
// trades are not wins.
func (r TradeRecord) Win() bool {
	return r.Amount.IsPositive()
}
