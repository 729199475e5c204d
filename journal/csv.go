package journal

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// csvRow flattens an Entry for export, one row per trade.
type csvRow struct {
	Date string `csv:"date"`
	TradeRecord
}

// ExportCSV writes every trade in the journal to w as CSV, oldest day first.
func (b *Book) ExportCSV(w io.Writer) error {
	entries := b.store.AllSorted()
	rows := make([]csvRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, csvRow{Date: e.Date.String(), TradeRecord: e.Trade})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
