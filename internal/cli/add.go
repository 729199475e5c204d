package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

func newAddCmd(opts *options) *cobra.Command {
	var (
		date       string
		session    string
		timeframe  string
		direction  string
		screenshot string
		comment    string
	)

	cmd := &cobra.Command{
		Use:   "add PAIR AMOUNT",
		Short: "Record a trade (positive amount = profit, negative = loss)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := journal.Today()
			if date != "" {
				var err error
				if d, err = journal.ParseDate(date); err != nil {
					return err
				}
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("amount %q is not a number", args[1])
			}

			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			rec := journal.TradeRecord{
				Pair:       args[0],
				Session:    session,
				Timeframe:  timeframe,
				Direction:  direction,
				Amount:     amount,
				Screenshot: screenshot,
				Comment:    comment,
			}
			if err := book.AddTrade(d, rec); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "recorded %s %s on %s\n", rec.Pair, rec.Amount, d)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Trade date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&session, "session", "", "Trading session: Asia|London|New York")
	cmd.Flags().StringVar(&timeframe, "timeframe", "", "Chart timeframe, e.g. H1")
	cmd.Flags().StringVar(&direction, "direction", "", "Buy or Sell")
	cmd.Flags().StringVar(&screenshot, "screenshot", "", "Path to a chart screenshot")
	cmd.Flags().StringVar(&comment, "comment", "", "Free-form note")

	return cmd
}
