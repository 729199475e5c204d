package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "day [DATE]",
		Short: "Show the trades recorded on a day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := argDate(args)
			if err != nil {
				return err
			}

			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			out := cmd.OutOrStdout()
			trades := book.Trades(d)
			if len(trades) == 0 {
				fmt.Fprintf(out, "no trades on %s\n", d)
				return nil
			}

			for i, r := range trades {
				fmt.Fprintf(out, "%d. %s %s %s  %s", i+1, r.Pair, r.Direction, r.Amount, r.Session)
				if r.Timeframe != "" {
					fmt.Fprintf(out, "  %s", r.Timeframe)
				}
				fmt.Fprintln(out)
				if r.Screenshot != "" {
					fmt.Fprintf(out, "   screenshot: %s\n", r.Screenshot)
				}
				if r.Comment != "" {
					fmt.Fprintf(out, "   comment: %s\n", r.Comment)
				}
			}

			sum := book.DaySummary(d)
			fmt.Fprintf(out, "\n%s: %d trades, P/L %s\n", d, sum.Trades, sum.TotalPL.StringFixed(2))
			return nil
		},
	}
}
