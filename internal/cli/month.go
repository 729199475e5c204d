package cli

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newMonthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show the monthly summary (default current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, month := now.Year(), int(now.Month())
			if len(args) == 1 {
				t, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("parse month %q: %w", args[0], err)
				}
				year, month = t.Year(), int(t.Month())
			}

			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			sum := book.MonthlySummary(year, month)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary for %04d-%02d\n\n", year, month)

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"", "Value"})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)
			table.Append([]string{"P/L", sum.TotalPL.StringFixed(2)})
			table.Append([]string{"Trades", fmt.Sprintf("%d", sum.Trades)})
			table.Append([]string{"Wins", fmt.Sprintf("%d", sum.Wins)})
			table.Append([]string{"Losses", fmt.Sprintf("%d", sum.Losses)})
			table.Append([]string{"Win rate", fmt.Sprintf("%.2f%%", sum.WinRate)})
			table.Append([]string{"Avg win", fmt.Sprintf("%.2f", sum.AvgWin)})
			table.Append([]string{"Avg loss", fmt.Sprintf("%.2f", sum.AvgLoss)})
			table.Append([]string{"Largest win", fmt.Sprintf("%.2f", sum.LargestWin)})
			table.Append([]string{"Largest loss", fmt.Sprintf("%.2f", sum.LargestLoss)})
			table.Append([]string{"Profit factor", fmt.Sprintf("%.2f", sum.ProfitFactor)})
			table.Render()
			return nil
		},
	}
}
