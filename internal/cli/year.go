package cli

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newYearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "year [YYYY]",
		Short: "Show the yearly total and per-pair breakdown (default current year)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := time.Now().Year()
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil || y <= 0 {
					return fmt.Errorf("year %q must be a positive integer", args[0])
				}
				year = y
			}

			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total P/L for %d: %s\n\n", year, book.YearlyTotalPL(year).StringFixed(2))

			breakdown := book.YearlyPairBreakdown(year)
			if len(breakdown) == 0 {
				fmt.Fprintln(out, "no trades recorded")
				return nil
			}

			pairs := make([]string, 0, len(breakdown))
			for pair := range breakdown {
				pairs = append(pairs, pair)
			}
			sort.Strings(pairs)

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Pair", "Trades", "Win rate"})
			for _, pair := range pairs {
				ps := breakdown[pair]
				table.Append([]string{
					pair,
					fmt.Sprintf("%d", ps.Trades),
					fmt.Sprintf("%.2f%%", ps.WinRate),
				})
			}
			table.Render()
			return nil
		},
	}
}
