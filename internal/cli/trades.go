package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

func newTradesCmd(opts *options) *cobra.Command {
	var (
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "trades",
		Short: "List all trades, oldest first, one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			size := pageSize
			if size <= 0 {
				size = opts.cfg.Display.PageSize
			}

			all := book.AllSorted()
			entries := journal.Page(all, page, size)
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "no trades on this page")
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Date", "Pair", "Dir", "Session", "TF", "Amount", "Comment"})
			for _, e := range entries {
				table.Append([]string{
					e.Date.String(),
					e.Trade.Pair,
					e.Trade.Direction,
					e.Trade.Session,
					e.Trade.Timeframe,
					e.Trade.Amount.StringFixed(2),
					e.Trade.Comment,
				})
			}
			table.Render()

			pages := (len(all) + size - 1) / size
			fmt.Fprintf(out, "page %d of %d (%d trades)\n", page+1, pages, len(all))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number, starting at 0")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Trades per page (default from config)")

	return cmd
}
