package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete DATE N",
		Short: "Delete trade number N of a day, as numbered by 'day'",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := journal.ParseDate(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("trade number %q must be a positive integer", args[1])
			}

			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			if err := book.DeleteTrade(d, n-1); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted trade %d on %s\n", n, d)
			return nil
		},
	}
}
