package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export all trades as CSV (to stdout when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			if len(args) == 0 {
				return book.ExportCSV(cmd.OutOrStdout())
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			defer f.Close()

			if err := book.ExportCSV(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", args[0])
			return nil
		},
	}
}
