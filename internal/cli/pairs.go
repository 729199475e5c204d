package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPairsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Manage the instruments offered for trade entry",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered instruments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			for _, p := range book.Pairs() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Register a new instrument",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			if !book.AddPair(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already registered\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an instrument",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := opts.openBook()
			if err != nil {
				return err
			}
			defer book.Close()

			if !book.RemovePair(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not registered\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	})

	return cmd
}
