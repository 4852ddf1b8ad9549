package main

import (
	"github.com/g-m-twostay/go-trees/Bench"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <results file>",
		Short: "Print saved results as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := Bench.LoadResults(args[0])
			if err != nil {
				return err
			}
			return Bench.Render(cmd.OutOrStdout(), res)
		},
	}
}
