package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <word>",
		Short: "List dictionary words one letter away from word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := a.solver.Neighbors(cmd.Context(), normalizeWord(args[0]))
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}
