// Distance command prints one shortest ladder found by a single-parent walk.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/ladder"
)

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <start> <end>",
		Short: "Print one shortest ladder and its length in steps",
		Long: `Distance prints one shortest ladder found by a single-parent walk and its
length in steps. A word's distance to itself is zero steps.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.solver.Distance(cmd.Context(), normalizeWord(args[0]), normalizeWord(args[1]))
			switch {
			case errors.Is(err, ladder.ErrNoPath), errors.Is(err, ladder.ErrStartNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "No ladder found.")
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ladder.Format(path))
			fmt.Fprintf(cmd.OutOrStdout(), "hops: %d\n", len(path)-1)
			return nil
		},
	}
}
