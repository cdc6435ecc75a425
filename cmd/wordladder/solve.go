// Solve command runs one ladder search.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "solve <start> <end>",
		Short: "Print every shortest ladder between two words",
		Long: `Solve finds every shortest ladder from start to end and prints them
sorted, one per line.

Example:
  wordladder solve work play
  wordladder solve --json cat dog`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ladders, err := a.solver.FindLadders(cmd.Context(), normalizeWord(args[0]), normalizeWord(args[1]))
			if err != nil {
				return err
			}
			if !asJSON {
				printLadders(cmd.OutOrStdout(), ladders)
				return nil
			}

			data, err := json.Marshal(ladders)
			if err != nil {
				return fmt.Errorf("marshal ladders: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the ladder set as JSON")

	return cmd
}
