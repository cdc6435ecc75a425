// Interactive prompt run by the bare wordladder command.
package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

// runInteractive prompts for start and destination words until either answer
// is empty or input ends.
func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !in.Scan() {
			return "", false
		}
		w := normalizeWord(in.Text())
		return w, w != ""
	}

	for {
		start, ok := ask("Enter start word (RETURN to quit): ")
		if !ok {
			break
		}
		end, ok := ask("Enter destination word: ")
		if !ok {
			break
		}

		ladders, err := a.solver.FindLadders(cmd.Context(), start, end)
		if err != nil {
			return err
		}
		printLadders(out, ladders)
	}
	if err := in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}
