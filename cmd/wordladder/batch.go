// Batch command solves many word pairs read from a file.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/solver"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Solve every \"start end\" pair listed in a file",
		Long: `Batch reads one "start end" pair per line, solves the pairs concurrently
and prints the answers in input order. Blank lines and lines starting
with # are skipped. Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open batch file: %w", err)
				}
				defer f.Close()
				r = f
			}

			pairs, err := readPairs(r)
			if err != nil {
				return err
			}
			answers, err := a.solver.SolveAll(cmd.Context(), pairs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, ans := range answers {
				fmt.Fprintf(out, "%s -> %s\n", ans.Start, ans.End)
				printLadders(out, ans.Ladders)
			}
			return nil
		},
	}
}

// readPairs parses "start end" lines.
func readPairs(r io.Reader) ([]solver.Pair, error) {
	var pairs []solver.Pair
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("batch line %d: want \"start end\", got %q", line, text)
		}
		pairs = append(pairs, solver.Pair{Start: normalizeWord(fields[0]), End: normalizeWord(fields[1])})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	return pairs, nil
}
