// Import command loads a word list into the SQLite lexicon.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/store"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <wordlist>",
		Short: "Import a word list into the SQLite lexicon",
		Long: `Import reads a word list (one word per line) and adds its words to the
database named by --db. Words already present are skipped.

Example:
  wordladder import words.txt --db lexicon.db
  wordladder solve work play --source sqlite --db lexicon.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(a.cfg.DB)
			if err != nil {
				return fmt.Errorf("open lexicon store: %w", err)
			}
			defer st.Close()

			added, err := st.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			total, err := st.Count(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Info("word list imported", "path", args[0], "db", a.cfg.DB, "added", added, "total", total)

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d new words into %s (%d total)\n", added, a.cfg.DB, total)
			return nil
		},
	}
}
