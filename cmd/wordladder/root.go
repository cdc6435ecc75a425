// Root command for the wordladder CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/lexicon"
	"github.com/katalvlaran/wordladder/solver"
	"github.com/katalvlaran/wordladder/store"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	configFile string
	cfg        settings
	logger     *slog.Logger
	solver     *solver.Solver
	closer     io.Closer
}

// execute runs the command tree with args and releases the lexicon afterwards,
// whether or not the command succeeded.
func execute(ctx context.Context, root *cobra.Command, a *app) error {
	err := root.ExecuteContext(ctx)
	if cerr := a.close(); err == nil && cerr != nil {
		err = fmt.Errorf("close lexicon: %w", cerr)
	}

	return err
}

// newRootCmd builds the command tree for a. Running it without a subcommand
// starts the interactive prompt.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "wordladder",
		Short: "Find every shortest word ladder between two words",
		Long: `wordladder finds all shortest ladders between two words of equal length,
where each step changes exactly one letter and every step is a dictionary word.

Without a subcommand it prompts for word pairs until an empty line is entered.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ./wordladder.yaml or ~/.wordladder/wordladder.yaml)")
	pf.String("words", "words.txt", "word list file, one word per line")
	pf.String("db", "wordladder.db", "SQLite lexicon database")
	pf.String("source", sourceFile, "lexicon source: file or sqlite")
	pf.Bool("cache", false, "keep one adjacency index per word length")
	pf.Int("max-depth", 0, "longest ladder to search for in steps (0: unlimited)")
	pf.Int("workers", runtime.GOMAXPROCS(0), "concurrent searches in batch mode")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newSolveCmd(a),
		newNeighborsCmd(a),
		newDistanceCmd(a),
		newBatchCmd(a),
		newImportCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads configuration and, for commands that search, opens the lexicon
// and builds the solver.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(a.configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	if cmd.Name() == "import" {
		return nil
	}

	provider, err := a.openProvider()
	if err != nil {
		return err
	}
	s, err := solver.New(provider,
		solver.WithLogger(logger),
		solver.WithIndexCache(cfg.Cache),
		solver.WithMaxDepth(cfg.MaxDepth),
		solver.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return fmt.Errorf("create solver: %w", err)
	}
	a.solver = s

	return nil
}

// openProvider returns the lexicon named by the source setting.
func (a *app) openProvider() (lexicon.Provider, error) {
	switch a.cfg.Source {
	case sourceSQLite:
		st, err := store.Open(a.cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("open lexicon store: %w", err)
		}
		a.closer = st
		a.logger.Debug("lexicon opened", "source", sourceSQLite, "db", a.cfg.DB)
		return st, nil
	default:
		mem, err := lexicon.LoadFile(a.cfg.Words)
		if err != nil {
			return nil, fmt.Errorf("load word list: %w", err)
		}
		a.logger.Debug("lexicon loaded", "source", sourceFile, "path", a.cfg.Words, "words", mem.Len())
		return mem, nil
	}
}

func (a *app) close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil

	return err
}
