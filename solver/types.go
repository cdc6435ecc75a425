package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Sentinel errors for solver construction.
var (
	// ErrNilProvider is returned by New when no lexicon provider is supplied.
	ErrNilProvider = errors.New("solver: provider is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Pair is one start/end query of a batch.
type Pair struct {
	Start string
	End   string
}

// Answer is the ladder set found for a Pair.
type Answer struct {
	Pair
	Ladders [][]string
}

// Option configures a Solver.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	cache    bool
	maxDepth int
	workers  int
	metrics  *Metrics
	err      error
}

func defaultConfig() config {
	return config{
		logger:  slog.New(slog.DiscardHandler),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the structured logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIndexCache keeps one index per word length across searches.
func WithIndexCache(enabled bool) Option {
	return func(c *config) { c.cache = enabled }
}

// WithMaxDepth caps ladder length in steps; 0 disables the cap.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			c.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		c.maxDepth = d
	}
}

// WithWorkers bounds the number of concurrent searches in SolveAll.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		c.workers = n
	}
}

// WithMetrics records searches and index builds into m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}
