// Package ladder provides tunable options, error definitions and result types
// for the level-synchronized ladder search over a wordindex.Index.
package ladder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Sentinel errors for ladder searches.
var (
	// ErrIndexNil is returned if a nil index pointer is passed.
	ErrIndexNil = errors.New("ladder: index is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrStartNotFound is returned by Distances when the start word is not indexed.
	ErrStartNotFound = errors.New("ladder: start word not found")

	// ErrNoPath is returned by DistanceResult.PathTo for unreached words.
	ErrNoPath = errors.New("ladder: no path")
)

// State is a phase of the per-level search machine.
type State int

const (
	// StateSearching expands one level at a time.
	StateSearching State = iota
	// StateFoundAtCurrentLevel means the level just drained produced at least one ladder.
	StateFoundAtCurrentLevel
	// StateExhausted means the next level is empty (or over MaxDepth) and nothing was found.
	StateExhausted
	// StateDone is terminal: results are sorted and returned.
	StateDone
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateFoundAtCurrentLevel:
		return "found"
	case StateExhausted:
		return "exhausted"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Path is a ladder: start word first, each step changing one letter.
type Path []string

// Format joins the words of p with single spaces.
func Format(p Path) string { return strings.Join(p, " ") }

// Result holds the outcome of FindLadders:
//   - Ladders: every shortest ladder, sorted and deduplicated.
//   - Outcome: the state reached just before StateDone.
//   - Levels: number of levels fully expanded.
//   - Expanded: number of paths expanded across all levels.
type Result struct {
	Ladders  []Path
	Outcome  State
	Levels   int
	Expanded int
}

// Found reports whether at least one ladder exists.
func (r *Result) Found() bool { return len(r.Ladders) > 0 }

// Strings returns the ladders as plain string slices.
func (r *Result) Strings() [][]string {
	out := make([][]string, len(r.Ladders))
	for i, p := range r.Ladders {
		out[i] = []string(p)
	}

	return out
}

// Option configures a search via functional arguments.
// An invalid Option is recorded internally and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, rejects ladders longer than MaxDepth steps.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnLevel is called before each level is expanded with the level's
	// depth (steps taken so far) and frontier size.
	OnLevel func(depth, frontier int)

	// Logger receives per-level debug records.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no depth limit
//   - no-op OnLevel hook
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnLevel:  func(int, int) {},
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth caps ladder length in steps.
//
//	d > 0: ladders of at most d steps
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnLevel registers a callback run before each level.
func WithOnLevel(fn func(depth, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithLogger sets the logger used for per-level debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
