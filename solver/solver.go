package solver

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
	"github.com/katalvlaran/wordladder/wordindex"
)

// Solver answers ladder queries against a lexicon.Provider.
// It is safe for concurrent use.
type Solver struct {
	provider lexicon.Provider
	cfg      config

	mu     sync.RWMutex
	cache  map[int]*wordindex.Index // word length → index, when caching
	gen    uint64                   // bumped by ResetCache
	flight singleflight.Group
}

// New returns a Solver over p.
func New(p lexicon.Provider, opts ...Option) (*Solver, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Solver{
		provider: p,
		cfg:      cfg,
		cache:    make(map[int]*wordindex.Index),
	}, nil
}

// FindLadders returns every shortest ladder from start to end, sorted.
// A length mismatch or unknown word yields an empty, non-nil result.
func (s *Solver) FindLadders(ctx context.Context, start, end string) ([][]string, error) {
	res, err := s.Search(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return res.Strings(), nil
}

// Search is FindLadders with the full search statistics.
func (s *Solver) Search(ctx context.Context, start, end string) (*ladder.Result, error) {
	if start == "" || len(start) != len(end) {
		s.cfg.logger.Debug("ladder search skipped: length mismatch", "start", start, "end", end)
		s.cfg.metrics.observeSearch(ladder.StateExhausted.String(), 0, 0)
		return &ladder.Result{Outcome: ladder.StateExhausted}, nil
	}

	began := time.Now()
	idx, err := s.Index(ctx, len(start))
	if err != nil {
		s.cfg.metrics.observeSearch("error", time.Since(began), 0)
		return nil, err
	}

	return s.search(ctx, start, end, idx, began)
}

// search runs one ladder search over a ready index and reports it.
func (s *Solver) search(ctx context.Context, start, end string, idx *wordindex.Index, began time.Time) (*ladder.Result, error) {
	log := s.cfg.logger.With("search", newSearchID(), "start", start, "end", end)

	res, err := ladder.FindLadders(start, end, idx,
		ladder.WithContext(ctx),
		ladder.WithMaxDepth(s.cfg.maxDepth),
		ladder.WithLogger(log),
	)
	elapsed := time.Since(began)
	if err != nil {
		log.Warn("ladder search failed", "err", err, "elapsed", elapsed)
		s.cfg.metrics.observeSearch("error", elapsed, 0)
		return nil, fmt.Errorf("solver: search %s→%s: %w", start, end, err)
	}

	log.Info("ladder search finished",
		slog.String("outcome", res.Outcome.String()),
		slog.Int("ladders", len(res.Ladders)),
		slog.Int("levels", res.Levels),
		slog.Int("expanded", res.Expanded),
		slog.Duration("elapsed", elapsed),
	)
	s.cfg.metrics.observeSearch(res.Outcome.String(), elapsed, len(res.Ladders))

	return res, nil
}

// Index returns the adjacency index for words of length n, building it from the
// provider. With the cache enabled the index is built once per length and
// concurrent callers share that build. The shared build does not inherit any
// caller's cancellation; each caller stops waiting when its own ctx is done.
func (s *Solver) Index(ctx context.Context, n int) (*wordindex.Index, error) {
	if !s.cfg.cache {
		return s.buildIndex(ctx, n)
	}
	if idx, ok := s.cached(n); ok {
		return idx, nil
	}

	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()

	buildCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(strconv.FormatUint(gen, 10)+"/"+strconv.Itoa(n), func() (any, error) {
		if idx, ok := s.cached(n); ok {
			return idx, nil
		}
		idx, err := s.buildIndex(buildCtx, n)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		if s.gen == gen {
			s.cache[n] = idx
		}
		s.mu.Unlock()
		return idx, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*wordindex.Index), nil
	}
}

// ResetCache drops every cached index. Builds already in flight still answer
// their callers but are not cached.
func (s *Solver) ResetCache() {
	s.mu.Lock()
	s.cache = make(map[int]*wordindex.Index)
	s.gen++
	s.mu.Unlock()
}

func (s *Solver) cached(n int) (*wordindex.Index, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.cache[n]

	return idx, ok
}

func (s *Solver) buildIndex(ctx context.Context, n int) (*wordindex.Index, error) {
	began := time.Now()
	dict, err := s.provider.WordsOfLength(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("solver: load words of length %d: %w", n, err)
	}
	idx := wordindex.Build(dict)
	elapsed := time.Since(began)

	s.cfg.metrics.observeBuild(elapsed)
	s.cfg.logger.Debug("index built",
		"length", n, "words", idx.Len(), "patterns", idx.Buckets(), "elapsed", elapsed)

	return idx, nil
}

// Neighbors returns the dictionary words one letter away from word.
func (s *Solver) Neighbors(ctx context.Context, word string) ([]string, error) {
	if word == "" {
		return nil, nil
	}
	idx, err := s.Index(ctx, len(word))
	if err != nil {
		return nil, err
	}

	return idx.Neighbors(word), nil
}

// Distance returns one shortest ladder from start to end using the
// single-parent BFS walk. It returns ladder.ErrNoPath when none exists and
// ladder.ErrStartNotFound when start is not a dictionary word.
//
// Unlike FindLadders, which reports [w w] for start == end, the walk reports
// the zero-step path [w].
func (s *Solver) Distance(ctx context.Context, start, end string) (ladder.Path, error) {
	if start == "" || len(start) != len(end) {
		return nil, fmt.Errorf("%w: %q and %q differ in length", ladder.ErrNoPath, start, end)
	}
	idx, err := s.Index(ctx, len(start))
	if err != nil {
		return nil, err
	}
	res, err := ladder.Distances(idx, start,
		ladder.WithContext(ctx),
		ladder.WithMaxDepth(s.cfg.maxDepth),
	)
	if err != nil {
		return nil, err
	}

	return res.PathTo(end)
}

// newSearchID returns a time-ordered ID for log correlation.
func newSearchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}
