package solver

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/wordindex"
)

// SolveAll answers every pair concurrently, at most WithWorkers searches at a
// time. Answers keep the order of pairs. Each distinct word length is indexed
// once and that index is shared by all of its searches. The first error
// cancels the remaining searches and is returned.
func (s *Solver) SolveAll(ctx context.Context, pairs []Pair) ([]Answer, error) {
	indexes := make(map[int]*wordindex.Index)
	for _, p := range pairs {
		n := len(p.Start)
		if n == 0 || n != len(p.End) {
			continue
		}
		if _, ok := indexes[n]; ok {
			continue
		}
		idx, err := s.Index(ctx, n)
		if err != nil {
			return nil, err
		}
		indexes[n] = idx
	}

	answers := make([]Answer, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers)
	for i, p := range pairs {
		answers[i].Pair = p
		idx, ok := indexes[len(p.Start)]
		if !ok || len(p.Start) != len(p.End) {
			answers[i].Ladders = [][]string{}
			continue
		}
		g.Go(func() error {
			res, err := s.search(gctx, p.Start, p.End, idx, time.Now())
			if err != nil {
				return fmt.Errorf("solver: pair %d: %w", i, err)
			}
			answers[i].Ladders = res.Strings()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.cfg.logger.Info("batch finished", "pairs", len(pairs), "lengths", len(indexes))

	return answers, nil
}
