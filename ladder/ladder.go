// Package ladder enumerates every shortest word ladder between two words,
// walking a wordindex.Index one BFS level at a time.
package ladder

import (
	"context"
	"slices"

	"github.com/katalvlaran/wordladder/wordindex"
)

// searcher encapsulates mutable search state for one FindLadders call.
type searcher struct {
	idx  *wordindex.Index
	opts Options
	ctx  context.Context
	end  string

	state   State
	current []Path              // paths of the level being expanded
	next    []Path              // paths of the following level
	found   []Path              // ladders completed during the current level
	closed  map[string]struct{} // words no longer usable as intermediate hops
	res     *Result
}

// FindLadders returns every shortest ladder from start to end over idx,
// sorted lexicographically.
//
// Precondition failures are not errors: a length mismatch, or a start or end
// word that idx does not contain, yields an empty Result. start == end yields
// the single degenerate ladder [start start].
//
// Returns ErrIndexNil for a nil index, ErrOptionViolation for bad options, or
// the context error if the search is cancelled.
func FindLadders(start, end string, idx *wordindex.Index, opts ...Option) (*Result, error) {
	if idx == nil {
		return nil, ErrIndexNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	res := &Result{Outcome: StateExhausted}
	if len(start) != len(end) || !idx.Contains(start) || !idx.Contains(end) {
		return res, nil
	}
	if start == end {
		res.Ladders = []Path{{start, start}}
		res.Outcome = StateDone
		return res, nil
	}

	s := &searcher{
		idx:     idx,
		opts:    o,
		ctx:     o.Ctx,
		end:     end,
		state:   StateSearching,
		current: []Path{{start}},
		closed:  make(map[string]struct{}),
		res:     res,
	}
	if err := s.run(); err != nil {
		return nil, err
	}

	return s.res, nil
}

// run drives the level machine until it reaches StateDone.
func (s *searcher) run() error {
	for s.state == StateSearching {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		default:
		}

		depth := s.res.Levels
		if s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
			s.state = StateExhausted
			break
		}
		s.opts.OnLevel(depth, len(s.current))
		s.opts.Logger.Debug("ladder: expanding level",
			"depth", depth, "frontier", len(s.current), "closed", len(s.closed))

		if err := s.expandLevel(); err != nil {
			return err
		}
		s.closeLevel()
		s.res.Levels++
		s.advance()
	}
	s.finish()

	return nil
}

// expandLevel extends every path of the current level by one step.
func (s *searcher) expandLevel() error {
	for _, p := range s.current {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		default:
		}
		s.res.Expanded++
		s.expand(p)
	}

	return nil
}

// expand routes each unvisited neighbor of p's last word either into the
// found set (the end word) or into the next level (any word not yet closed).
func (s *searcher) expand(p Path) {
	s.idx.EachNeighbor(p[len(p)-1], func(n string) bool {
		switch {
		case slices.Contains(p, n):
			// already on this ladder
		case n == s.end:
			s.found = append(s.found, extend(p, n))
		default:
			if _, done := s.closed[n]; !done {
				s.next = append(s.next, extend(p, n))
			}
		}
		return true
	})
}

// closeLevel marks the last word of every path just expanded as closed.
// Closing waits for the whole level so that same-depth rediscovery stays
// possible, which is what lets tied ladders share intermediate words.
func (s *searcher) closeLevel() {
	for _, p := range s.current {
		s.closed[p[len(p)-1]] = struct{}{}
	}
}

// advance picks the next state once a level has been fully drained.
func (s *searcher) advance() {
	switch {
	case len(s.found) > 0:
		s.state = StateFoundAtCurrentLevel
	case len(s.next) == 0:
		s.state = StateExhausted
	default:
		s.current, s.next = s.next, s.current[:0]
	}
}

// finish records the outcome, then sorts and deduplicates the ladders.
func (s *searcher) finish() {
	s.res.Outcome = s.state
	if len(s.found) > 0 {
		slices.SortFunc(s.found, func(a, b Path) int { return slices.Compare(a, b) })
		s.res.Ladders = slices.CompactFunc(s.found, func(a, b Path) bool { return slices.Equal(a, b) })
	}
	s.current, s.next = nil, nil
	s.state = StateDone
}

// extend returns a fresh copy of p with w appended.
func extend(p Path, w string) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = w

	return np
}
