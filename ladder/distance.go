package ladder

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/wordladder/wordindex"
)

// DistanceResult holds the outcome of a single-source walk:
//   - Order: words in visit sequence.
//   - Depth: map from word to its distance (steps) from the start.
//   - Parent: map from word to its predecessor in the BFS tree.
type DistanceResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs one shortest ladder from the start word to dest by
// following Parent links back to the start. Returns ErrNoPath if dest was
// not reached.
func (r *DistanceResult) PathTo(dest string) (Path, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make(Path, 0, hops+1)
	for w := dest; len(path) <= hops; w = r.Parent[w] {
		path = append(path, w)
	}
	slices.Reverse(path)

	return path, nil
}

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable state of one Distances call.
type walker struct {
	idx     *wordindex.Index
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *DistanceResult
}

// Distances runs a classic breadth-first search from start, marking words
// visited as soon as they are enqueued, and reports every reachable word's
// distance. Unlike FindLadders it keeps a single parent per word, so it is
// linear in the size of the reachable component.
//
// Honors WithContext and WithMaxDepth. Returns ErrIndexNil, ErrStartNotFound,
// ErrOptionViolation, or the context error.
func Distances(idx *wordindex.Index, start string, opts ...Option) (*DistanceResult, error) {
	if idx == nil {
		return nil, ErrIndexNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !idx.Contains(start) {
		return nil, ErrStartNotFound
	}

	n := idx.Len()
	w := &walker{
		idx:     idx,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &DistanceResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks word visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(word string, d int, parent string) {
	w.visited[word] = true
	w.res.Depth[word] = d
	if parent != "" {
		w.res.Parent[word] = parent
	}
	w.queue = append(w.queue, queueItem{word: word, depth: d})
}

// loop processes the queue until empty or cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.word)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		w.idx.EachNeighbor(item.word, func(nbr string) bool {
			if !w.visited[nbr] {
				w.enqueue(nbr, next, item.word)
			}
			return true
		})
	}

	return nil
}
