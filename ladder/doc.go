// Package ladder finds every shortest word ladder between two words.
//
// What
//
//   - FindLadders(start, end, idx) enumerates all minimum-length ladders: sequences of
//     dictionary words from start to end where each step changes exactly one letter.
//   - Results are deduplicated and sorted lexicographically, word by word.
//   - Distances(idx, start) is a plain single-source BFS (one parent per word) that
//     reports every reachable word's distance and one shortest ladder per word.
//
// How
//
//	The search is level-synchronized. Two frontiers, current and next, hold whole
//	paths. Every path of the current level is extended by one step:
//
//	  - a neighbor already on the path is skipped;
//	  - the end word completes a ladder, which is recorded and not extended;
//	  - any other neighbor that is not closed starts a new path in the next level.
//
//	Only after the entire level has been expanded are its terminal words closed.
//	Delaying the close lets two paths of the same length pass through the same
//	intermediate word, so every tied-shortest ladder is found. The first level that
//	completes any ladder is drained in full before the search stops, so no ladder
//	of that length is missed.
//
// States
//
//	searching ──level drained, ladders found──► found ──► done
//	    │
//	    └──────next level empty────────────────► exhausted ──► done
//
// Edge cases
//
//   - start == end (and indexed): the single ladder [start start].
//   - length mismatch, start or end not indexed, empty index: empty result, nil error.
//
// Determinism
//
//	wordindex returns neighbors in a fixed order and results are sorted, so repeated
//	calls return identical, identically ordered ladders.
//
// Complexity
//
//	Each level stores full paths, so memory grows with the number of partial ladders
//	rather than the number of words. Paths are short (a few words), so cloning on
//	branch is cheap; the closed set keeps the frontier from revisiting earlier levels.
//
// Usage
//
//	idx := wordindex.Build(dict)
//	res, err := ladder.FindLadders("work", "play", idx,
//	    ladder.WithContext(ctx),
//	    ladder.WithMaxDepth(10),
//	)
//	for _, p := range res.Ladders {
//	    fmt.Println(ladder.Format(p))
//	}
//
// Options
//
//   - WithContext(ctx):   cancellation, checked per level and per expanded path.
//   - WithMaxDepth(d):    reject ladders longer than d steps (d > 0); 0 means no limit.
//   - WithOnLevel(fn):    hook before each level with its depth and frontier size.
//   - WithLogger(l):      slog logger for per-level debug records.
//
// Errors
//
//   - ErrIndexNil         if the index pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrStartNotFound    from Distances when start is not indexed.
//   - ErrNoPath           from DistanceResult.PathTo for unreached words.
//   - context.Canceled / context.DeadlineExceeded when the context ends.
package ladder
