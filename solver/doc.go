// Package solver is the caller-facing entry point for word ladders.
//
// A Solver ties a lexicon.Provider to the search machinery:
//
//	provider.WordsOfLength(len(start)) → wordindex.Build → ladder.FindLadders
//
// and adds what a long-running caller needs around it: structured logging with a
// per-search ID, Prometheus metrics, an optional index cache shared by concurrent
// searches, and a parallel batch mode.
//
// Index lifecycle
//
//	By default every search builds a fresh Dictionary and Index and drops them when
//	it returns. WithIndexCache(true) keeps one Index per word length instead; the
//	first search of a length builds it (concurrent first searches share that single
//	build) and later searches reuse it read-only.
//
// Errors
//
//	Missing words and length mismatches are not errors: they yield an empty ladder
//	set. Provider failures, invalid options and context cancellation are returned.
//
// Usage
//
//	lex, _ := lexicon.LoadFile("words.txt")
//	s, _ := solver.New(lex, solver.WithIndexCache(true))
//	ladders, err := s.FindLadders(ctx, "work", "play")
package solver
