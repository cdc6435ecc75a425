// Package wordladder finds every shortest word ladder between two words of
// equal length, where each step changes exactly one letter and every
// intermediate word is in the dictionary.
//
// 🚀 What is inside?
//
//	An in-process solver built from small, composable packages:
//		• lexicon/: Provider interface, in-memory Dictionary, word-list loader
//		• store/: SQLite-backed Provider (pure Go, no cgo)
//		• wordindex/: wildcard-pattern adjacency index ("c#t" → cat, cot, cut)
//		• ladder/: level-synchronized multi-path BFS + single-parent distance walk
//		• solver/: caller API with index cache, batch solving, metrics, logging
//		• cmd/wordladder: interactive prompt and cobra subcommands
//
// ✨ Guarantees
//
//   - Complete: every shortest ladder is returned, never just one
//   - Deterministic: ladders are sorted and deduplicated
//   - Concurrent-safe: indexes are immutable after Build and shared by readers
//
// Quick ASCII example:
//
//	cat ── cot ── cog
//	        │      │
//	       dot ── dog
//
//	cat→dog yields "cat cot cog dog" and "cat cot dot dog".
//
//	go install github.com/katalvlaran/wordladder/cmd/wordladder@latest
package wordladder
