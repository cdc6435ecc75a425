// Package wordindex builds the one-letter adjacency index a word ladder walks.
//
// What
//
//   - Pattern: a word with exactly one position replaced by Wildcard ('#').
//   - Index: Pattern → bucket of dictionary words matching that pattern.
//   - Neighbors(w): every dictionary word that differs from w in exactly one position.
//
// Why
//
//	Comparing every pair of words is O(n²·L). Grouping words under their L wildcard
//	patterns instead makes neighbor discovery a handful of map lookups:
//
//	    cat → #at  c#t  ca#
//	    bat → #at  b#t  ba#
//	    bad → #ad  b#d  ba#
//
//	"cat" and "bat" share the bucket "#at", so they are neighbors; "bad" shares
//	nothing with "cat".
//
// Self-matches
//
//	Each bucket holds every word that produced its pattern, including the word
//	being queried. Neighbors filters the queried word out at query time; buckets
//	are shared and never mutated after Build.
//
// Determinism
//
//	Words are inserted in ascending order, so every bucket is sorted and
//	Neighbors returns words in a reproducible order.
//
// Complexity (n = words, L = word length)
//
//   - Build:     O(n·L) patterns, O(n·L²) bytes hashed
//   - Neighbors: O(L) lookups plus the size of the touched buckets
//   - Memory:    O(n·L)
//
// Concurrency
//
//	An Index is immutable once Build returns and may be shared by any number of
//	concurrent searches.
package wordindex
