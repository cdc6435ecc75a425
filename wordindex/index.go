package wordindex

import (
	"github.com/katalvlaran/wordladder/lexicon"
)

// Wildcard marks the blanked position of a Pattern. It never occurs in a
// dictionary word, which only holds the letters a–z.
const Wildcard = '#'

// Pattern is a word with one position replaced by Wildcard.
type Pattern string

// PatternOf returns word with position i replaced by Wildcard.
// It panics if i is out of range, like a slice index would.
func PatternOf(word string, i int) Pattern {
	b := []byte(word)
	b[i] = Wildcard

	return Pattern(b)
}

// Patterns returns the len(word) patterns of word, position 0 first.
func Patterns(word string) []Pattern {
	out := make([]Pattern, len(word))
	for i := range out {
		out[i] = PatternOf(word, i)
	}

	return out
}

// Index maps each Pattern to the dictionary words matching it.
type Index struct {
	wordLen int
	words   map[string]struct{}
	buckets map[Pattern][]string
}

// Build indexes every word of d under each of its patterns.
// An empty dictionary yields an empty index.
func Build(d lexicon.Dictionary) *Index {
	words := d.Words() // ascending, so buckets come out sorted
	idx := &Index{
		wordLen: d.WordLen(),
		words:   make(map[string]struct{}, len(words)),
		buckets: make(map[Pattern][]string, len(words)*max(d.WordLen(), 1)),
	}
	for _, w := range words {
		idx.words[w] = struct{}{}
		for i := 0; i < len(w); i++ {
			p := PatternOf(w, i)
			idx.buckets[p] = append(idx.buckets[p], w)
		}
	}

	return idx
}

// WordLen reports the word length the index was built for.
func (idx *Index) WordLen() int { return idx.wordLen }

// Len reports the number of indexed words.
func (idx *Index) Len() int { return len(idx.words) }

// Buckets reports the number of distinct patterns.
func (idx *Index) Buckets() int { return len(idx.buckets) }

// Contains reports whether word was indexed.
func (idx *Index) Contains(word string) bool {
	_, ok := idx.words[word]
	return ok
}

// Bucket returns a copy of the words matching p.
func (idx *Index) Bucket(p Pattern) []string {
	b := idx.buckets[p]
	if len(b) == 0 {
		return nil
	}
	out := make([]string, len(b))
	copy(out, b)

	return out
}

// Neighbors returns every indexed word that differs from word in exactly one
// position. word itself is never included. Words that were not indexed have
// no recorded neighbors.
func (idx *Index) Neighbors(word string) []string {
	if !idx.Contains(word) {
		return nil
	}
	var out []string
	for i := 0; i < len(word); i++ {
		for _, w := range idx.buckets[PatternOf(word, i)] {
			if w != word {
				out = append(out, w)
			}
		}
	}

	return out
}

// EachNeighbor calls fn for every neighbor of word, in Neighbors order,
// without allocating the result slice. Iteration stops when fn returns false.
func (idx *Index) EachNeighbor(word string, fn func(string) bool) {
	if !idx.Contains(word) {
		return
	}
	for i := 0; i < len(word); i++ {
		for _, w := range idx.buckets[PatternOf(word, i)] {
			if w == word {
				continue
			}
			if !fn(w) {
				return
			}
		}
	}
}
