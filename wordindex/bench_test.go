package wordindex_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordladder/lexicon"
	"github.com/katalvlaran/wordladder/wordindex"
)

// randomDictionary returns n pseudo-random words of length l over a small alphabet,
// dense enough that most words have neighbors.
func randomDictionary(n, l int) lexicon.Dictionary {
	const alphabet = "abcdefghij"
	r := rand.New(rand.NewSource(42))
	words := make([]string, n)
	for i := range words {
		b := make([]byte, l)
		for j := range b {
			b[j] = alphabet[r.Intn(len(alphabet))]
		}
		words[i] = string(b)
	}
	return lexicon.NewDictionary(l, words...)
}

// BenchmarkBuild measures index construction over ~5000 five-letter words.
func BenchmarkBuild(b *testing.B) {
	d := randomDictionary(5000, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = wordindex.Build(d)
	}
}

// BenchmarkNeighbors measures neighbor discovery on a prebuilt index.
func BenchmarkNeighbors(b *testing.B) {
	d := randomDictionary(5000, 5)
	idx := wordindex.Build(d)
	words := d.Words()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Neighbors(words[i%len(words)])
	}
}
