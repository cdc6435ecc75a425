package lexicon

import (
	"context"
	"errors"
	"slices"
	"strings"
)

// ErrEmptyLexicon is returned when a word list holds no usable word.
var ErrEmptyLexicon = errors.New("lexicon: no usable words")

// Provider returns the dictionary words of one length.
// Implementations must return a deduplicated set whose words all have length n;
// n < 1 yields an empty Dictionary.
type Provider interface {
	WordsOfLength(ctx context.Context, n int) (Dictionary, error)
}

// Dictionary is a set of unique words of one length.
// The zero value is an empty dictionary of length 0.
type Dictionary struct {
	n     int
	words map[string]struct{}
}

// NewDictionary builds a Dictionary of words of length n.
// Words of another length, or that are not lowercase a–z, are dropped.
func NewDictionary(n int, words ...string) Dictionary {
	d := Dictionary{n: n, words: make(map[string]struct{}, len(words))}
	if n < 1 {
		return d
	}
	for _, w := range words {
		w, ok := Normalize(w)
		if !ok || len(w) != n {
			continue
		}
		d.words[w] = struct{}{}
	}

	return d
}

// WordLen reports the length shared by every word in d.
func (d Dictionary) WordLen() int { return d.n }

// Len reports the number of words in d.
func (d Dictionary) Len() int { return len(d.words) }

// Has reports whether w is in d.
func (d Dictionary) Has(w string) bool {
	_, ok := d.words[w]
	return ok
}

// Words returns the words of d in ascending order.
// The slice is a fresh copy owned by the caller.
func (d Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	slices.Sort(out)

	return out
}

// Normalize trims w and reports whether the result is a usable word.
func Normalize(w string) (string, bool) {
	w = strings.TrimSpace(w)
	if !IsWord(w) {
		return "", false
	}

	return w, true
}

// IsWord reports whether w is a non-empty run of the letters a–z.
func IsWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}

	return true
}
