package lexicon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Memory is an in-memory Provider. It is read-only after construction
// and safe for concurrent use.
type Memory struct {
	byLen map[int][]string // length → sorted unique words
	total int
}

// NewMemory builds a Memory provider from words, dropping unusable entries
// and duplicates.
func NewMemory(words []string) *Memory {
	m := &Memory{byLen: make(map[int][]string)}
	for _, raw := range words {
		w, ok := Normalize(raw)
		if !ok {
			continue
		}
		m.byLen[len(w)] = append(m.byLen[len(w)], w)
	}
	for n, ws := range m.byLen {
		slices.Sort(ws)
		ws = slices.Compact(ws)
		m.byLen[n] = ws
		m.total += len(ws)
	}

	return m
}

// Read parses a word list from r, one word per line.
// Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) (*Memory, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read word list: %w", err)
	}
	m := NewMemory(words)
	if m.total == 0 {
		return nil, ErrEmptyLexicon
	}

	return m, nil
}

// LoadFile reads the word list stored at path.
func LoadFile(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %q: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// WordsOfLength implements Provider.
func (m *Memory) WordsOfLength(_ context.Context, n int) (Dictionary, error) {
	return NewDictionary(n, m.byLen[n]...), nil
}

// Len reports the number of distinct words held.
func (m *Memory) Len() int { return m.total }

// Lengths returns every word length present, ascending.
func (m *Memory) Lengths() []int {
	out := make([]int, 0, len(m.byLen))
	for n := range m.byLen {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}
