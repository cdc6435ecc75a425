// Package lexicon supplies the vocabulary a word ladder is built from.
//
// What
//
//   - Dictionary: an immutable set of unique lowercase words that all share one length.
//   - Provider: the single operation a ladder search needs from storage,
//     WordsOfLength(ctx, n), returning the Dictionary of words of exactly length n.
//   - Memory: an in-memory Provider, filled from a slice or from a word-list file.
//
// Vocabulary rules
//
//	A usable word is a non-empty run of the ASCII letters a–z. Surrounding whitespace is
//	trimmed; anything else (capitals, digits, hyphens, apostrophes) is dropped rather than
//	rejected, so a raw system word list can be loaded as-is.
//
// Word-list format
//
//	One word per line. Blank lines and lines starting with '#' are ignored.
//
// Usage
//
//	lex, err := lexicon.LoadFile("words.txt")
//	if err != nil {
//		// ErrEmptyLexicon or a wrapped I/O error
//	}
//	dict, _ := lex.WordsOfLength(ctx, 4)
//	dict.Has("work") // true
//
// Errors
//
//   - ErrEmptyLexicon  if a word list yields no usable word.
package lexicon
