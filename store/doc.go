// Package store keeps a word list in SQLite and serves it as a lexicon.Provider.
//
// The database holds a single table, words(word, length), indexed on length, so
// WordsOfLength is one indexed range scan. Words are normalized with the same rules
// as lexicon.NewMemory before they are written; duplicates are ignored.
//
// The driver is modernc.org/sqlite (pure Go, no cgo). Pass ":memory:" to Open for a
// throwaway database.
//
//	st, err := store.Open("words.db")
//	if err != nil { ... }
//	defer st.Close()
//	n, err := st.ImportFile(ctx, "words.txt")
//	dict, err := st.WordsOfLength(ctx, 4)
package store
