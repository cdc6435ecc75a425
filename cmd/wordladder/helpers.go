// Shared helpers for wordladder CLI commands.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/wordladder/ladder"
)

// newLogger returns a text logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// printLadders writes a ladder set in the interactive format: "Found Ladder: "
// followed by one space-joined ladder per line, or "No ladder found.".
func printLadders(w io.Writer, ladders [][]string) {
	if len(ladders) == 0 {
		fmt.Fprintln(w, "No ladder found.")
		return
	}
	fmt.Fprint(w, "Found Ladder: ")
	for _, l := range ladders {
		fmt.Fprintln(w, ladder.Format(l))
	}
}

// normalizeWord trims and lower-cases user input.
func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
