// Package pdftext is the input boundary: it extracts layout-preserving plain
// text from a statement PDF with the pdftotext tool and tokenizes it into
// the line shape the parser consumes. The parsing core never opens files or
// spawns processes itself.
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Extract runs pdftotext on the given PDF and returns its whitespace
// tokenized lines, blank lines dropped.
func Extract(ctx context.Context, path string) ([][]string, error) {
	cmd := exec.CommandContext(ctx, "pdftotext", "-nopgbrk", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("pdftotext failed on %q: %s: %w", path, strings.TrimSpace(string(exitErr.Stderr)), err)
		}
		return nil, fmt.Errorf("cannot run pdftotext on %q: %w", path, err)
	}
	return Tokenize(string(out)), nil
}

// Tokenize splits extracted text into whitespace-tokenized lines, discarding
// blank lines.
func Tokenize(text string) [][]string {
	var lines [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, fields)
	}
	return lines
}

// Dump writes the tokenized lines in a readable form, one line per statement
// line, for debugging extraction problems.
func Dump(w io.Writer, lines [][]string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%q\n", line); err != nil {
			return err
		}
	}
	return nil
}
