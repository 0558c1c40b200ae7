// Package wordlist manages the plain-text word queue: one word or
// expression per line, processed top to bottom and removed on success.
package wordlist

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Load reads the words file and returns its non-blank, trimmed lines in
// order.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read words file: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}

// Remove rewrites the words file without the given word, compared
// case-insensitively. Callers treat failure as a warning: a word left in
// the file is skipped next run via the processed-record map anyway.
func Remove(path, word string) error {
	words, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	target := strings.ToLower(word)
	var kept []string
	for _, w := range words {
		if strings.ToLower(w) != target {
			kept = append(kept, w)
		}
	}

	var b strings.Builder
	for _, w := range kept {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("rewrite words file: %w", err)
	}
	return nil
}
