package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord prepares a word for storage and analysis:
//   - trims leading/trailing whitespace
//   - strips surrounding single or double quotes
//   - applies Unicode NFC composition
//
// Case is preserved.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	word = strings.TrimPrefix(word, `"`)
	word = strings.TrimPrefix(word, `'`)
	word = strings.TrimSuffix(word, `"`)
	word = strings.TrimSuffix(word, `'`)
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return norm.NFC.String(word)
}

// NormalizeWords normalizes every word and drops the ones left empty.
func NormalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if n := NormalizeWord(w); n != "" {
			out = append(out, n)
		}
	}
	return out
}
