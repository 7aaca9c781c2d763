package akshara

import (
	"strings"
	"unicode"
)

// Segment splits word into aksharas in a single left-to-right pass.
//
// A consonant opens a new akshara unless the pending one ends in a virama,
// in which case it joins the conjunct. Dependent vowel signs and viramas
// attach to whatever is pending, even when nothing is. Independent vowels
// and non-Telugu runes always stand alone; whitespace is dropped.
//
// An empty word yields an empty slice. Every returned akshara is non-empty
// and joining them restores word without its whitespace.
func Segment(word string) []string {
	runes := []rune(word)
	out := make([]string, 0, len(runes))

	var acc strings.Builder
	flush := func() {
		if acc.Len() > 0 {
			out = append(out, acc.String())
			acc.Reset()
		}
	}

	for i, r := range runes {
		switch Classify(r) {
		case Consonant:
			if acc.Len() > 0 && !endsWithVirama(acc.String()) {
				flush()
			}
			acc.WriteRune(r)
			if !continues(runes, i+1) {
				flush()
			}
		case IndependentVowel:
			flush()
			out = append(out, string(r))
		case DependentVowelSign, Virama:
			acc.WriteRune(r)
		default:
			flush()
			if !unicode.IsSpace(r) {
				out = append(out, string(r))
			}
		}
	}
	flush()

	return out
}

// continues reports whether the rune at i extends the akshara being built.
func continues(runes []rune, i int) bool {
	if i >= len(runes) {
		return false
	}
	c := Classify(runes[i])
	return c == DependentVowelSign || c == Virama
}

func endsWithVirama(s string) bool {
	return strings.HasSuffix(s, string(ViramaRune))
}

// Count returns the number of aksharas in word.
func Count(word string) int {
	return len(Segment(word))
}
