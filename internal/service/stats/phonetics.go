package stats

import (
	"unicode/utf8"

	"github.com/kesava/telugu-word-analysis/internal/akshara"
	"github.com/kesava/telugu-word-analysis/internal/domain"
)

func (a *Analyzer) phonetics(c *corpus, st *domain.Stats) {
	patterns := counter{}
	clusters := counter{}
	vowelSeqs := counter{}
	alliteration := counter{}
	constraints := counter{}

	for i, rs := range c.runes {
		syls := c.syllables[i]

		for _, s := range syls {
			if utf8.RuneCountInString(s) < 2 {
				continue
			}
			if p := akshara.PhoneticPattern(s); utf8.RuneCountInString(p) > 1 {
				patterns.add(p)
			}
		}

		for _, cl := range consonantClusters(rs) {
			clusters.add(cl)
			if k := a.lex.ClusterConstraint(cl); k != "" {
				constraints.add(k)
			}
		}

		var vowels []rune
		for _, r := range rs {
			if akshara.Classify(r) == akshara.IndependentVowel {
				vowels = append(vowels, r)
			}
		}
		if len(vowels) > 1 {
			vowelSeqs.add(string(vowels))
		}

		if p, ok := alliterates(syls); ok {
			alliteration.add(p)
		}
	}

	st.Phonetics = &domain.PhoneticStats{
		PhoneticPatterns:     patterns.ranked(15, c.total()),
		ConsonantClusters:    clusters.ranked(20, c.total()),
		VowelSequences:       vowelSeqs.ranked(10, c.total()),
		AlliterationPatterns: alliteration.ranked(10, c.total()),
		PhoneticConstraints:  constraints.ranked(0, c.total()),
	}
}

// alliterates reports whether the first runes of up to three leading
// aksharas are all the same, returning those runes.
func alliterates(syllables []string) (string, bool) {
	if len(syllables) < 2 {
		return "", false
	}

	var first []rune
	for _, s := range syllables[:min(3, len(syllables))] {
		r, _ := utf8.DecodeRuneInString(s)
		first = append(first, r)
	}
	for _, r := range first[1:] {
		if r != first[0] {
			return "", false
		}
	}
	return string(first), true
}
